// Package codec 提供可注入的 JSON 编解码抽象
//
// 编解码器在客户端构造时显式注入，不做任何进程级的全局选择；
// 默认实现基于标准库 encoding/json。
package codec

import "encoding/json"

// Codec 编解码接口
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSON 标准库实现
type JSON struct{}

// NewJSON 创建默认编解码器
func NewJSON() JSON { return JSON{} }

func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
