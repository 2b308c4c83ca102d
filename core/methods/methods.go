// Package methods 提供常用 RPC 方法的类型化 schema
//
// 每个请求类型实现 wire.Encoder；派发层对具体类型一无所知。
// 编码时遵守位置参数约定：末尾缺省可选参数裁剪、中间缺省补 null、
// 钱包作用域方法路由到 /wallet/<name>。
package methods

import (
	"encoding/json"

	"github.com/weisyn/bitcoinrpc/core/codec"
	"github.com/weisyn/bitcoinrpc/core/wire"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// walletScoped 为钱包作用域请求计算路由路径
type walletScoped struct {
	// Wallet 目标钱包名；为空表示节点只加载了单个钱包、走默认路径
	Wallet string
}

func (w walletScoped) path() string {
	if w.Wallet == "" {
		return wire.DefaultPath
	}
	return wire.WalletPath(w.Wallet)
}

// opt 把指针型可选参数转成 Params.AddOptional 需要的 (value, set)
func opt[T any](v *T) (any, bool) {
	if v == nil {
		return nil, false
	}
	return *v, true
}

// decodeHash 解码十六进制哈希字符串结果
func decodeHash(c codec.Codec, raw json.RawMessage) (*chainhash.Hash, error) {
	var s string
	if err := c.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return chainhash.NewHashFromStr(s)
}

// Raw 无 schema 方法的逃生通道
//
// Params 原样作为位置参数发送；与 dispatch.WithPath 配合可以
// 调用任何节点方法。
type Raw struct {
	walletScoped

	Method string
	Params []any
}

func (r Raw) MethodName() string { return r.Method }

func (r Raw) Encode() (*wire.Request, error) {
	req := wire.NewRequest(r.Method, r.Params)
	req.Path = r.path()
	return req, nil
}

var _ wire.Encoder = Raw{}
