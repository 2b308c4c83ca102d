package wire

// Params 位置参数构建器
//
// Bitcoin Core 的 JSON-RPC 是位置参数协议，且部分方法区分
// "末尾缺省的可选参数" 与 "显式传 null"：
// - 末尾未设置的可选参数必须从数组中裁掉，不能补 null
// - 中间未设置、但其后还有已设置参数时，必须以 null 占位
type Params struct {
	items []paramItem
}

type paramItem struct {
	value any
	set   bool
}

// NewParams 创建参数构建器
func NewParams() *Params {
	return &Params{}
}

// Add 追加必选参数
func (p *Params) Add(value any) *Params {
	p.items = append(p.items, paramItem{value: value, set: true})
	return p
}

// AddOptional 追加可选参数；set 为 false 表示调用方未提供
func (p *Params) AddOptional(value any, set bool) *Params {
	p.items = append(p.items, paramItem{value: value, set: set})
	return p
}

// Values 产出最终参数数组
//
// 长度等于最后一个已设置参数的下标 + 1；未设置的中间参数编码为 nil。
func (p *Params) Values() []any {
	last := -1
	for i, item := range p.items {
		if item.set {
			last = i
		}
	}

	values := make([]any, 0, last+1)
	for i := 0; i <= last; i++ {
		if p.items[i].set {
			values = append(values, p.items[i].value)
		} else {
			values = append(values, nil)
		}
	}
	return values
}
