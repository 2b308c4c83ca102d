package dispatch

// callOptions 单次调用的可选项（可识别集合就是下面三个 With*）
type callOptions struct {
	id      string
	path    string
	headers map[string]string
}

// Option 调用选项
type Option func(*callOptions)

// WithID 覆盖编码器生成的请求 id
func WithID(id string) Option {
	return func(o *callOptions) { o.id = id }
}

// WithPath 覆盖编码器计算的路由路径
//
// 文档化的逃生通道：仅在方法没有类型化 schema 时使用。
func WithPath(path string) Option {
	return func(o *callOptions) { o.path = path }
}

// WithHeader 为本次调用附加请求头（透传给传输层）
func WithHeader(key, value string) Option {
	return func(o *callOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

func applyOptions(opts []Option) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
