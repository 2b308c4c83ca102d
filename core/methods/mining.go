package methods

import "github.com/weisyn/bitcoinrpc/core/wire"

// GetMiningInfo getmininginfo
type GetMiningInfo struct{}

func (GetMiningInfo) MethodName() string { return "getmininginfo" }

func (GetMiningInfo) Encode() (*wire.Request, error) {
	return wire.NewRequest("getmininginfo", nil), nil
}

// MiningInfo getmininginfo 的结果
type MiningInfo struct {
	Blocks             int64   `json:"blocks"`
	CurrentBlockWeight int64   `json:"currentblockweight"`
	CurrentBlockTx     int64   `json:"currentblocktx"`
	Difficulty         float64 `json:"difficulty"`
	NetworkHashPS      float64 `json:"networkhashps"`
	PooledTx           int64   `json:"pooledtx"`
	Chain              string  `json:"chain"`
	Warnings           any     `json:"warnings"`
}

// GetNetworkHashPS getnetworkhashps
type GetNetworkHashPS struct {
	// NBlocks 估算窗口；-1 表示自上次难度调整以来
	NBlocks *int64

	// Height 在指定高度处估算
	Height *int64
}

func (GetNetworkHashPS) MethodName() string { return "getnetworkhashps" }

func (r GetNetworkHashPS) Encode() (*wire.Request, error) {
	params := wire.NewParams()
	v, set := opt(r.NBlocks)
	params.AddOptional(v, set)
	v, set = opt(r.Height)
	params.AddOptional(v, set)
	return wire.NewRequest("getnetworkhashps", params.Values()), nil
}

var (
	_ wire.Encoder = GetMiningInfo{}
	_ wire.Encoder = GetNetworkHashPS{}
)
