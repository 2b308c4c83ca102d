package methods

import (
	"encoding/json"
	"errors"

	"github.com/weisyn/bitcoinrpc/core/codec"
	"github.com/weisyn/bitcoinrpc/core/wire"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// GetRawTransaction getrawtransaction
type GetRawTransaction struct {
	TxID *chainhash.Hash

	// Verbose true 时返回解码后的交易对象
	Verbose *bool

	// BlockHash 限定在指定区块内查找（需要 txindex 或区块内有该交易）
	BlockHash *chainhash.Hash
}

func (GetRawTransaction) MethodName() string { return "getrawtransaction" }

func (r GetRawTransaction) Encode() (*wire.Request, error) {
	if r.TxID == nil {
		return nil, errors.New("getrawtransaction: TxID 不能为空")
	}

	params := wire.NewParams().Add(r.TxID.String())

	v, set := opt(r.Verbose)
	params.AddOptional(v, set)
	if r.BlockHash != nil {
		params.AddOptional(r.BlockHash.String(), true)
	} else {
		params.AddOptional(nil, false)
	}

	return wire.NewRequest("getrawtransaction", params.Values()), nil
}

// SendRawTransaction sendrawtransaction
type SendRawTransaction struct {
	Hex string

	// MaxFeeRate BTC/kvB；0 表示禁用费率检查，缺省用节点默认值
	MaxFeeRate *float64
}

func (SendRawTransaction) MethodName() string { return "sendrawtransaction" }

func (r SendRawTransaction) Encode() (*wire.Request, error) {
	params := wire.NewParams().Add(r.Hex)
	v, set := opt(r.MaxFeeRate)
	params.AddOptional(v, set)
	return wire.NewRequest("sendrawtransaction", params.Values()), nil
}

// Decode 把结果解码为交易哈希
func (SendRawTransaction) Decode(c codec.Codec, raw json.RawMessage) (*chainhash.Hash, error) {
	return decodeHash(c, raw)
}

// EstimateSmartFee estimatesmartfee
type EstimateSmartFee struct {
	ConfTarget   int64
	EstimateMode *string
}

func (EstimateSmartFee) MethodName() string { return "estimatesmartfee" }

func (r EstimateSmartFee) Encode() (*wire.Request, error) {
	params := wire.NewParams().Add(r.ConfTarget)
	v, set := opt(r.EstimateMode)
	params.AddOptional(v, set)
	return wire.NewRequest("estimatesmartfee", params.Values()), nil
}

// SmartFeeEstimate estimatesmartfee 的结果
type SmartFeeEstimate struct {
	FeeRate float64  `json:"feerate"`
	Errors  []string `json:"errors"`
	Blocks  int64    `json:"blocks"`
}

var (
	_ wire.Encoder = GetRawTransaction{}
	_ wire.Encoder = SendRawTransaction{}
	_ wire.Encoder = EstimateSmartFee{}
)
