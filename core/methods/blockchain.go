package methods

import (
	"encoding/json"
	"errors"

	"github.com/weisyn/bitcoinrpc/core/codec"
	"github.com/weisyn/bitcoinrpc/core/wire"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// GetBlockchainInfo getblockchaininfo
type GetBlockchainInfo struct{}

func (GetBlockchainInfo) MethodName() string { return "getblockchaininfo" }

func (GetBlockchainInfo) Encode() (*wire.Request, error) {
	return wire.NewRequest("getblockchaininfo", nil), nil
}

// BlockchainInfo getblockchaininfo 的结果
type BlockchainInfo struct {
	Chain                string  `json:"chain"`
	Blocks               int64   `json:"blocks"`
	Headers              int64   `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	Difficulty           float64 `json:"difficulty"`
	VerificationProgress float64 `json:"verificationprogress"`
	InitialBlockDownload bool    `json:"initialblockdownload"`
	Pruned               bool    `json:"pruned"`
	SizeOnDisk           int64   `json:"size_on_disk"`
	Warnings             any     `json:"warnings"`
}

// GetBlockCount getblockcount
type GetBlockCount struct{}

func (GetBlockCount) MethodName() string { return "getblockcount" }

func (GetBlockCount) Encode() (*wire.Request, error) {
	return wire.NewRequest("getblockcount", nil), nil
}

// GetBestBlockHash getbestblockhash
type GetBestBlockHash struct{}

func (GetBestBlockHash) MethodName() string { return "getbestblockhash" }

func (GetBestBlockHash) Encode() (*wire.Request, error) {
	return wire.NewRequest("getbestblockhash", nil), nil
}

// Decode 把结果解码为链上哈希
func (GetBestBlockHash) Decode(c codec.Codec, raw json.RawMessage) (*chainhash.Hash, error) {
	return decodeHash(c, raw)
}

// GetBlockHash getblockhash
type GetBlockHash struct {
	Height int64
}

func (GetBlockHash) MethodName() string { return "getblockhash" }

func (r GetBlockHash) Encode() (*wire.Request, error) {
	params := wire.NewParams().Add(r.Height)
	return wire.NewRequest("getblockhash", params.Values()), nil
}

// Decode 把结果解码为链上哈希
func (GetBlockHash) Decode(c codec.Codec, raw json.RawMessage) (*chainhash.Hash, error) {
	return decodeHash(c, raw)
}

// GetBlock getblock
type GetBlock struct {
	Hash *chainhash.Hash

	// Verbosity 0=原始十六进制 1=区块对象 2=含完整交易；缺省由节点决定
	Verbosity *int
}

func (GetBlock) MethodName() string { return "getblock" }

func (r GetBlock) Encode() (*wire.Request, error) {
	if r.Hash == nil {
		return nil, errors.New("getblock: Hash 不能为空")
	}

	params := wire.NewParams().
		Add(r.Hash.String())
	v, set := opt(r.Verbosity)
	params.AddOptional(v, set)
	return wire.NewRequest("getblock", params.Values()), nil
}

// Block getblock verbosity=1 的结果
type Block struct {
	Hash              string   `json:"hash"`
	Confirmations     int64    `json:"confirmations"`
	Height            int64    `json:"height"`
	Version           int32    `json:"version"`
	MerkleRoot        string   `json:"merkleroot"`
	Time              int64    `json:"time"`
	MedianTime        int64    `json:"mediantime"`
	Nonce             uint32   `json:"nonce"`
	Bits              string   `json:"bits"`
	Difficulty        float64  `json:"difficulty"`
	NTx               int64    `json:"nTx"`
	PreviousBlockHash string   `json:"previousblockhash"`
	NextBlockHash     string   `json:"nextblockhash"`
	Tx                []string `json:"tx"`
}

var (
	_ wire.Encoder = GetBlockchainInfo{}
	_ wire.Encoder = GetBlockCount{}
	_ wire.Encoder = GetBestBlockHash{}
	_ wire.Encoder = GetBlockHash{}
	_ wire.Encoder = GetBlock{}
)
