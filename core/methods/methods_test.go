package methods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/weisyn/bitcoinrpc/core/codec"
	"github.com/weisyn/bitcoinrpc/core/wire"
)

var jsonCodec = codec.NewJSON()

func boolPtr(v bool) *bool    { return &v }
func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestEncode_Deterministic(t *testing.T) {
	req := GetBalance{MinConf: intPtr(6)}

	first, err := req.Encode()
	require.NoError(t, err)
	second, err := req.Encode()
	require.NoError(t, err)

	// id 各自生成，method/params/path 必须一致
	assert.Equal(t, first.Method, second.Method)
	assert.Equal(t, first.Params, second.Params)
	assert.Equal(t, first.Path, second.Path)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestWalletScopedPath(t *testing.T) {
	req, err := NewGetWalletInfo("miner").Encode()
	require.NoError(t, err)
	assert.Equal(t, "/wallet/miner", req.Path)

	// 未指定钱包时走默认路径
	req, err = GetWalletInfo{}.Encode()
	require.NoError(t, err)
	assert.Equal(t, "/", req.Path)
}

func TestGetBalance_Encode(t *testing.T) {
	// 全部可选参数缺省：只剩 dummy
	req, err := NewGetBalance("w").Encode()
	require.NoError(t, err)
	assert.Equal(t, "getbalance", req.Method)
	assert.Equal(t, []any{"*"}, req.Params)
	assert.Equal(t, "/wallet/w", req.Path)

	// 设置末位可选参数时，中间缺省位补 null
	full := NewGetBalance("w")
	full.AvoidReuse = boolPtr(true)
	req, err = full.Encode()
	require.NoError(t, err)
	assert.Equal(t, []any{"*", nil, nil, true}, req.Params)
}

func TestCreateWallet_MiddleOptionalsNullPadded(t *testing.T) {
	passphrase := "hunter2"
	req, err := CreateWallet{Name: "cold", Passphrase: &passphrase}.Encode()
	require.NoError(t, err)

	assert.Equal(t, "createwallet", req.Method)
	assert.Equal(t, []any{"cold", nil, nil, "hunter2"}, req.Params)
}

func TestCreateWallet_TrailingOptionalsTrimmed(t *testing.T) {
	req, err := CreateWallet{Name: "hot"}.Encode()
	require.NoError(t, err)
	assert.Equal(t, []any{"hot"}, req.Params)
}

func TestGetBlock_Encode(t *testing.T) {
	hash, err := chainhash.NewHashFromStr("000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f")
	require.NoError(t, err)

	req, err := GetBlock{Hash: hash}.Encode()
	require.NoError(t, err)
	assert.Equal(t, []any{hash.String()}, req.Params)

	verbosity := 2
	req, err = GetBlock{Hash: hash, Verbosity: &verbosity}.Encode()
	require.NoError(t, err)
	assert.Equal(t, []any{hash.String(), 2}, req.Params)
}

func TestGetBlock_EncodeNilHashIsError(t *testing.T) {
	// 缺少必选哈希时返回错误而不是解引用空指针
	var req *wire.Request
	var err error
	assert.NotPanics(t, func() {
		req, err = GetBlock{}.Encode()
	})
	require.Error(t, err)
	assert.Nil(t, req)
}

func TestGetRawTransaction_EncodeNilTxIDIsError(t *testing.T) {
	var req *wire.Request
	var err error
	assert.NotPanics(t, func() {
		req, err = GetRawTransaction{}.Encode()
	})
	require.Error(t, err)
	assert.Nil(t, req)
}

func TestGetNewAddress_Encode(t *testing.T) {
	// 只设置第二个可选参数，第一个补 null
	req := NewGetNewAddress("w")
	req.AddressType = strPtr("bech32")

	encoded, err := req.Encode()
	require.NoError(t, err)
	assert.Equal(t, []any{nil, "bech32"}, encoded.Params)
}

func TestSendToAddress_EncodeUsesBTCUnits(t *testing.T) {
	amount, err := btcutil.NewAmount(1.5)
	require.NoError(t, err)

	req, err := SendToAddress{
		Address: "bc1qexample",
		Amount:  amount,
	}.Encode()
	require.NoError(t, err)

	assert.Equal(t, []any{"bc1qexample", 1.5}, req.Params)
}

func TestListUnspent_Encode(t *testing.T) {
	req := NewListUnspent("w")
	req.Addresses = []string{"bc1qexample"}

	encoded, err := req.Encode()
	require.NoError(t, err)
	assert.Equal(t, []any{nil, nil, []string{"bc1qexample"}}, encoded.Params)
}

func TestGetRawTransaction_Encode(t *testing.T) {
	txid, err := chainhash.NewHashFromStr("4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b")
	require.NoError(t, err)

	req, err := GetRawTransaction{TxID: txid}.Encode()
	require.NoError(t, err)
	assert.Equal(t, []any{txid.String()}, req.Params)

	blockHash, err := chainhash.NewHashFromStr("000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f")
	require.NoError(t, err)

	req, err = GetRawTransaction{TxID: txid, BlockHash: blockHash}.Encode()
	require.NoError(t, err)
	assert.Equal(t, []any{txid.String(), nil, blockHash.String()}, req.Params)
}

func TestDecodeHashResults(t *testing.T) {
	raw := []byte(`"000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"`)

	hash, err := GetBestBlockHash{}.Decode(jsonCodec, raw)
	require.NoError(t, err)
	assert.Equal(t, "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f", hash.String())

	_, err = GetBlockHash{}.Decode(jsonCodec, []byte(`"not-a-hash"`))
	assert.Error(t, err)
}

func TestGetBalance_DecodeToSatoshi(t *testing.T) {
	amount, err := GetBalance{}.Decode(jsonCodec, []byte(`1.5`))
	require.NoError(t, err)
	assert.Equal(t, btcutil.Amount(150000000), amount)
}

func TestUnspentOutput_Helpers(t *testing.T) {
	u := UnspentOutput{
		TxID:   "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b",
		Vout:   1,
		Amount: 0.001,
	}

	amount, err := u.AmountBTC()
	require.NoError(t, err)
	assert.Equal(t, btcutil.Amount(100000), amount)

	hash, vout, err := u.OutPoint()
	require.NoError(t, err)
	assert.Equal(t, u.TxID, hash.String())
	assert.Equal(t, uint32(1), vout)
}

func TestRaw_Encode(t *testing.T) {
	req, err := Raw{Method: "getzmqnotifications", Params: []any{}}.Encode()
	require.NoError(t, err)
	assert.Equal(t, "getzmqnotifications", req.Method)
	assert.Equal(t, wire.DefaultPath, req.Path)

	scoped := Raw{Method: "rescanblockchain"}
	scoped.Wallet = "w"
	req, err = scoped.Encode()
	require.NoError(t, err)
	assert.Equal(t, "/wallet/w", req.Path)
}
