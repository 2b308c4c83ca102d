package methods

import (
	"encoding/json"

	"github.com/weisyn/bitcoinrpc/core/codec"
	"github.com/weisyn/bitcoinrpc/core/wire"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// CreateWallet createwallet
//
// 位置参数 [wallet_name, disable_private_keys, blank, passphrase, avoid_reuse]；
// 只给 Passphrase 时，前两个可选参数会按协议要求编码为 null 占位。
type CreateWallet struct {
	Name               string
	DisablePrivateKeys *bool
	Blank              *bool
	Passphrase         *string
	AvoidReuse         *bool
}

func (CreateWallet) MethodName() string { return "createwallet" }

func (r CreateWallet) Encode() (*wire.Request, error) {
	params := wire.NewParams().Add(r.Name)

	v, set := opt(r.DisablePrivateKeys)
	params.AddOptional(v, set)
	v, set = opt(r.Blank)
	params.AddOptional(v, set)
	v, set = opt(r.Passphrase)
	params.AddOptional(v, set)
	v, set = opt(r.AvoidReuse)
	params.AddOptional(v, set)

	return wire.NewRequest("createwallet", params.Values()), nil
}

// LoadWallet loadwallet
type LoadWallet struct {
	Name string
}

func (LoadWallet) MethodName() string { return "loadwallet" }

func (r LoadWallet) Encode() (*wire.Request, error) {
	params := wire.NewParams().Add(r.Name)
	return wire.NewRequest("loadwallet", params.Values()), nil
}

// GetWalletInfo getwalletinfo（钱包作用域）
type GetWalletInfo struct {
	walletScoped
}

// NewGetWalletInfo 创建指定钱包的 getwalletinfo 请求
func NewGetWalletInfo(wallet string) GetWalletInfo {
	return GetWalletInfo{walletScoped{Wallet: wallet}}
}

func (GetWalletInfo) MethodName() string { return "getwalletinfo" }

func (r GetWalletInfo) Encode() (*wire.Request, error) {
	req := wire.NewRequest("getwalletinfo", nil)
	req.Path = r.path()
	return req, nil
}

// WalletInfo getwalletinfo 的结果
type WalletInfo struct {
	WalletName         string  `json:"walletname"`
	WalletVersion      int64   `json:"walletversion"`
	Balance            float64 `json:"balance"`
	UnconfirmedBalance float64 `json:"unconfirmed_balance"`
	ImmatureBalance    float64 `json:"immature_balance"`
	TxCount            int64   `json:"txcount"`
	KeypoolSize        int64   `json:"keypoolsize"`
	PrivateKeysEnabled bool    `json:"private_keys_enabled"`
	AvoidReuse         bool    `json:"avoid_reuse"`
	Descriptors        bool    `json:"descriptors"`
	UnlockedUntil      *int64  `json:"unlocked_until,omitempty"`
	PayTxFee           float64 `json:"paytxfee"`
}

// GetNewAddress getnewaddress（钱包作用域）
type GetNewAddress struct {
	walletScoped

	Label       *string
	AddressType *string
}

// NewGetNewAddress 创建指定钱包的 getnewaddress 请求
func NewGetNewAddress(wallet string) GetNewAddress {
	return GetNewAddress{walletScoped: walletScoped{Wallet: wallet}}
}

func (GetNewAddress) MethodName() string { return "getnewaddress" }

func (r GetNewAddress) Encode() (*wire.Request, error) {
	params := wire.NewParams()
	v, set := opt(r.Label)
	params.AddOptional(v, set)
	v, set = opt(r.AddressType)
	params.AddOptional(v, set)

	req := wire.NewRequest("getnewaddress", params.Values())
	req.Path = r.path()
	return req, nil
}

// GetBalance getbalance（钱包作用域）
//
// 首个位置参数是协议遗留的 dummy，恒为 "*"。
type GetBalance struct {
	walletScoped

	MinConf          *int
	IncludeWatchOnly *bool
	AvoidReuse       *bool
}

// NewGetBalance 创建指定钱包的 getbalance 请求
func NewGetBalance(wallet string) GetBalance {
	return GetBalance{walletScoped: walletScoped{Wallet: wallet}}
}

func (GetBalance) MethodName() string { return "getbalance" }

func (r GetBalance) Encode() (*wire.Request, error) {
	params := wire.NewParams().Add("*")
	v, set := opt(r.MinConf)
	params.AddOptional(v, set)
	v, set = opt(r.IncludeWatchOnly)
	params.AddOptional(v, set)
	v, set = opt(r.AvoidReuse)
	params.AddOptional(v, set)

	req := wire.NewRequest("getbalance", params.Values())
	req.Path = r.path()
	return req, nil
}

// Decode 把 BTC 浮点结果转成精确的聪计数
func (GetBalance) Decode(c codec.Codec, raw json.RawMessage) (btcutil.Amount, error) {
	var btc float64
	if err := c.Unmarshal(raw, &btc); err != nil {
		return 0, err
	}
	return btcutil.NewAmount(btc)
}

// SendToAddress sendtoaddress（钱包作用域）
type SendToAddress struct {
	walletScoped

	Address     string
	Amount      btcutil.Amount
	Comment     *string
	CommentTo   *string
	SubtractFee *bool
}

func (SendToAddress) MethodName() string { return "sendtoaddress" }

func (r SendToAddress) Encode() (*wire.Request, error) {
	params := wire.NewParams().
		Add(r.Address).
		Add(r.Amount.ToBTC())
	v, set := opt(r.Comment)
	params.AddOptional(v, set)
	v, set = opt(r.CommentTo)
	params.AddOptional(v, set)
	v, set = opt(r.SubtractFee)
	params.AddOptional(v, set)

	req := wire.NewRequest("sendtoaddress", params.Values())
	req.Path = r.path()
	return req, nil
}

// Decode 把结果解码为交易哈希
func (SendToAddress) Decode(c codec.Codec, raw json.RawMessage) (*chainhash.Hash, error) {
	return decodeHash(c, raw)
}

// ListUnspent listunspent（钱包作用域）
type ListUnspent struct {
	walletScoped

	MinConf   *int
	MaxConf   *int
	Addresses []string
}

// NewListUnspent 创建指定钱包的 listunspent 请求
func NewListUnspent(wallet string) ListUnspent {
	return ListUnspent{walletScoped: walletScoped{Wallet: wallet}}
}

func (ListUnspent) MethodName() string { return "listunspent" }

func (r ListUnspent) Encode() (*wire.Request, error) {
	params := wire.NewParams()
	v, set := opt(r.MinConf)
	params.AddOptional(v, set)
	v, set = opt(r.MaxConf)
	params.AddOptional(v, set)
	params.AddOptional(r.Addresses, r.Addresses != nil)

	req := wire.NewRequest("listunspent", params.Values())
	req.Path = r.path()
	return req, nil
}

// UnspentOutput listunspent 的单条结果
type UnspentOutput struct {
	TxID          string  `json:"txid"`
	Vout          uint32  `json:"vout"`
	Address       string  `json:"address"`
	Label         string  `json:"label"`
	ScriptPubKey  string  `json:"scriptPubKey"`
	Amount        float64 `json:"amount"`
	Confirmations int64   `json:"confirmations"`
	Spendable     bool    `json:"spendable"`
	Solvable      bool    `json:"solvable"`
	Safe          bool    `json:"safe"`
}

// AmountBTC 把 BTC 浮点金额转成精确的聪计数
func (u UnspentOutput) AmountBTC() (btcutil.Amount, error) {
	return btcutil.NewAmount(u.Amount)
}

// OutPoint 解析 txid 为链上哈希
func (u UnspentOutput) OutPoint() (*chainhash.Hash, uint32, error) {
	hash, err := chainhash.NewHashFromStr(u.TxID)
	if err != nil {
		return nil, 0, err
	}
	return hash, u.Vout, nil
}

var (
	_ wire.Encoder = CreateWallet{}
	_ wire.Encoder = LoadWallet{}
	_ wire.Encoder = GetWalletInfo{}
	_ wire.Encoder = GetNewAddress{}
	_ wire.Encoder = GetBalance{}
	_ wire.Encoder = SendToAddress{}
	_ wire.Encoder = ListUnspent{}
)
