package classify

import "github.com/weisyn/bitcoinrpc/core/wire"

// Bitcoin Core RPC 错误码（与节点 rpc/protocol.h 的枚举保持一致）
const (
	// JSON-RPC 2.0 保留区间
	RPCInvalidRequest = -32600
	RPCMethodNotFound = -32601
	RPCInvalidParams  = -32602
	RPCInternalError  = -32603
	RPCParseError     = -32700

	// 通用错误
	RPCMiscError            = -1
	RPCForbiddenBySafeMode  = -2
	RPCTypeError            = -3
	RPCInvalidAddressOrKey  = -5
	RPCOutOfMemory          = -7
	RPCInvalidParameter     = -8
	RPCDatabaseError        = -20
	RPCDeserializationError = -22
	RPCVerifyError          = -25
	RPCVerifyRejected       = -26
	RPCVerifyAlreadyInChain = -27
	RPCInWarmup             = -28
	RPCMethodDeprecated     = -32

	// P2P 客户端错误
	RPCClientNotConnected      = -9
	RPCClientInInitialDownload = -10
	RPCClientNodeAlreadyAdded  = -23
	RPCClientNodeNotAdded      = -24
	RPCClientNodeNotConnected  = -29
	RPCClientInvalidIPOrSubnet = -30
	RPCClientP2PDisabled       = -31
	RPCClientMempoolDisabled   = -33

	// 钱包错误
	RPCWalletError               = -4
	RPCWalletInsufficientFunds   = -6
	RPCWalletInvalidLabelName    = -11
	RPCWalletKeypoolRanOut       = -12
	RPCWalletUnlockNeeded        = -13
	RPCWalletPassphraseIncorrect = -14
	RPCWalletWrongEncState       = -15
	RPCWalletEncryptionFailed    = -16
	RPCWalletAlreadyUnlocked     = -17
	RPCWalletNotFound            = -18
	RPCWalletNotSpecified        = -19
	RPCWalletAlreadyLoaded       = -35
	RPCWalletAlreadyUnloading    = -36
)

// methodReasons 错误码 → 语义标签静态映射表
var methodReasons = map[int]wire.Reason{
	RPCInvalidRequest: wire.ReasonInvalidRequest,
	RPCMethodNotFound: wire.ReasonMethodNotFound,
	RPCInvalidParams:  wire.ReasonInvalidParams,
	RPCInternalError:  wire.ReasonInternalError,
	RPCParseError:     wire.ReasonParseError,

	RPCMiscError:            wire.ReasonMiscError,
	RPCForbiddenBySafeMode:  wire.ReasonForbiddenBySafeMode,
	RPCTypeError:            wire.ReasonTypeError,
	RPCInvalidAddressOrKey:  wire.ReasonInvalidAddressOrKey,
	RPCOutOfMemory:          wire.ReasonOutOfMemory,
	RPCInvalidParameter:     wire.ReasonInvalidParameter,
	RPCDatabaseError:        wire.ReasonDatabaseError,
	RPCDeserializationError: wire.ReasonDeserializationError,
	RPCVerifyError:          wire.ReasonVerifyError,
	RPCVerifyRejected:       wire.ReasonVerifyRejected,
	RPCVerifyAlreadyInChain: wire.ReasonVerifyAlreadyInChain,
	RPCInWarmup:             wire.ReasonInWarmup,
	RPCMethodDeprecated:     wire.ReasonMethodDeprecated,

	RPCClientNotConnected:      wire.ReasonClientNotConnected,
	RPCClientInInitialDownload: wire.ReasonClientInInitialDownload,
	RPCClientNodeAlreadyAdded:  wire.ReasonClientNodeAlreadyAdded,
	RPCClientNodeNotAdded:      wire.ReasonClientNodeNotAdded,
	RPCClientNodeNotConnected:  wire.ReasonClientNodeNotConnected,
	RPCClientInvalidIPOrSubnet: wire.ReasonClientInvalidIPOrSubnet,
	RPCClientP2PDisabled:       wire.ReasonClientP2PDisabled,
	RPCClientMempoolDisabled:   wire.ReasonClientMempoolDisabled,

	RPCWalletError:               wire.ReasonWalletError,
	RPCWalletInsufficientFunds:   wire.ReasonWalletInsufficientFunds,
	RPCWalletInvalidLabelName:    wire.ReasonWalletInvalidLabelName,
	RPCWalletKeypoolRanOut:       wire.ReasonWalletKeypoolRanOut,
	RPCWalletUnlockNeeded:        wire.ReasonWalletUnlockNeeded,
	RPCWalletPassphraseIncorrect: wire.ReasonWalletPassphraseIncorrect,
	RPCWalletWrongEncState:       wire.ReasonWalletWrongEncState,
	RPCWalletEncryptionFailed:    wire.ReasonWalletEncryptionFailed,
	RPCWalletAlreadyUnlocked:     wire.ReasonWalletAlreadyUnlocked,
	RPCWalletNotFound:            wire.ReasonWalletNotFound,
	RPCWalletNotSpecified:        wire.ReasonWalletNotSpecified,
	RPCWalletAlreadyLoaded:       wire.ReasonWalletAlreadyLoaded,
	RPCWalletAlreadyUnloading:    wire.ReasonWalletAlreadyUnloading,
}

// MethodReason 由节点错误码查语义标签；未收录的码返回 unknown_error
func MethodReason(code int) wire.Reason {
	if reason, ok := methodReasons[code]; ok {
		return reason
	}
	return wire.ReasonUnknownError
}
