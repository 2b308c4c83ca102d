package wire

// Reason 失败的语义标签（闭集）
//
// 三个来源：节点 RPC 错误码映射（方法级）、HTTP 状态映射、连接层失败。
type Reason string

// 连接层失败（未收到任何 HTTP 响应）
const (
	ReasonTimeout               Reason = "timeout"
	ReasonConnectionRefused     Reason = "connection_refused"
	ReasonConnectionReset       Reason = "connection_reset"
	ReasonNameResolutionFailure Reason = "name_resolution_failure"
	ReasonNetworkUnreachable    Reason = "network_unreachable"
	ReasonTLSError              Reason = "tls_error"
	ReasonCanceled              Reason = "canceled"
	ReasonTransportOther        Reason = "transport_error"
)

// HTTP 状态派生
const (
	ReasonHTTPBadRequest          Reason = "http_bad_request"
	ReasonHTTPUnauthorized        Reason = "http_unauthorized"
	ReasonHTTPForbidden           Reason = "http_forbidden"
	ReasonHTTPNotFound            Reason = "http_not_found"
	ReasonHTTPMethodNotAllowed    Reason = "http_method_not_allowed"
	ReasonHTTPInternalServerError Reason = "http_internal_server_error"
	ReasonHTTPBadGateway          Reason = "http_bad_gateway"
	ReasonHTTPServiceUnavailable  Reason = "http_service_unavailable"
	ReasonHTTPGatewayTimeout      Reason = "http_gateway_timeout"
)

// ReasonUnknownError 未被任何映射覆盖时的兜底标签
const ReasonUnknownError Reason = "unknown_error"

// 方法级 reason：JSON-RPC 2.0 保留区间
const (
	ReasonParseError     Reason = "parse_error"
	ReasonInvalidRequest Reason = "invalid_request"
	ReasonMethodNotFound Reason = "method_not_found"
	ReasonInvalidParams  Reason = "invalid_params"
	ReasonInternalError  Reason = "internal_error"
)

// 方法级 reason：通用错误
const (
	ReasonMiscError            Reason = "misc_error"
	ReasonForbiddenBySafeMode  Reason = "forbidden_by_safe_mode"
	ReasonTypeError            Reason = "type_error"
	ReasonInvalidAddressOrKey  Reason = "invalid_address_or_key"
	ReasonOutOfMemory          Reason = "out_of_memory"
	ReasonInvalidParameter     Reason = "invalid_parameter"
	ReasonDatabaseError        Reason = "database_error"
	ReasonDeserializationError Reason = "deserialization_error"
	ReasonVerifyError          Reason = "verify_error"
	ReasonVerifyRejected       Reason = "verify_rejected"
	ReasonVerifyAlreadyInChain Reason = "verify_already_in_chain"
	ReasonInWarmup             Reason = "in_warmup"
	ReasonMethodDeprecated     Reason = "method_deprecated"
)

// 方法级 reason：P2P 客户端/节点状态
const (
	ReasonClientNotConnected      Reason = "client_not_connected"
	ReasonClientInInitialDownload Reason = "client_in_initial_download"
	ReasonClientNodeAlreadyAdded  Reason = "client_node_already_added"
	ReasonClientNodeNotAdded      Reason = "client_node_not_added"
	ReasonClientNodeNotConnected  Reason = "client_node_not_connected"
	ReasonClientInvalidIPOrSubnet Reason = "client_invalid_ip_or_subnet"
	ReasonClientP2PDisabled       Reason = "client_p2p_disabled"
	ReasonClientMempoolDisabled   Reason = "client_mempool_disabled"
)

// 方法级 reason：钱包状态
const (
	ReasonWalletError               Reason = "wallet_error"
	ReasonWalletInsufficientFunds   Reason = "wallet_insufficient_funds"
	ReasonWalletInvalidLabelName    Reason = "wallet_invalid_label_name"
	ReasonWalletKeypoolRanOut       Reason = "wallet_keypool_ran_out"
	ReasonWalletUnlockNeeded        Reason = "wallet_unlock_needed"
	ReasonWalletPassphraseIncorrect Reason = "wallet_passphrase_incorrect"
	ReasonWalletWrongEncState       Reason = "wallet_wrong_enc_state"
	ReasonWalletEncryptionFailed    Reason = "wallet_encryption_failed"
	ReasonWalletAlreadyUnlocked     Reason = "wallet_already_unlocked"
	ReasonWalletNotFound            Reason = "wallet_not_found"
	ReasonWalletNotSpecified        Reason = "wallet_not_specified"
	ReasonWalletAlreadyLoaded       Reason = "wallet_already_loaded"
	ReasonWalletAlreadyUnloading    Reason = "wallet_already_unloading"
)

// DefaultRetryableReasons 默认可重试集合：四个 5xx 派生标签
//
// 连接层失败（NoResponse）不在集合内，它在重试策略中无条件可重试。
func DefaultRetryableReasons() []Reason {
	return []Reason{
		ReasonHTTPInternalServerError,
		ReasonHTTPBadGateway,
		ReasonHTTPServiceUnavailable,
		ReasonHTTPGatewayTimeout,
	}
}
