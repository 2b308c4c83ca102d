package classify

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"os"
	"syscall"

	"github.com/weisyn/bitcoinrpc/core/wire"
)

// Failure 把连接层错误（未收到任何 HTTP 响应）映射为 TransportError
//
// 映射依据 net/syscall/context 暴露的错误链，识别不了的归入 transport_error。
func Failure(err error) *wire.TransportError {
	return wire.NewTransportFailure(failureReason(err), err)
}

func failureReason(err error) wire.Reason {
	switch {
	case err == nil:
		return wire.ReasonTransportOther

	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, os.ErrDeadlineExceeded):
		return wire.ReasonTimeout

	case errors.Is(err, context.Canceled):
		return wire.ReasonCanceled

	case errors.Is(err, syscall.ECONNREFUSED):
		return wire.ReasonConnectionRefused

	case errors.Is(err, syscall.ECONNRESET), errors.Is(err, syscall.EPIPE):
		return wire.ReasonConnectionReset

	case errors.Is(err, syscall.ENETUNREACH), errors.Is(err, syscall.EHOSTUNREACH):
		return wire.ReasonNetworkUnreachable
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return wire.ReasonNameResolutionFailure
	}

	var tlsRecordErr tls.RecordHeaderError
	var tlsCertErr *tls.CertificateVerificationError
	if errors.As(err, &tlsRecordErr) || errors.As(err, &tlsCertErr) {
		return wire.ReasonTLSError
	}

	// net.Error 的超时语义优先于泛化标签（http.Client 的超时走这里）
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return wire.ReasonTimeout
	}

	return wire.ReasonTransportOther
}
