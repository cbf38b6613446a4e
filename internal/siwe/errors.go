package siwe

import (
	"errors"
	"fmt"
)

// Stable machine-readable failure codes. Callers branch on these, never on
// message text.
const (
	CodeWalletUnavailable      = "WALLET_UNAVAILABLE"
	CodeUserRejectedConnection = "USER_REJECTED_CONNECTION"
	CodeNoAccounts             = "NO_ACCOUNTS"
	CodeNonceRequestFailed     = "NONCE_REQUEST_FAILED"
	CodeNoNonce                = "NO_NONCE"
	CodeUserRejectedSignature  = "USER_REJECTED_SIGNATURE"
	CodeNoSignature            = "NO_SIGNATURE"
	CodeInvalidSignature       = "INVALID_SIGNATURE"
	CodeAccessDenied           = "ACCESS_DENIED"
	CodeNoToken                = "NO_TOKEN"
	CodeAuthFailed             = "AUTH_FAILED"
	CodeWrongNetwork           = "WRONG_NETWORK"
)

// ErrRejected is returned by wallet providers when their owner declines a
// connection or signature request.
var ErrRejected error = errors.New("request rejected by wallet owner")

// Error is a handshake failure with a stable code and the preserved cause.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// CodeOf extracts the stable code from a handshake failure, or "" when the
// error did not originate here.
func CodeOf(err error) string {
	var siweErr *Error
	if errors.As(err, &siweErr) {
		return siweErr.Code
	}
	return ""
}
