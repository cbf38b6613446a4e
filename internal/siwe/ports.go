package siwe

import (
	"context"

	"krearsip/internal/client"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Provider is the wallet capability the handshake signs with. Private keys
// never cross this boundary; only messages go in and signatures come out.
//
//counterfeiter:generate -o fake -fake-name Provider . Provider
type Provider interface {
	RequestAccounts(ctx context.Context) ([]string, error)
	SignPersonal(ctx context.Context, message []byte, account string) (string, error)
	ChainID(ctx context.Context) (int64, error)
}

//counterfeiter:generate -o fake -fake-name AuthBackend . AuthBackend
type AuthBackend interface {
	Nonce(ctx context.Context, alamatWallet string) (string, error)
	VerifySiwe(ctx context.Context, message, signature string) (client.AuthResponse, error)
}
