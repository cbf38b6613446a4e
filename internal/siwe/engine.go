package siwe

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"krearsip/internal/client"

	"go.uber.org/zap"
)

// Config pins the message fields that identify this deployment.
type Config struct {
	Domain  string
	URI     string
	ChainID int64
}

// Engine runs the challenge-response login protocol: account access, nonce,
// message construction, signature, backend verification. The steps are
// strictly sequential; each consumes the previous step's output.
type Engine struct {
	logs     *zap.SugaredLogger
	provider Provider
	backend  AuthBackend
	cfg      Config
	now      func() time.Time
}

type LoginResult struct {
	Token  string
	Wallet string
}

func NewEngine(logger *zap.SugaredLogger, provider Provider, backend AuthBackend, cfg Config) *Engine {
	return &Engine{
		logs:     logger,
		provider: provider,
		backend:  backend,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (e *Engine) Login(ctx context.Context) (LoginResult, error) {
	if e.provider == nil {
		return LoginResult{}, newError(CodeWalletUnavailable, "no wallet provider configured", nil)
	}

	wallet, err := e.requestWallet(ctx)
	if err != nil {
		return LoginResult{}, err
	}

	nonce, err := e.requestNonce(ctx, wallet)
	if err != nil {
		return LoginResult{}, err
	}

	message := Message(e.cfg.Domain, e.cfg.URI, e.cfg.ChainID, wallet, nonce, e.now())

	signature, err := e.signMessage(ctx, message, wallet)
	if err != nil {
		return LoginResult{}, err
	}

	token, err := e.submitAuthentication(ctx, message, signature)
	if err != nil {
		return LoginResult{}, err
	}

	e.logs.Infow("siwe login completed", "wallet", wallet)

	return LoginResult{
		Token:  token,
		Wallet: wallet,
	}, nil
}

// VerifyNetwork reports whether the provider is on the configured chain.
func (e *Engine) VerifyNetwork(ctx context.Context) (bool, error) {
	if e.provider == nil {
		return false, newError(CodeWalletUnavailable, "no wallet provider configured", nil)
	}

	chainID, err := e.provider.ChainID(ctx)
	if err != nil {
		return false, newError(CodeWrongNetwork, "could not read wallet network", err)
	}

	return chainID == e.cfg.ChainID, nil
}

func (e *Engine) requestWallet(ctx context.Context) (string, error) {
	accounts, err := e.provider.RequestAccounts(ctx)
	if err != nil {
		if errors.Is(err, ErrRejected) {
			return "", newError(CodeUserRejectedConnection, "wallet connection was declined", err)
		}
		return "", newError(CodeWalletUnavailable, "could not access wallet", err)
	}

	if len(accounts) == 0 {
		return "", newError(CodeNoAccounts, "wallet returned no accounts", nil)
	}

	return strings.ToLower(accounts[0]), nil
}

func (e *Engine) requestNonce(ctx context.Context, wallet string) (string, error) {
	nonce, err := e.backend.Nonce(ctx, wallet)
	if err != nil {
		return "", newError(CodeNonceRequestFailed, "could not obtain nonce from server", err)
	}

	if nonce == "" {
		return "", newError(CodeNoNonce, "server response carried no nonce", nil)
	}

	return nonce, nil
}

func (e *Engine) signMessage(ctx context.Context, message, wallet string) (string, error) {
	signature, err := e.provider.SignPersonal(ctx, []byte(message), wallet)
	if err != nil {
		if errors.Is(err, ErrRejected) {
			return "", newError(CodeUserRejectedSignature, "message signing was declined", err)
		}
		return "", newError(CodeNoSignature, "wallet failed to sign message", err)
	}

	if signature == "" {
		return "", newError(CodeNoSignature, "wallet returned an empty signature", nil)
	}

	return signature, nil
}

func (e *Engine) submitAuthentication(ctx context.Context, message, signature string) (string, error) {
	resp, err := e.backend.VerifySiwe(ctx, message, signature)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.Status {
			case http.StatusUnauthorized:
				return "", newError(CodeInvalidSignature, "signature rejected by server", err)
			case http.StatusForbidden:
				return "", newError(CodeAccessDenied, "wallet is not authorized for any role", err)
			}
		}
		return "", newError(CodeAuthFailed, "server authentication failed", err)
	}

	if resp.AccessToken == "" {
		return "", newError(CodeNoToken, "server response carried no token", nil)
	}

	return resp.AccessToken, nil
}
