package session

import (
	"errors"
	"fmt"
	"net/http"

	"krearsip/internal/client"
	"krearsip/internal/repository"
	tokenInspector "krearsip/pkg/jwt"

	"go.uber.org/zap"
)

// The two fixed storage keys. They are written and cleared together; a
// token without its wallet (or vice versa) is treated as logged out.
const (
	tokenKey  = "TOKEN_KEY"
	walletKey = "WALLET_KEY"
)

var ErrNotLoggedIn error = errors.New("not logged in")
var ErrSessionExpired error = errors.New("session expired")

// Store owns the session lifecycle: created at login, destroyed at logout or
// when the backend rejects the token. Everything else receives the session
// value explicitly.
type Store struct {
	logs      *zap.SugaredLogger
	settings  Settings
	inspector tokenInspector.Inspector
}

func NewStore(logger *zap.SugaredLogger, settings Settings) *Store {
	return &Store{
		logs:      logger,
		settings:  settings,
		inspector: tokenInspector.NewInspector(),
	}
}

func (s *Store) Save(sess client.Session) error {
	if err := s.settings.SaveSetting(tokenKey, sess.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	if err := s.settings.SaveSetting(walletKey, sess.Wallet); err != nil {
		return fmt.Errorf("persist wallet: %w", err)
	}

	return nil
}

// Current loads the persisted session. An expired token is cleared and
// reported as logged out.
func (s *Store) Current() (client.Session, error) {
	token, err := s.settings.GetSetting(tokenKey)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return client.Session{}, ErrNotLoggedIn
		}
		return client.Session{}, fmt.Errorf("load token: %w", err)
	}

	wallet, err := s.settings.GetSetting(walletKey)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return client.Session{}, ErrNotLoggedIn
		}
		return client.Session{}, fmt.Errorf("load wallet: %w", err)
	}

	expired, err := s.inspector.Expired(token)
	if err == nil && expired {
		if clearErr := s.Clear(); clearErr != nil {
			s.logs.Errorw("failed to clear expired session", "error", clearErr)
		}
		return client.Session{}, ErrSessionExpired
	}

	return client.Session{
		Token:  token,
		Wallet: wallet,
	}, nil
}

func (s *Store) LoggedIn() bool {
	_, err := s.Current()
	return err == nil
}

func (s *Store) Clear() error {
	err := s.settings.DeleteSettings([]string{tokenKey, walletKey})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

// InvalidateIfRejected clears the session when the backend has rejected the
// bearer token. Returns true when the session was invalidated.
func (s *Store) InvalidateIfRejected(err error) bool {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		return false
	}

	if clearErr := s.Clear(); clearErr != nil {
		s.logs.Errorw("failed to clear rejected session", "error", clearErr)
	}

	s.logs.Infow("session invalidated by backend rejection")
	return true
}
