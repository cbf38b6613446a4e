package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"krearsip/internal/client"
	"krearsip/internal/config"
	"krearsip/internal/session"
	"krearsip/internal/siwe"
	"krearsip/internal/wallet"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with the configured wallet key",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildApp()
		if err != nil {
			return err
		}

		walletCfg, err := config.NewWallet()
		if err != nil {
			return err
		}

		provider, err := loadWallet(walletCfg)
		if err != nil {
			return err
		}

		engine := siwe.NewEngine(logs, provider, deps.api, siwe.Config{
			Domain:  deps.cfg.SiweDomain,
			URI:     deps.cfg.SiweURI,
			ChainID: deps.cfg.ChainID,
		})

		onChain, err := engine.VerifyNetwork(cmd.Context())
		if err != nil {
			return err
		}
		if !onChain {
			return fmt.Errorf("wallet is not on chain %d, switch networks and retry", deps.cfg.ChainID)
		}

		result, err := engine.Login(cmd.Context())
		if err != nil {
			return fmt.Errorf("login failed (%s): %w", siwe.CodeOf(err), err)
		}

		sess := client.Session{Token: result.Token, Wallet: result.Wallet}
		if err := deps.store.Save(sess); err != nil {
			return err
		}

		return printJSON(map[string]string{
			"wallet": result.Wallet,
			"status": "logged in",
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildApp()
		if err != nil {
			return err
		}

		if err := deps.store.Clear(); err != nil {
			return err
		}

		return printJSON(map[string]string{"status": "logged out"})
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildApp()
		if err != nil {
			return err
		}

		sess, err := deps.currentSession()
		if err != nil {
			return err
		}

		profile, err := deps.api.Me(cmd.Context(), sess)
		if err != nil {
			if deps.store.InvalidateIfRejected(err) {
				return session.ErrSessionExpired
			}
			return err
		}

		return printJSON(profile)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a session is stored and still valid",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildApp()
		if err != nil {
			return err
		}

		sess, err := deps.currentSession()
		if err != nil {
			if errors.Is(err, session.ErrNotLoggedIn) || errors.Is(err, session.ErrSessionExpired) {
				return printJSON(map[string]any{"logged_in": false})
			}
			return err
		}

		return printJSON(map[string]any{
			"logged_in": true,
			"wallet":    sess.Wallet,
		})
	},
}

// loadWallet prefers the encrypted keyfile over a raw key in the
// environment.
func loadWallet(cfg config.Wallet) (*wallet.KeyWallet, error) {
	if cfg.KeyfilePath != "" {
		w, err := wallet.FromKeyfile(cfg.KeyfilePath, cfg.KeyfilePass, cfg.ChainID)
		if err != nil {
			return nil, fmt.Errorf("open keyfile: %w", err)
		}
		return w, nil
	}

	w, err := wallet.FromHex(cfg.PrivateKeyHex, cfg.ChainID)
	if err != nil {
		return nil, fmt.Errorf("load private key: %w", err)
	}
	return w, nil
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, meCmd, statusCmd)
}
