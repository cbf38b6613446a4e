package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"

	"krearsip/internal/chain"
	"krearsip/internal/config"
	"krearsip/internal/db"
	"krearsip/internal/repository"
	"krearsip/internal/wallet"
	"krearsip/pkg/fingerprint"
)

var errContractNotConfigured = errors.New("CONTRACT_ADDRESS is not configured")
var errArtifactNotConfigured = errors.New("ARTIFACT_PATH is not configured")

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Talk to the RPC node directly",
}

var chainDeployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the registry contract",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildChain(cmd.Context())
		if err != nil {
			return err
		}
		defer deps.close()

		if deps.cfg.ArtifactPath == "" {
			return errArtifactNotConfigured
		}

		artifact, err := chain.LoadArtifact(deps.cfg.ArtifactPath)
		if err != nil {
			return err
		}

		result, err := deps.deployer.Deploy(cmd.Context(), artifact)
		if err != nil {
			return err
		}

		return printJSON(result)
	},
}

var chainRegisterCmd = &cobra.Command{
	Use:   "register <file>",
	Short: "Register a file hash and title on the deployed contract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, err := cmd.Flags().GetString("title")
		if err != nil {
			return err
		}

		deps, err := buildChain(cmd.Context())
		if err != nil {
			return err
		}
		defer deps.close()

		if deps.cfg.ContractAddress == "" {
			return errContractNotConfigured
		}
		if deps.cfg.ArtifactPath == "" {
			return errArtifactNotConfigured
		}

		artifact, err := chain.LoadArtifact(deps.cfg.ArtifactPath)
		if err != nil {
			return err
		}

		hash, err := fingerprint.File(args[0])
		if err != nil {
			return fmt.Errorf("fingerprint %q: %w", args[0], err)
		}

		result, err := deps.deployer.RegisterWork(
			cmd.Context(), artifact, deps.cfg.ContractAddress, hash, title)
		if err != nil {
			return err
		}

		return printJSON(result)
	},
}

var blockMetaCmd = &cobra.Command{
	Use:   "block-meta <tx-hash>...",
	Short: "Resolve transaction hashes to block number and timestamp",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildChain(cmd.Context())
		if err != nil {
			return err
		}
		defer deps.close()

		metas, err := deps.service.BlockMetasCached(cmd.Context(), args)
		if err != nil {
			if len(metas) > 0 {
				// show partial results alongside the error
				_ = printJSON(metas)
			}
			return err
		}

		return printJSON(metas)
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signing address, network and balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildChain(cmd.Context())
		if err != nil {
			return err
		}
		defer deps.close()

		account, err := deps.service.AccountInfo(cmd.Context(), deps.wallet.Address())
		if err != nil {
			return err
		}

		return printJSON(account)
	},
}

var keyfileCmd = &cobra.Command{
	Use:   "keyfile <path>",
	Short: "Encrypt the configured private key into a keyfile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		passphrase, err := cmd.Flags().GetString("passphrase")
		if err != nil {
			return err
		}

		cfg, err := config.NewWallet()
		if err != nil {
			return err
		}
		if cfg.PrivateKeyHex == "" {
			return errors.New("PRIVATE_KEY must be set to write a keyfile")
		}

		w, err := wallet.FromHex(cfg.PrivateKeyHex, cfg.ChainID)
		if err != nil {
			return err
		}

		if err := w.WriteKeyfile(args[0], passphrase); err != nil {
			return err
		}

		return printJSON(map[string]string{
			"keyfile": args[0],
			"address": w.Address(),
		})
	},
}

// chainDeps is the wiring shared by the node-facing commands.
type chainDeps struct {
	cfg      config.Chain
	node     *ethclient.Client
	wallet   *wallet.KeyWallet
	service  *chain.Service
	deployer *chain.Deployer
}

func (d *chainDeps) close() {
	d.node.Close()
}

func buildChain(ctx context.Context) (*chainDeps, error) {
	cfg, err := config.NewChain()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	node, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc node: %w", err)
	}

	w, err := loadWallet(config.Wallet{
		PrivateKeyHex: cfg.PrivateKeyHex,
		KeyfilePath:   cfg.KeyfilePath,
		KeyfilePass:   cfg.KeyfilePass,
		ChainID:       cfg.ChainID,
	})
	if err != nil {
		node.Close()
		return nil, err
	}

	sqlite, err := db.NewSqliteDB(cfg.StateDBPath)
	if err != nil {
		node.Close()
		return nil, fmt.Errorf("open state database: %w", err)
	}

	repo := repository.NewStateRepository(sqlite)
	if err := repo.Migrate(); err != nil {
		node.Close()
		return nil, fmt.Errorf("migrate state database: %w", err)
	}

	return &chainDeps{
		cfg:      cfg,
		node:     node,
		wallet:   w,
		service:  chain.NewService(logs, node, repo),
		deployer: chain.NewDeployer(logs, node, w.PrivateKey(), cfg.ChainID),
	}, nil
}

func init() {
	chainRegisterCmd.Flags().String("title", "", "title of the work")
	_ = chainRegisterCmd.MarkFlagRequired("title")
	keyfileCmd.Flags().String("passphrase", "", "passphrase protecting the keyfile")
	_ = keyfileCmd.MarkFlagRequired("passphrase")

	chainCmd.AddCommand(chainDeployCmd, chainRegisterCmd, blockMetaCmd, whoamiCmd, keyfileCmd)
	rootCmd.AddCommand(chainCmd)
}
