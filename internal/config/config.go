package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiURLEnvKey       = "KREARSIP_API_URL"
	rpcURLEnvKey       = "SEPOLIA_RPC"
	privateKeyEnvKey   = "PRIVATE_KEY"
	keyfileEnvKey      = "KEYFILE"
	keyfilePassEnvKey  = "KEYFILE_PASSPHRASE"
	chainIDEnvKey      = "CHAIN_ID"
	siweDomainEnvKey   = "SIWE_DOMAIN"
	siweURIEnvKey      = "SIWE_URI"
	contractEnvKey     = "CONTRACT_ADDRESS"
	artifactPathEnvKey = "ARTIFACT_PATH"
	stateDBEnvKey      = "STATE_DB"
	httpTimeoutEnvKey  = "HTTP_TIMEOUT_SECONDS"
)

const (
	defaultChainID     = 11155111 // Sepolia
	defaultSiweDomain  = "krearsip.id"
	defaultSiweURI     = "https://krearsip.id"
	defaultHTTPTimeout = 15 * time.Second
)

// App holds configuration for commands that talk to the Krearsip backend.
type App struct {
	APIBaseURL  string
	SiweDomain  string
	SiweURI     string
	ChainID     int64
	StateDBPath string
	HTTPTimeout time.Duration
}

// Chain holds configuration for commands that talk to the RPC node directly.
type Chain struct {
	RPCURL          string
	PrivateKeyHex   string
	KeyfilePath     string
	KeyfilePass     string
	ChainID         int64
	ContractAddress string
	ArtifactPath    string
	StateDBPath     string
}

// NewApp reads backend-facing configuration. Chain credentials are not
// required here so that login and listing commands work without a key.
func NewApp() (App, error) {
	loadDotEnv()

	apiURL, ok := os.LookupEnv(apiURLEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiURLEnvKey)
	}

	chainID, err := chainID()
	if err != nil {
		return App{}, err
	}

	statePath, err := stateDBPath()
	if err != nil {
		return App{}, err
	}

	return App{
		APIBaseURL:  apiURL,
		SiweDomain:  envOrDefault(siweDomainEnvKey, defaultSiweDomain),
		SiweURI:     envOrDefault(siweURIEnvKey, defaultSiweURI),
		ChainID:     chainID,
		StateDBPath: statePath,
		HTTPTimeout: httpTimeout(),
	}, nil
}

// Wallet holds the local signing key material. Either a raw private key or
// an encrypted keyfile must be configured.
type Wallet struct {
	PrivateKeyHex string
	KeyfilePath   string
	KeyfilePass   string
	ChainID       int64
}

// NewWallet reads key material for commands that sign locally but do not
// talk to an RPC node, such as login.
func NewWallet() (Wallet, error) {
	loadDotEnv()

	keyHex := os.Getenv(privateKeyEnvKey)
	keyfile := os.Getenv(keyfileEnvKey)
	if keyHex == "" && keyfile == "" {
		return Wallet{}, fmt.Errorf("%w: %s or %s", errEnvVarNotFound, privateKeyEnvKey, keyfileEnvKey)
	}

	chainID, err := chainID()
	if err != nil {
		return Wallet{}, err
	}

	return Wallet{
		PrivateKeyHex: keyHex,
		KeyfilePath:   keyfile,
		KeyfilePass:   os.Getenv(keyfilePassEnvKey),
		ChainID:       chainID,
	}, nil
}

// NewChain reads node-facing configuration for the chain utilities. Either a
// raw private key or an encrypted keyfile must be configured.
func NewChain() (Chain, error) {
	loadDotEnv()

	rpcURL, ok := os.LookupEnv(rpcURLEnvKey)
	if !ok {
		return Chain{}, fmt.Errorf("%w: %s", errEnvVarNotFound, rpcURLEnvKey)
	}

	keyHex := os.Getenv(privateKeyEnvKey)
	keyfile := os.Getenv(keyfileEnvKey)
	if keyHex == "" && keyfile == "" {
		return Chain{}, fmt.Errorf("%w: %s or %s", errEnvVarNotFound, privateKeyEnvKey, keyfileEnvKey)
	}

	chainID, err := chainID()
	if err != nil {
		return Chain{}, err
	}

	statePath, err := stateDBPath()
	if err != nil {
		return Chain{}, err
	}

	return Chain{
		RPCURL:          rpcURL,
		PrivateKeyHex:   keyHex,
		KeyfilePath:     keyfile,
		KeyfilePass:     os.Getenv(keyfilePassEnvKey),
		ChainID:         chainID,
		ContractAddress: os.Getenv(contractEnvKey),
		ArtifactPath:    os.Getenv(artifactPathEnvKey),
		StateDBPath:     statePath,
	}, nil
}

func loadDotEnv() {
	// missing .env is fine, env vars may be set directly
	_ = godotenv.Load()
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func chainID() (int64, error) {
	raw, ok := os.LookupEnv(chainIDEnvKey)
	if !ok {
		return defaultChainID, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", chainIDEnvKey, err)
	}
	return id, nil
}

func stateDBPath() (string, error) {
	if path, ok := os.LookupEnv(stateDBEnvKey); ok {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".krearsip", "state.db"), nil
}

func httpTimeout() time.Duration {
	raw, ok := os.LookupEnv(httpTimeoutEnvKey)
	if !ok {
		return defaultHTTPTimeout
	}

	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return defaultHTTPTimeout
	}
	return time.Duration(secs) * time.Second
}
