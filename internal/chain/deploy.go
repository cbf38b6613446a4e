package chain

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

var (
	ErrTxReverted      error = errors.New("transaction reverted on chain")
	ErrInvalidFileHash error = errors.New("file hash must be 64 hexadecimal characters")
)

// Backend is the subset of an Ethereum node a deployment needs.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Artifact is a compiled contract as emitted by the build pipeline: the ABI
// plus creation bytecode.
type Artifact struct {
	ABI      abi.ABI
	Bytecode []byte
}

// LoadArtifact reads a compiled contract artifact from disk. The file layout
// is {"abi": [...], "bytecode": "0x..."}.
func LoadArtifact(path string) (Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("read artifact file: %w", err)
	}

	var file struct {
		ABI      json.RawMessage `json:"abi"`
		Bytecode string          `json:"bytecode"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return Artifact{}, fmt.Errorf("unmarshal artifact file: %w", err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(string(file.ABI)))
	if err != nil {
		return Artifact{}, fmt.Errorf("parse contract abi: %w", err)
	}

	bytecode, err := hexutil.Decode(file.Bytecode)
	if err != nil {
		return Artifact{}, fmt.Errorf("decode contract bytecode: %w", err)
	}

	return Artifact{
		ABI:      parsedABI,
		Bytecode: bytecode,
	}, nil
}

// Deployer sends contract transactions with a locally held key.
type Deployer struct {
	logs    *zap.SugaredLogger
	backend Backend
	key     *ecdsa.PrivateKey
	chainID *big.Int
}

func NewDeployer(logger *zap.SugaredLogger, backend Backend, key *ecdsa.PrivateKey, chainID int64) *Deployer {
	return &Deployer{
		logs:    logger,
		backend: backend,
		key:     key,
		chainID: big.NewInt(chainID),
	}
}

// Deploy publishes the contract and waits for the deployment transaction to
// be mined.
func (d *Deployer) Deploy(ctx context.Context, artifact Artifact) (DeployResult, error) {
	auth, err := d.transactor(ctx)
	if err != nil {
		return DeployResult{}, err
	}

	address, tx, _, err := bind.DeployContract(auth, artifact.ABI, artifact.Bytecode, d.backend)
	if err != nil {
		return DeployResult{}, fmt.Errorf("deploy contract: %w", err)
	}

	d.logs.Infow("deployment transaction sent",
		"tx_hash", tx.Hash().Hex(),
		"contract_address", address.Hex())

	receipt, err := bind.WaitMined(ctx, d.backend, tx)
	if err != nil {
		return DeployResult{}, fmt.Errorf("wait for deployment: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return DeployResult{}, fmt.Errorf("deployment %q: %w", tx.Hash().Hex(), ErrTxReverted)
	}

	return DeployResult{
		ContractAddress: strings.ToLower(address.Hex()),
		TxHash:          strings.ToLower(tx.Hash().Hex()),
	}, nil
}

// RegisterWork records a file hash and title on an already deployed contract
// and waits for the transaction to be mined.
func (d *Deployer) RegisterWork(ctx context.Context, artifact Artifact, contractAddr string, fileHash string, title string) (RegisterResult, error) {
	hash, err := fileHashBytes(fileHash)
	if err != nil {
		return RegisterResult{}, err
	}

	auth, err := d.transactor(ctx)
	if err != nil {
		return RegisterResult{}, err
	}

	contract := bind.NewBoundContract(
		common.HexToAddress(contractAddr), artifact.ABI, d.backend, d.backend, d.backend)

	tx, err := contract.Transact(auth, "registerWork", hash, title)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("send registerWork: %w", err)
	}

	d.logs.Infow("registration transaction sent",
		"tx_hash", tx.Hash().Hex(),
		"contract_address", contractAddr)

	receipt, err := bind.WaitMined(ctx, d.backend, tx)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("wait for registration: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return RegisterResult{}, fmt.Errorf("registration %q: %w", tx.Hash().Hex(), ErrTxReverted)
	}

	header, err := d.backend.HeaderByNumber(ctx, receipt.BlockNumber)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("fetch block %s: %w", receipt.BlockNumber, err)
	}

	return RegisterResult{
		ContractAddress: strings.ToLower(contractAddr),
		TxHash:          strings.ToLower(tx.Hash().Hex()),
		BlockNumber:     receipt.BlockNumber.Uint64(),
		BlockTimeISO:    time.Unix(int64(header.Time), 0).UTC().Format(time.RFC3339),
	}, nil
}

func (d *Deployer) transactor(ctx context.Context) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(d.key, d.chainID)
	if err != nil {
		return nil, fmt.Errorf("create transactor: %w", err)
	}
	auth.Context = ctx
	return auth, nil
}

// Address reports the sender address derived from the deployer key.
func (d *Deployer) Address() string {
	return strings.ToLower(crypto.PubkeyToAddress(d.key.PublicKey).Hex())
}

func fileHashBytes(fileHash string) ([32]byte, error) {
	var out [32]byte
	cleaned := strings.TrimPrefix(strings.ToLower(fileHash), "0x")
	raw, err := hex.DecodeString(cleaned)
	if err != nil || len(raw) != 32 {
		return out, ErrInvalidFileHash
	}
	copy(out[:], raw)
	return out, nil
}
