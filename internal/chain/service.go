package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"sync"
	"time"

	"krearsip/internal/repository"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
	"go.uber.org/zap"
)

// ErrReceiptNotAvailable means the transaction is not mined yet (or the
// hash is unknown to the node). Callers may retry later; this is not a
// failed transaction.
var ErrReceiptNotAvailable error = errors.New("transaction receipt not available yet")

var txHashRe = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// ValidateTxHash rejects malformed hashes before any RPC call.
func ValidateTxHash(txHash string) error {
	return validation.Validate(txHash, validation.Required, validation.Match(txHashRe))
}

// Service bridges submitted transaction hashes and their mined results.
type Service struct {
	logs   *zap.SugaredLogger
	client EthClient
	cache  ReceiptCache
}

func NewService(logger *zap.SugaredLogger, client EthClient, cache ReceiptCache) *Service {
	return &Service{
		logs:   logger,
		client: client,
		cache:  cache,
	}
}

// BlockMeta resolves one transaction hash to its block number and block
// timestamp. Idempotent: a confirmed hash yields the same result every call.
func (s *Service) BlockMeta(ctx context.Context, txHash string) (Meta, error) {
	if err := ValidateTxHash(txHash); err != nil {
		return Meta{}, fmt.Errorf("validate tx hash: %w", err)
	}

	receipt, err := s.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return Meta{}, fmt.Errorf("receipt for %q: %w", txHash, ErrReceiptNotAvailable)
		}
		return Meta{}, fmt.Errorf("fetch receipt for %q: %w", txHash, err)
	}

	header, err := s.client.HeaderByNumber(ctx, receipt.BlockNumber)
	if err != nil {
		return Meta{}, fmt.Errorf("fetch block %s: %w", receipt.BlockNumber, err)
	}

	return Meta{
		TxHash:       strings.ToLower(txHash),
		BlockNumber:  receipt.BlockNumber.Uint64(),
		BlockTimeISO: time.Unix(int64(header.Time), 0).UTC().Format(time.RFC3339),
	}, nil
}

// BlockMetas fetches several hashes concurrently; partial results come back
// together with the joined errors of the hashes that failed.
func (s *Service) BlockMetas(ctx context.Context, txHashes []string) ([]Meta, error) {
	resultsChan := make(chan *MetaResult)

	var wg sync.WaitGroup
	for _, txHash := range txHashes {
		wg.Add(1)
		go func(txHash string) {
			defer wg.Done()
			meta, err := s.BlockMeta(ctx, txHash)
			if err != nil {
				resultsChan <- &MetaResult{Error: err}
				return
			}
			resultsChan <- &MetaResult{Meta: &meta}
		}(txHash)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []Meta
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		results = append(results, *result.Meta)
	}

	return results, aggrErr
}

// BlockMetasCached consults the local receipt cache first, fetches only the
// missing hashes from the node, and persists what it learned.
func (s *Service) BlockMetasCached(ctx context.Context, txHashes []string) ([]Meta, error) {
	normalized := make([]string, len(txHashes))
	for i, txHash := range txHashes {
		normalized[i] = strings.ToLower(txHash)
	}

	cached, err := s.cache.GetReceiptsByHash(normalized)
	if err != nil {
		return nil, fmt.Errorf("get receipts from cache: %w", err)
	}

	s.logs.Infow("receipts fetched from cache", "count", len(cached))

	results := make([]Meta, 0, len(normalized))
	cachedMap := make(map[string]struct{})
	for _, receipt := range cached {
		cachedMap[receipt.TxHash] = struct{}{}
		results = append(results, Meta{
			TxHash:       receipt.TxHash,
			BlockNumber:  receipt.BlockNumber,
			BlockTimeISO: receipt.BlockTimeISO,
		})
	}

	if len(results) == len(normalized) {
		return results, nil
	}

	missing := make([]string, 0, len(normalized)-len(results))
	for _, txHash := range normalized {
		if _, ok := cachedMap[txHash]; !ok {
			missing = append(missing, txHash)
		}
	}

	nodeMetas, err := s.BlockMetas(ctx, missing)
	if err != nil {
		return append(results, nodeMetas...), err
	}

	receipts := make([]repository.Receipt, 0, len(nodeMetas))
	for _, meta := range nodeMetas {
		receipts = append(receipts, repository.Receipt{
			TxHash:       meta.TxHash,
			BlockNumber:  meta.BlockNumber,
			BlockTimeISO: meta.BlockTimeISO,
		})
	}

	if err := s.cache.SaveReceipts(receipts); err != nil {
		s.logs.Errorw("failed to cache receipts", "error", err, "count", len(receipts))
	}

	return append(results, nodeMetas...), nil
}

// AccountInfo answers the whoami diagnostic: configured network plus the
// address balance.
func (s *Service) AccountInfo(ctx context.Context, address string) (Account, error) {
	chainID, err := s.client.NetworkID(ctx)
	if err != nil {
		return Account{}, fmt.Errorf("fetch network id: %w", err)
	}

	balance, err := s.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return Account{}, fmt.Errorf("fetch balance: %w", err)
	}

	return Account{
		Address:    strings.ToLower(address),
		ChainID:    chainID.Int64(),
		Network:    networkName(chainID),
		BalanceWei: balance,
	}, nil
}

func networkName(chainID *big.Int) string {
	switch chainID.Int64() {
	case 1:
		return "mainnet"
	case 11155111:
		return "sepolia"
	case 17000:
		return "holesky"
	default:
		return fmt.Sprintf("chain-%d", chainID.Int64())
	}
}
