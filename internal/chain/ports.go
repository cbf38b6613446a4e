package chain

import (
	"context"
	"math/big"

	"krearsip/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name EthClient . EthClient
type EthClient interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	NetworkID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name ReceiptCache . ReceiptCache
type ReceiptCache interface {
	GetReceiptsByHash(txHashes []string) ([]repository.Receipt, error)
	SaveReceipts(receipts []repository.Receipt) error
}
