package chain

import "math/big"

// Meta is the mined result for one transaction hash: the containing block
// and its timestamp in ISO-8601 UTC.
type Meta struct {
	TxHash       string `json:"tx_hash"`
	BlockNumber  uint64 `json:"block_number"`
	BlockTimeISO string `json:"waktu_blok_iso"`
}

type MetaResult struct {
	Meta  *Meta
	Error error
}

type Account struct {
	Address    string   `json:"address"`
	ChainID    int64    `json:"chain_id"`
	Network    string   `json:"network"`
	BalanceWei *big.Int `json:"balance_wei"`
}

type DeployResult struct {
	ContractAddress string `json:"contract_address"`
	TxHash          string `json:"tx_hash"`
}

type RegisterResult struct {
	ContractAddress string `json:"contract_address"`
	TxHash          string `json:"tx_hash"`
	BlockNumber     uint64 `json:"block_number"`
	BlockTimeISO    string `json:"waktu_blok_iso"`
}
