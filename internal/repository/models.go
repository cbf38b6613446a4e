package repository

// Setting is a single persisted key/value pair. The session token and wallet
// address live here under fixed keys.
type Setting struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:text;not null"`
}

// Receipt caches confirmed transaction metadata so repeated block-meta
// lookups skip the RPC round-trip.
type Receipt struct {
	TxHash       string `gorm:"primaryKey;size:66"` // 0x + 64 hex chars
	BlockNumber  uint64 `gorm:"not null;index"`
	BlockTimeISO string `gorm:"size:40;not null"` // ISO-8601 UTC
}
