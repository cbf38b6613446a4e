package repository

import (
	"errors"
	"fmt"

	"krearsip/internal/db"
)

var ErrSettingNotFound error = errors.New("setting not found")

type StateRepository struct {
	db Storage
}

func NewStateRepository(db Storage) *StateRepository {
	return &StateRepository{
		db: db,
	}
}

func (r *StateRepository) Migrate() error {
	err := r.db.MigrateModels(&Setting{}, &Receipt{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *StateRepository) SaveSetting(key, value string) error {
	settings := []Setting{{Key: key, Value: value}}

	err := r.db.Upsert(&settings)
	if err != nil {
		return fmt.Errorf("save setting %q: %w", key, err)
	}

	return nil
}

func (r *StateRepository) GetSetting(key string) (string, error) {
	var setting Setting

	err := r.db.GetOneBy("key", key, &setting)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", ErrSettingNotFound
		}
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}

	return setting.Value, nil
}

func (r *StateRepository) DeleteSettings(keys []string) error {
	err := r.db.DeleteBy("key", keys, &Setting{})
	if err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}

	return nil
}

func (r *StateRepository) SaveReceipts(receipts []Receipt) error {
	if len(receipts) == 0 {
		return nil
	}

	err := r.db.Upsert(&receipts)
	if err != nil {
		return fmt.Errorf("save receipts: %w", err)
	}

	return nil
}

func (r *StateRepository) GetReceiptsByHash(txHashes []string) ([]Receipt, error) {
	receipts := []Receipt{}

	err := r.db.GetAllBy("tx_hash", txHashes, &receipts)
	if err != nil {
		return receipts, fmt.Errorf("get receipts by hash: %w", err)
	}

	return receipts, nil
}
