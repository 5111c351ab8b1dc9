package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/christiantuyishime01/momoledger/internal/momo/entity"
	"github.com/christiantuyishime01/momoledger/internal/pkg/pkgerror"
)

// LoadSnapshot reads a flat JSON array of transaction records. A readable
// snapshot is authoritative: callers that find one skip re-extraction
// entirely.
func LoadSnapshot(path string) ([]entity.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return []entity.Transaction{}, pkgerror.NewSourceUnavailable(err)
	}

	var records []entity.Transaction
	if err := json.Unmarshal(data, &records); err != nil {
		return []entity.Transaction{}, pkgerror.NewMalformedSource(err)
	}

	return records, nil
}

// SaveSnapshot writes the record set as an indented flat JSON array, creating
// parent directories as needed.
func SaveSnapshot(path string, records []entity.Transaction) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return pkgerror.NewServer(err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return pkgerror.NewServer(err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return pkgerror.NewServer(err)
	}

	return nil
}
