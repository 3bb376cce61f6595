package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/capitalchronicles/internal/common"
	"github.com/dmitrijs2005/capitalchronicles/internal/filex"
	"github.com/dmitrijs2005/capitalchronicles/internal/logging"
	"github.com/dmitrijs2005/capitalchronicles/internal/models"
)

// JSONStore keeps the account mapping in one JSON document.
type JSONStore struct {
	path   string
	logger logging.Logger
}

func NewJSONStore(path string, logger logging.Logger) *JSONStore {
	return &JSONStore{path: path, logger: logger.With("store", KindJSON, "path", path)}
}

// Load returns an empty mapping when the file is missing or not valid JSON.
// Only a failed read of an existing file is reported as an error.
func (s *JSONStore) Load(ctx context.Context) (models.Accounts, error) {
	data, ok, err := filex.ReadIfExists(s.path)
	if err != nil {
		return models.Accounts{}, fmt.Errorf("%w: read %s: %v", common.ErrPersistenceUnavailable, s.path, err)
	}
	if !ok {
		s.logger.Debug(ctx, "account file not found, starting empty")
		return models.Accounts{}, nil
	}

	var accounts models.Accounts
	if err := json.Unmarshal(data, &accounts); err != nil {
		s.logger.Warn(ctx, "account file is not valid JSON, starting empty", "error", err)
		return models.Accounts{}, nil
	}
	if accounts == nil {
		accounts = models.Accounts{}
	}
	return accounts, nil
}

// Save overwrites the file with the full mapping.
func (s *JSONStore) Save(ctx context.Context, accounts models.Accounts) error {
	if accounts == nil {
		accounts = models.Accounts{}
	}
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := filex.WriteFile(s.path, data); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistenceUnavailable, err)
	}
	s.logger.Debug(ctx, "accounts saved", "count", len(accounts))
	return nil
}

func (s *JSONStore) Close() error { return nil }
