package repository

import (
	"database/sql"
	"fmt"

	"wathiq/internal/database"
)

// KVRepository handles database operations for the durable key-value store
// that backs per-user progress state
type KVRepository struct {
	db *database.DB
}

// NewKVRepository creates a new key-value repository
func NewKVRepository(db *database.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get loads the raw value stored under a user-scoped key.
// The second return value reports whether the key was present.
func (r *KVRepository) Get(userID int64, key string) ([]byte, bool, error) {
	query := `
		SELECT entry_value
		FROM kv_store
		WHERE user_id = ? AND entry_key = ?
	`
	var value string
	err := r.db.QueryRow(query, userID, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return []byte(value), true, nil
}

// Put stores a raw value under a user-scoped key, replacing any prior value
func (r *KVRepository) Put(userID int64, key string, value []byte) error {
	query := r.db.Dialect.RewriteQuery(r.db.Dialect.UpsertKVQuery())
	if _, err := r.db.DB.Exec(query, userID, key, string(value)); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
