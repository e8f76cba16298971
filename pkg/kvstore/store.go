// Package kvstore is the opaque key/value surface used for scheduler
// bookkeeping and one-shot flags.
package kvstore

import (
	"context"
	"fmt"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/kventry"
)

// Store wraps the kv_entries table.
type Store struct {
	client *ent.Client
}

// NewStore creates a Store.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Get returns the value for a key, or (nil, false) when absent.
func (s *Store) Get(ctx context.Context, key string) (map[string]interface{}, bool, error) {
	entry, err := s.client.KVEntry.Query().
		Where(kventry.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get kv %q: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set stores a value under a key, overwriting any previous value.
func (s *Store) Set(ctx context.Context, key string, value map[string]interface{}) error {
	n, err := s.client.KVEntry.Update().
		Where(kventry.KeyEQ(key)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update kv %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}
	_, err = s.client.KVEntry.Create().
		SetKey(key).
		SetValue(value).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent Set won the insert race; retry as update.
			_, uerr := s.client.KVEntry.Update().
				Where(kventry.KeyEQ(key)).
				SetValue(value).
				Save(ctx)
			return uerr
		}
		return fmt.Errorf("failed to insert kv %q: %w", key, err)
	}
	return nil
}

// SetIfAbsent stores a value only when the key does not exist yet.
// Returns true when this call created the entry — the one-shot winner.
func (s *Store) SetIfAbsent(ctx context.Context, key string, value map[string]interface{}) (bool, error) {
	_, err := s.client.KVEntry.Create().
		SetKey(key).
		SetValue(value).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert kv %q: %w", key, err)
	}
	return true, nil
}

// ListPrefix returns all entries whose key starts with prefix, ordered by
// key.
func (s *Store) ListPrefix(ctx context.Context, prefix string) (map[string]map[string]interface{}, error) {
	entries, err := s.client.KVEntry.Query().
		Where(kventry.KeyHasPrefix(prefix)).
		Order(ent.Asc(kventry.FieldKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv prefix %q: %w", prefix, err)
	}
	out := make(map[string]map[string]interface{}, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out, nil
}

// Delete removes a key. Missing keys are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.KVEntry.Delete().
		Where(kventry.KeyEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete kv %q: %w", key, err)
	}
	return nil
}
