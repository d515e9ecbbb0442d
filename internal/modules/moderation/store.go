package moderation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wallmod/core/internal/pkg/blobstore"
)

// Store persists result logs as namespaced JSON objects.
type Store struct {
	blob      blobstore.Blob
	namespace string
}

func NewStore(blob blobstore.Blob, namespace string) *Store {
	return &Store{blob: blob, namespace: namespace}
}

func (s *Store) resultLogKey(responseID string) string {
	return fmt.Sprintf("%s/moderation-%s.json", s.namespace, responseID)
}

// PutResultLog writes the entry under its response id. An existing record is
// overwritten silently.
func (s *Store) PutResultLog(ctx context.Context, entry *ResultLog) error {
	if err := entry.ModerationResult.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.blob.Put(ctx, s.resultLogKey(entry.ResponseID), data, "application/json")
}

// GetResultLog looks the entry up by response id. An absent record yields
// (nil, nil), not an error; a record that no longer validates yields a
// CorruptRecordError.
func (s *Store) GetResultLog(ctx context.Context, responseID string) (*ResultLog, error) {
	key := s.resultLogKey(responseID)

	exists, err := s.blob.Exists(ctx, key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	data, err := s.blob.Get(ctx, key)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var entry ResultLog
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, &CorruptRecordError{Key: key, Err: err}
	}
	if err := entry.ModerationResult.Validate(); err != nil {
		return nil, &CorruptRecordError{Key: key, Err: err}
	}
	return &entry, nil
}
