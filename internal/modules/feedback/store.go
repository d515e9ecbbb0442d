package feedback

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wallmod/core/internal/modules/moderation"
	"github.com/wallmod/core/internal/pkg/blobstore"
	"golang.org/x/sync/errgroup"
)

// Store persists feedback records as namespaced JSON objects.
type Store struct {
	blob      blobstore.Blob
	namespace string
}

func NewStore(blob blobstore.Blob, namespace string) *Store {
	return &Store{blob: blob, namespace: namespace}
}

func (s *Store) requestKey(id string) string {
	return fmt.Sprintf("%s/feedback-%s.json", s.namespace, id)
}

func (s *Store) requestPrefix() string {
	return s.namespace + "/feedback-"
}

func (s *Store) logKey(responseID string) string {
	return fmt.Sprintf("%s/moderation-feedback-%s.json", s.namespace, responseID)
}

// PutRequest stores a self-contained submission under its id.
func (s *Store) PutRequest(ctx context.Context, req *Request) error {
	if err := req.Expected.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	return s.blob.Put(ctx, s.requestKey(req.ID), data, "application/json")
}

// PutLog stores a merged feedback record under its response id.
func (s *Store) PutLog(ctx context.Context, entry *Log) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.blob.Put(ctx, s.logKey(entry.ResponseID), data, "application/json")
}

// ListRequests enumerates up to limit stored submissions in listing order.
// Object fetches run concurrently; one malformed entry fails the whole
// listing (documented limitation, no partial results).
func (s *Store) ListRequests(ctx context.Context, limit int) ([]Request, error) {
	keys, err := s.blob.List(ctx, s.requestPrefix(), limit)
	if err != nil {
		return nil, err
	}

	out := make([]Request, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key // per-iteration copies; required while go.mod targets go < 1.22
		g.Go(func() error {
			data, err := s.blob.Get(gctx, key)
			if err != nil {
				return err
			}
			var req Request
			if err := json.Unmarshal(data, &req); err != nil {
				return &moderation.CorruptRecordError{Key: key, Err: err}
			}
			if err := req.Expected.Validate(); err != nil {
				return &moderation.CorruptRecordError{Key: key, Err: err}
			}
			out[i] = req
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
