package feedback

import (
	"context"

	"github.com/wallmod/core/internal/modules/moderation"
)

// Service handles feedback submissions for both deployment shapes.
type Service struct {
	results *moderation.Store
	store   *Store
}

func NewService(results *moderation.Store, store *Store) *Service {
	return &Service{results: results, store: store}
}

// Submit stores a self-contained submission and echoes it back.
func (s *Service) Submit(ctx context.Context, req *Request) (*Request, error) {
	if err := s.store.PutRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// Attach looks up the moderation result referenced by responseID, merges the
// vote onto it and stores the merged record. A missing result is a
// NotFoundError; the original record is left untouched either way.
func (s *Service) Attach(ctx context.Context, responseID string, vote bool, reason string) (*Log, error) {
	entry, err := s.results.GetResultLog(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, &NotFoundError{ResponseID: responseID}
	}

	merged := &Log{ResultLog: *entry, Vote: vote, Reason: reason}
	if err := s.store.PutLog(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}
