package review

import (
	"context"
	"errors"
	"time"

	"github.com/wallmod/core/internal/modules/moderation"
	"github.com/wallmod/core/internal/pkg/walls"
)

var (
	ErrWallNotFound    = errors.New("Wall not found")
	ErrCommentNotFound = errors.New("Comment not found")
)

// WallLoader is the slice of the wall API the review flow needs.
type WallLoader interface {
	LoadWall(ctx context.Context, id int) (*walls.Wall, error)
}

// Result is the review response: the moderation result plus the external
// response id when a classification call actually happened.
type Result struct {
	moderation.Result
	ResponseID string `json:"responseId,omitempty"`
}

// Service orchestrates the review flow: load wall, locate comment, moderate,
// log the result.
type Service struct {
	walls    WallLoader
	client   *moderation.Client
	store    *moderation.Store
	promptID string
}

func NewService(wallLoader WallLoader, client *moderation.Client, store *moderation.Store, promptID string) *Service {
	return &Service{walls: wallLoader, client: client, store: store, promptID: promptID}
}

// Review moderates the comment identified by wallID/commentID. Externally
// produced results are logged to the result store before responding; guard
// results carry no response id and are not logged.
func (s *Service) Review(ctx context.Context, wallID, commentID int) (*Result, error) {
	wall, err := s.walls.LoadWall(ctx, wallID)
	if err != nil {
		return nil, err
	}
	if wall == nil {
		return nil, ErrWallNotFound
	}

	var comment *walls.Comment
	for i := range wall.Comments {
		if wall.Comments[i].ID == commentID {
			comment = &wall.Comments[i]
			break
		}
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	outcome, err := s.client.Moderate(ctx, comment.Body)
	if err != nil {
		return nil, err
	}

	if outcome.ResponseID != "" {
		entry := &moderation.ResultLog{
			ResponseID:       outcome.ResponseID,
			CommentID:        commentID,
			PromptID:         s.promptID,
			CreatedAt:        outcome.CreatedAt.UTC().Format(time.RFC3339),
			Comment:          comment.Body,
			ModerationResult: outcome.Result,
		}
		if err := s.store.PutResultLog(ctx, entry); err != nil {
			return nil, err
		}
	}

	return &Result{Result: outcome.Result, ResponseID: outcome.ResponseID}, nil
}
