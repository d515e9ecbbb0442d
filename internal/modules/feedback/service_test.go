package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wallmod/core/internal/modules/moderation"
	"github.com/wallmod/core/internal/pkg/blobstore"
)

func newTestService(blob blobstore.Blob) *Service {
	return NewService(moderation.NewStore(blob, "test"), NewStore(blob, "test"))
}

func storedResultLog(t *testing.T, blob blobstore.Blob, responseID string) *moderation.ResultLog {
	t.Helper()
	entry := &moderation.ResultLog{
		ResponseID: responseID,
		CommentID:  7,
		PromptID:   "pmpt_test",
		CreatedAt:  "2026-08-01T12:00:00Z",
		Comment:    "nice wall",
		ModerationResult: moderation.Result{
			ResultingText: "nice wall",
			Category:      moderation.CategoryIrrelevant,
			Reasoning:     "small talk",
		},
	}
	require.NoError(t, moderation.NewStore(blob, "test").PutResultLog(context.Background(), entry))
	return entry
}

func TestAttachMissingResult(t *testing.T) {
	svc := newTestService(blobstore.NewMemory())

	_, err := svc.Attach(context.Background(), "resp_gone", true, "agree")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "resp_gone")
}

func TestAttachMergesAndStores(t *testing.T) {
	blob := blobstore.NewMemory()
	svc := newTestService(blob)
	ctx := context.Background()
	entry := storedResultLog(t, blob, "resp_1")

	merged, err := svc.Attach(ctx, "resp_1", false, "wrong category")
	require.NoError(t, err)

	assert.Equal(t, *entry, merged.ResultLog)
	assert.False(t, merged.Vote)
	assert.Equal(t, "wrong category", merged.Reason)

	exists, err := blob.Exists(ctx, "test/moderation-feedback-resp_1.json")
	require.NoError(t, err)
	assert.True(t, exists, "merged record lives under the feedback key")

	// the original result log is untouched
	original, err := moderation.NewStore(blob, "test").GetResultLog(ctx, "resp_1")
	require.NoError(t, err)
	assert.Equal(t, entry, original)
}

func sampleRequest(id string) *Request {
	return &Request{
		ID:      id,
		Comment: "Is this wall still there?",
		Expected: moderation.Result{
			ResultingText: "Is this wall still there?",
			Category:      moderation.CategoryQuestion,
			Reasoning:     "asks about availability",
		},
	}
}

func TestSubmitStoresAndEchoes(t *testing.T) {
	blob := blobstore.NewMemory()
	svc := newTestService(blob)
	ctx := context.Background()

	req := sampleRequest("test-1")
	stored, err := svc.Submit(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, req, stored)

	exists, err := blob.Exists(ctx, "test/feedback-test-1.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestListRequestsKeepsListingOrder(t *testing.T) {
	blob := blobstore.NewMemory()
	store := NewStore(blob, "test")
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.PutRequest(ctx, sampleRequest(id)))
	}

	items, err := store.ListRequests(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{items[0].ID, items[1].ID, items[2].ID}, []string{"c", "a", "b"})
}

func TestListRequestsHonorsLimit(t *testing.T) {
	blob := blobstore.NewMemory()
	store := NewStore(blob, "test")
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, store.PutRequest(ctx, sampleRequest(id)))
	}

	items, err := store.ListRequests(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestListRequestsFailsWholeListingOnCorruptEntry(t *testing.T) {
	blob := blobstore.NewMemory()
	store := NewStore(blob, "test")
	ctx := context.Background()

	require.NoError(t, store.PutRequest(ctx, sampleRequest("good")))
	require.NoError(t, blob.Put(ctx, "test/feedback-bad.json", []byte("not json"), "application/json"))

	_, err := store.ListRequests(ctx, 10)
	var corrupt *moderation.CorruptRecordError
	require.ErrorAs(t, err, &corrupt, "no partial results")
}
