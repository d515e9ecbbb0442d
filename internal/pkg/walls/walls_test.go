package walls

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWallRequiresToken(t *testing.T) {
	client := New("http://example.invalid", "")

	_, err := client.LoadWall(context.Background(), 1)
	assert.Error(t, err)
}

func TestLoadWallSendsBearerToken(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":1,"comments":[]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "secret")
	wall, err := client.LoadWall(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, wall)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "/walls/1", gotPath)
}

func TestLoadWallDecodesComments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id":3,"comments":[{"id":7,"body":"hi","feedback":"confirmation","report_type":null,"created_at":"2026-08-01T12:00:00Z"}]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "secret")
	wall, err := client.LoadWall(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, wall)

	assert.Equal(t, 3, wall.ID)
	require.Len(t, wall.Comments, 1)
	assert.Equal(t, 7, wall.Comments[0].ID)
	assert.Equal(t, "hi", wall.Comments[0].Body)
	assert.Nil(t, wall.Comments[0].ReportType)
}

func TestLoadWallMissing(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "404 status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "null body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte("null"))
			},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte("  \n"))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			wall, err := New(srv.URL, "secret").LoadWall(context.Background(), 999)
			require.NoError(t, err, "a missing wall is not a transport error")
			assert.Nil(t, wall)
		})
	}
}

func TestLoadWallUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "secret").LoadWall(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestLoadWallMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id":"not a number"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "secret").LoadWall(context.Background(), 1)
	assert.Error(t, err)
}
