package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "owner/site", "ghp_testtoken", zerolog.Nop())
}

func TestGetFileDecodesContentAndSHA(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/owner/site/contents/data/guests.json", r.URL.Path)
		assert.Equal(t, "data", r.URL.Query().Get("ref"))
		assert.Equal(t, "token ghp_testtoken", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"content": EncodeBlob([]byte(`[{"pin":"1234"}]`)),
			"sha":     "abc123",
		})
	})

	file, err := c.GetFile(context.Background(), "data/guests.json", "data")
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, `[{"pin":"1234"}]`, string(file.Content))
	assert.Equal(t, "abc123", file.SHA)
}

func TestGetFileMissingIsNotAnError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
	})

	file, err := c.GetFile(context.Background(), "data/faqs.json", "data")
	require.NoError(t, err)
	assert.Nil(t, file)
}

func TestGetFileUpstreamErrorKeepsStatusAndMessage(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "API rate limit exceeded"})
	})

	_, err := c.GetFile(context.Background(), "data/guests.json", "data")
	require.Error(t, err)
	up, ok := err.(*UpstreamError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, up.StatusCode)
	assert.Equal(t, "API rate limit exceeded", up.Message)
}

func TestPutFileBodyShape(t *testing.T) {
	var got putContentRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	})

	err := c.PutFile(context.Background(), "data/guests.json", "data", "Added new guest", []byte(`[]`), "oldsha")
	require.NoError(t, err)
	assert.Equal(t, "Added new guest", got.Message)
	assert.Equal(t, "data", got.Branch)
	assert.Equal(t, "oldsha", got.SHA)
	decoded, err := DecodeBlob(got.Content)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(decoded))
}

func TestPutFileOmitsSHAOnCreate(t *testing.T) {
	var raw map[string]any
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	})

	require.NoError(t, c.PutFile(context.Background(), "data/guests.json", "data", "Added new guest", []byte(`[]`), ""))
	_, present := raw["sha"]
	assert.False(t, present, "sha must be omitted on first-ever creation")
}

func TestPutFileConflictPropagates(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "is at abc but expected def"})
	})

	err := c.PutFile(context.Background(), "data/guests.json", "data", "Updated guest", []byte(`[]`), "stale")
	up, ok := err.(*UpstreamError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, up.StatusCode)
}

func TestMissingTokenFailsEveryCall(t *testing.T) {
	c := NewClient(DefaultBaseURL, "owner/site", "", zerolog.Nop())

	_, err := c.GetFile(context.Background(), "data/guests.json", "data")
	assert.ErrorIs(t, err, ErrTokenMissing)
	assert.ErrorIs(t, c.PutFile(context.Background(), "p", "data", "m", nil, ""), ErrTokenMissing)
	assert.ErrorIs(t, c.EnsureBranch(context.Background(), "data"), ErrTokenMissing)
}

func TestFineGrainedTokenUsesBearer(t *testing.T) {
	var auth string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"content": "", "sha": "s"})
	})
	c.token = "github_pat_abc"
	c.http.SetHeader("Authorization", AuthHeader(c.token))

	_, err := c.GetFile(context.Background(), "data/guests.json", "data")
	require.NoError(t, err)
	assert.Equal(t, "Bearer github_pat_abc", auth)
}
