package github

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRef(w http.ResponseWriter, sha string) {
	_ = json.NewEncoder(w).Encode(map[string]any{"object": map[string]string{"sha": sha}})
}

func TestEnsureBranchAlreadyExists(t *testing.T) {
	created := false
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/owner/site/git/ref/heads/data":
			writeRef(w, "datasha")
		case "/repos/owner/site/git/refs":
			created = true
		}
	})

	require.NoError(t, c.EnsureBranch(context.Background(), "data"))
	assert.False(t, created)
}

func TestEnsureBranchCreatesFromMain(t *testing.T) {
	var created createRefRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/owner/site/git/ref/heads/data":
			w.WriteHeader(http.StatusNotFound)
		case "/repos/owner/site/git/ref/heads/main":
			writeRef(w, "mainsha")
		case "/repos/owner/site/git/refs":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			w.WriteHeader(http.StatusCreated)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	require.NoError(t, c.EnsureBranch(context.Background(), "data"))
	assert.Equal(t, "refs/heads/data", created.Ref)
	assert.Equal(t, "mainsha", created.SHA)
}

func TestEnsureBranchFallsBackToMaster(t *testing.T) {
	var created createRefRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/owner/site/git/ref/heads/data",
			"/repos/owner/site/git/ref/heads/main":
			w.WriteHeader(http.StatusNotFound)
		case "/repos/owner/site/git/ref/heads/master":
			writeRef(w, "mastersha")
		case "/repos/owner/site/git/refs":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			w.WriteHeader(http.StatusCreated)
		}
	})

	require.NoError(t, c.EnsureBranch(context.Background(), "data"))
	assert.Equal(t, "mastersha", created.SHA)
}

func TestEnsureBranchNoDefaultBranch(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := c.EnsureBranch(context.Background(), "data")
	require.ErrorIs(t, err, ErrNoDefaultBranch)
	assert.Equal(t, "Could not find default branch (main or master) to create data branch", err.Error())
}

func TestEnsureBranchCheckFailurePropagates(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Bad credentials"})
	})

	err := c.EnsureBranch(context.Background(), "data")
	up, ok := err.(*UpstreamError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, up.StatusCode)
	assert.Equal(t, "Bad credentials", up.Message)
}

func TestEnsureBranchCreateFailurePropagates(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/owner/site/git/ref/heads/data":
			w.WriteHeader(http.StatusNotFound)
		case "/repos/owner/site/git/ref/heads/main":
			writeRef(w, "mainsha")
		case "/repos/owner/site/git/refs":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Reference already exists"})
		}
	})

	err := c.EnsureBranch(context.Background(), "data")
	up, ok := err.(*UpstreamError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, up.StatusCode)
	assert.Equal(t, "Reference already exists", up.Message)
}
