// Package store implements the read-modify-write persistence cycle used by
// every entity endpoint: one JSON file in the remote repository holds the
// whole collection, and the file sha read alongside it is the write
// precondition.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"wedding-api/internal/github"
)

// Collection is a JSON-array file bound to an explicit path and branch. The
// branch is required at construction; there is no implicit default target.
type Collection[T any] struct {
	client *github.Client
	path   string
	branch string
}

func NewCollection[T any](client *github.Client, path, branch string) *Collection[T] {
	return &Collection[T]{client: client, path: path, branch: branch}
}

// Load fetches and decodes the whole collection. A file that does not exist
// yet is an empty collection with an empty sha, not an error.
func (c *Collection[T]) Load(ctx context.Context) ([]T, string, error) {
	file, err := c.client.GetFile(ctx, c.path, c.branch)
	if err != nil {
		return nil, "", err
	}
	if file == nil {
		return []T{}, "", nil
	}
	var items []T
	if err := json.Unmarshal(file.Content, &items); err != nil {
		return nil, "", fmt.Errorf("parse %s: %w", c.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, file.SHA, nil
}

// Save writes the full collection back. sha must come from the Load of the
// same request cycle; it is empty only on first-ever creation. Concurrent
// writers lose to whoever PUTs first; the stale writer gets the upstream
// conflict back unmodified.
func (c *Collection[T]) Save(ctx context.Context, items []T, sha, message string) error {
	if err := c.client.EnsureBranch(ctx, c.branch); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	content, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return c.client.PutFile(ctx, c.path, c.branch, message, content, sha)
}

// Document is a singleton JSON-object file, read-only for now (role config is
// edited out of band).
type Document[T any] struct {
	client *github.Client
	path   string
	branch string
}

func NewDocument[T any](client *github.Client, path, branch string) *Document[T] {
	return &Document[T]{client: client, path: path, branch: branch}
}

// Load returns the decoded document and whether the file exists.
func (d *Document[T]) Load(ctx context.Context) (T, bool, error) {
	var doc T
	file, err := d.client.GetFile(ctx, d.path, d.branch)
	if err != nil || file == nil {
		return doc, false, err
	}
	if err := json.Unmarshal(file.Content, &doc); err != nil {
		return doc, false, fmt.Errorf("parse %s: %w", d.path, err)
	}
	return doc, true, nil
}
