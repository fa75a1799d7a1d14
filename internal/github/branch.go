package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoDefaultBranch is returned when neither main nor master exists to seed
// the data branch from.
var ErrNoDefaultBranch = errors.New("Could not find default branch (main or master) to create data branch")

type refResponse struct {
	Object struct {
		SHA string `json:"sha"`
	} `json:"object"`
}

type createRefRequest struct {
	Ref string `json:"ref"`
	SHA string `json:"sha"`
}

// EnsureBranch guarantees heads/<branch> exists, cloning it from main (or
// master) when absent. Idempotent; two first-writers racing the create may
// still collide, which surfaces as the upstream "reference already exists".
func (c *Client) EnsureBranch(ctx context.Context, branch string) error {
	if c.token == "" {
		return ErrTokenMissing
	}
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/repos/%s/git/ref/heads/%s", c.repo, branch))
	if err != nil {
		return err
	}
	if resp.IsSuccess() {
		return nil
	}
	if resp.StatusCode() != 404 {
		return c.upstream(resp, "Failed to check "+branch+" branch")
	}

	sourceSHA, ok := c.refSHA(ctx, "main")
	if !ok {
		if sourceSHA, ok = c.refSHA(ctx, "master"); !ok {
			return ErrNoDefaultBranch
		}
	}

	createResp, err := c.http.R().
		SetContext(ctx).
		SetBody(createRefRequest{Ref: "refs/heads/" + branch, SHA: sourceSHA}).
		Post(fmt.Sprintf("/repos/%s/git/refs", c.repo))
	if err != nil {
		return err
	}
	if !createResp.IsSuccess() {
		return c.upstream(createResp, "Failed to create "+branch+" branch")
	}
	c.log.Info().Str("branch", branch).Str("source_sha", sourceSHA).Msg("created data branch")
	return nil
}

func (c *Client) refSHA(ctx context.Context, branch string) (string, bool) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/repos/%s/git/ref/heads/%s", c.repo, branch))
	if err != nil || !resp.IsSuccess() {
		return "", false
	}
	var ref refResponse
	if err := json.Unmarshal(resp.Body(), &ref); err != nil || ref.Object.SHA == "" {
		return "", false
	}
	return ref.Object.SHA, true
}
