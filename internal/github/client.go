package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public GitHub REST API host.
const DefaultBaseURL = "https://api.github.com"

// ErrTokenMissing is returned by every call when no write credential was
// configured. The handler boundary reports it as a 500.
var ErrTokenMissing = errors.New("GitHub token not configured")

// UpstreamError carries a non-2xx GitHub response through to the caller with
// the original status code and message.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string { return e.Message }

// File is one repository file as read through the Contents API. Content is
// already base64-decoded.
type File struct {
	Content []byte
	SHA     string
}

// Client talks to the Contents and Git-refs endpoints of one repository.
type Client struct {
	http  *resty.Client
	repo  string
	token string
	log   zerolog.Logger
}

// NewClient builds a client for repo ("owner/name"). baseURL is usually
// DefaultBaseURL; tests point it at a local stub.
func NewClient(baseURL, repo, token string, log zerolog.Logger) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/vnd.github.v3+json")
	if token != "" {
		http.SetHeader("Authorization", AuthHeader(token))
	}
	return &Client{http: http, repo: repo, token: token, log: log}
}

type contentResponse struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

type putContentRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
	Branch  string `json:"branch,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
}

// GetFile reads path at ref. A 404 means the file does not exist yet and
// returns (nil, nil) so first reads see an empty collection.
func (c *Client) GetFile(ctx context.Context, path, ref string) (*File, error) {
	if c.token == "" {
		return nil, ErrTokenMissing
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("ref", ref).
		Get(fmt.Sprintf("/repos/%s/contents/%s", c.repo, path))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == 404 {
		return nil, nil
	}
	if !resp.IsSuccess() {
		return nil, c.upstream(resp, "Failed to read "+path)
	}
	var out contentResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	content, err := DecodeBlob(out.Content)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &File{Content: content, SHA: out.SHA}, nil
}

// PutFile writes content to path on branch. sha must be the value read in the
// same request cycle; it is omitted only when the file is being created. A
// stale sha comes back from GitHub as a conflict and is propagated untouched.
func (c *Client) PutFile(ctx context.Context, path, branch, message string, content []byte, sha string) error {
	if c.token == "" {
		return ErrTokenMissing
	}
	body := putContentRequest{
		Message: message,
		Content: EncodeBlob(content),
		SHA:     sha,
		Branch:  branch,
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Put(fmt.Sprintf("/repos/%s/contents/%s", c.repo, path))
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return c.upstream(resp, "Failed to write "+path)
	}
	c.log.Info().Str("path", path).Str("branch", branch).Str("message", message).Msg("committed file")
	return nil
}

func (c *Client) upstream(resp *resty.Response, fallback string) error {
	var ae apiError
	msg := fallback
	if err := json.Unmarshal(resp.Body(), &ae); err == nil && ae.Message != "" {
		msg = ae.Message
	}
	c.log.Error().Int("status", resp.StatusCode()).Str("message", msg).Msg("GitHub API error")
	return &UpstreamError{StatusCode: resp.StatusCode(), Message: msg}
}
