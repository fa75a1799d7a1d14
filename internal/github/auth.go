package github

import "strings"

// AuthHeader builds the Authorization value for a token. Fine-grained tokens
// (github_pat_ prefix) use the Bearer scheme, classic tokens the token scheme.
func AuthHeader(token string) string {
	if strings.HasPrefix(token, "github_pat_") {
		return "Bearer " + token
	}
	return "token " + token
}
