// Package identity resolves the post and player a request belongs to.
// The hosting platform supplies both; nothing here authenticates users.
package identity

import (
	"errors"
	"net/http"
	"strings"
)

// AnonymousUsername is used when the platform supplies no display name.
const AnonymousUsername = "anonymous"

// Header names carrying platform context.
const (
	HeaderPostID   = "X-Post-Id"
	HeaderUsername = "X-Username"
	HeaderContext  = "X-Platform-Context"
)

var (
	ErrMissingPost    = errors.New("postId is required but missing from context")
	ErrInvalidContext = errors.New("invalid platform context")
	ErrExpiredContext = errors.New("platform context expired")
)

// Caller identifies who is playing and on which post.
type Caller struct {
	PostID   string
	Username string
}

// Provider resolves the caller of an HTTP request.
type Provider interface {
	Resolve(r *http.Request) (Caller, error)
}

func normalize(postID, username string) (Caller, error) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return Caller{}, ErrMissingPost
	}
	username = strings.TrimSpace(username)
	if username == "" {
		username = AnonymousUsername
	}
	return Caller{PostID: postID, Username: username}, nil
}

// HeaderProvider trusts plain headers set by a platform proxy in front of the service.
type HeaderProvider struct{}

// Resolve reads the post and username headers.
func (HeaderProvider) Resolve(r *http.Request) (Caller, error) {
	return normalize(r.Header.Get(HeaderPostID), r.Header.Get(HeaderUsername))
}
