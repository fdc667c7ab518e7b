package identity

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by a platform context token.
type Claims struct {
	PostID   string `json:"postId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenProvider verifies an HMAC-signed context token issued by the hosting platform.
type TokenProvider struct {
	secret []byte
	issuer string
}

// NewTokenProvider creates a provider. An empty issuer accepts any issuer.
func NewTokenProvider(secret []byte, issuer string) *TokenProvider {
	return &TokenProvider{secret: secret, issuer: issuer}
}

// Issue signs a context token for caller. Used by platform adapters and tests.
func (p *TokenProvider) Issue(caller Caller, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		PostID:   caller.PostID,
		Username: caller.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.issuer,
			Subject:   caller.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// Resolve reads the token from the context header or a Bearer Authorization header.
func (p *TokenProvider) Resolve(r *http.Request) (Caller, error) {
	raw := r.Header.Get(HeaderContext)
	if raw == "" {
		if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			raw = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	if raw == "" {
		return Caller{}, ErrMissingPost
	}

	claims, err := p.parse(raw)
	if err != nil {
		return Caller{}, err
	}
	return normalize(claims.PostID, claims.Username)
}

func (p *TokenProvider) parse(raw string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidContext
		}
		return p.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredContext
		}
		return nil, ErrInvalidContext
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidContext
	}
	return claims, nil
}
