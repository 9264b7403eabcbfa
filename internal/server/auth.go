package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidator validates HS256 bearer tokens signed with the shared
// secret from the configuration.
type TokenValidator struct {
	secret []byte
	issuer string
}

// Client identifies an authenticated API client.
type Client struct {
	Username string
}

// Claims represents the token claims accepted by the service.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewTokenValidator creates a validator for the given shared secret. The
// issuer is only enforced when non-empty.
func NewTokenValidator(secret, issuer string) *TokenValidator {
	return &TokenValidator{secret: []byte(secret), issuer: issuer}
}

// ValidateToken validates a JWT token and returns the client it
// identifies.
func (v *TokenValidator) ValidateToken(tokenString string) (*Client, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return nil, fmt.Errorf("invalid issuer: expected %s, got %s", v.issuer, claims.Issuer)
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("token expired")
	}

	if claims.Username == "" {
		return nil, fmt.Errorf("token has no username")
	}

	return &Client{Username: claims.Username}, nil
}

// extractTokenFromHeader extracts a bearer token from an HTTP request.
func extractTokenFromHeader(r *http.Request) string {
	// Try Sec-WebSocket-Protocol header first (recommended for WebSocket)
	protocols := r.Header.Get("Sec-WebSocket-Protocol")
	if protocols != "" {
		// Format: "access_token, <token>"
		var parts []string
		for _, p := range strings.Split(protocols, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		if len(parts) == 2 && parts[0] == "access_token" {
			return parts[1]
		}
	}

	// Try Authorization header
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return auth[len("Bearer "):]
	}

	// Try query parameter (less secure, but supported)
	return r.URL.Query().Get("token")
}
