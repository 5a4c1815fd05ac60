// internal/pkg/jwt/claims.go
package jwt

import "github.com/golang-jwt/jwt/v5"

// PortalClaims are the token claims carried by a staff session token.
// The JTI keys the redis session record, so revoking the session kills
// the token before its expiry.
type PortalClaims struct {
	UserID   string `json:"uid"`
	TenantID string `json:"tid"`
	Email    string `json:"email"`

	jwt.RegisteredClaims
}
