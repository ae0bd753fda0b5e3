package model

import "time"

// Permission is the scope granted to an API token.
type Permission string

const (
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"
)

// Valid reports whether p is one of the known permissions.
func (p Permission) Valid() bool {
	return p == PermissionRead || p == PermissionWrite
}

// Allows reports whether a credential holding p may act with the required permission.
func (p Permission) Allows(required Permission) bool {
	switch required {
	case PermissionRead:
		return p == PermissionRead || p == PermissionWrite
	case PermissionWrite:
		return p == PermissionWrite
	default:
		return false
	}
}

// APIToken is a persisted bearer credential. Only the digest of the secret is stored.
type APIToken struct {
	ID         string
	UserID     string
	TokenHash  string
	Prefix     string
	Name       string
	Permission Permission
	CreatedAt  time.Time
	ExpiresAt  *time.Time
}

// Expired reports whether the token's expiry lies at or before now.
func (t *APIToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}

// TokenInfo is the token metadata safe to return to clients.
type TokenInfo struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"`
	Permission Permission `json:"permission"`
	CreatedAt  time.Time  `json:"createdAt"`
	ExpiresAt  *time.Time `json:"expiresAt"`
}

// CreatedToken carries the plaintext secret, returned exactly once.
type CreatedToken struct {
	Token string    `json:"token"`
	Info  TokenInfo `json:"tokenInfo"`
}
