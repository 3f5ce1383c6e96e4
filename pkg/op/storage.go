package op

import (
	"context"
	"time"

	"github.com/provenid/oplogout/pkg/oidc"
)

// TokenType discriminates the token records of an authorization.
type TokenType string

const TokenTypeIDToken TokenType = "id_token"

// TokenRecord is one issued token of an authorization, together
// with the claim set recorded at issuance time. The store is the
// source of truth for these claims; they are never re-derived by
// parsing the raw token value.
type TokenRecord struct {
	Value       string
	Claims      oidc.Claims
	Invalidated bool
}

// Authorization is the read-only aggregate describing one grant:
// which client it was issued to, for which principal, and the
// tokens issued under it.
type Authorization struct {
	ID                 string
	RegisteredClientID string
	PrincipalName      string
	Tokens             map[TokenType]*TokenRecord
}

// Token returns the record of the given type, or nil.
func (a *Authorization) Token(tokenType TokenType) *TokenRecord {
	if a == nil {
		return nil
	}
	return a.Tokens[tokenType]
}

// SessionRecord is one currently active session of a principal.
type SessionRecord struct {
	PrincipalName string
	SessionID     string
	LastRequest   time.Time
}

// Client is the registered client metadata the logout validation
// needs. Implemented by the client store of the server.
type Client interface {
	GetID() string
	PostLogoutRedirectURIs() []string
}

// AuthorizationStore resolves issued tokens to their authorization.
// A lookup by value is atomic with respect to concurrent
// invalidation: the engine either sees the record not invalidated
// or invalidated, never an intermediate state.
type AuthorizationStore interface {
	AuthorizationByToken(ctx context.Context, tokenValue string, tokenType TokenType) (*Authorization, error)
}

// ClientStore resolves registered clients by id.
type ClientStore interface {
	ClientByID(ctx context.Context, id string) (Client, error)
}

// SessionDirectory tracks the active sessions of the principals
// known to the server.
type SessionDirectory interface {
	// ActiveSessions returns a snapshot of the currently valid
	// sessions of the principal (refresh-on-read, expired sessions
	// excluded).
	ActiveSessions(ctx context.Context, principalName string) ([]SessionRecord, error)
	// TerminateSession ends the given session of the principal.
	TerminateSession(ctx context.Context, principalName, sessionID string) error
}

// Storage bundles the stores an OP needs to serve RP-Initiated
// Logout requests.
type Storage interface {
	AuthorizationStore
	ClientStore
	SessionDirectory
	Health(ctx context.Context) error
}
