package op

import (
	"context"
	"slices"

	"github.com/provenid/oplogout/pkg/oidc"
)

// LogoutRequest is one RP-Initiated Logout assertion: the ID Token
// presented as hint, the caller's principal and live session id, and
// the optional parameters of the logout request. It is constructed
// per call and discarded after validation.
type LogoutRequest struct {
	// IDTokenHint is the previously issued ID Token, treated as an
	// opaque bearer value and resolved through the authorization store.
	IDTokenHint string
	// Principal is the identity the caller is currently
	// authenticated as, possibly anonymous.
	Principal Principal
	// SessionID is the caller's live session identifier, if any.
	SessionID string
	// ClientID is the optional client_id parameter.
	ClientID string
	// PostLogoutRedirectURI is the optional post_logout_redirect_uri
	// parameter. It must exactly match a registered value.
	PostLogoutRedirectURI string
	// State is echoed back to the client unmodified.
	State string
}

// Logout is a fully validated, authenticated logout decision.
type Logout struct {
	Principal Principal
	// IDToken is the resolved token record of the id_token_hint.
	IDToken *TokenRecord
	// SessionID is the id of the session that was correlated with the
	// token's sid claim, taken from the matched session record (not
	// the caller-supplied string) to normalize its representation.
	SessionID string
	// ClientID is the id of the resolved registered client.
	ClientID              string
	PostLogoutRedirectURI string
	State                 string
	// Authenticated is true for every validated logout.
	Authenticated bool
}

// LogoutValidator validates RP-Initiated Logout requests against the
// issued-token store, the registered-client store and the session
// directory. It only ever reads from them; every invocation is
// stateless and synchronous.
type LogoutValidator struct {
	authorizations AuthorizationStore
	clients        ClientStore
	sessions       SessionDirectory
}

func NewLogoutValidator(authorizations AuthorizationStore, clients ClientStore, sessions SessionDirectory) *LogoutValidator {
	if authorizations == nil {
		panic("op: authorization store must not be nil")
	}
	if clients == nil {
		panic("op: client store must not be nil")
	}
	if sessions == nil {
		panic("op: session directory must not be nil")
	}
	return &LogoutValidator{
		authorizations: authorizations,
		clients:        clients,
		sessions:       sessions,
	}
}

// Validate checks the logout request according to
// https://openid.net/specs/openid-connect-rpinitiated-1_0.html
// and returns either a validated Logout or a *oidc.Error
// (invalid_token for token and server-state integrity failures,
// invalid_request for inconsistent caller parameters). All failures
// are terminal, nothing is retried.
//
// The expected issuer must be set on the context, see ContextWithIssuer.
func (v *LogoutValidator) Validate(ctx context.Context, req *LogoutRequest) (*Logout, error) {
	ctx, span := tracer.Start(ctx, "ValidateLogoutRequest")
	defer span.End()

	authorization, err := v.authorizations.AuthorizationByToken(ctx, req.IDTokenHint, TokenTypeIDToken)
	if err != nil || authorization == nil {
		return nil, oidc.ErrInvalidToken().WithDescription("id_token_hint not found").WithParent(err)
	}
	idToken := authorization.Token(TokenTypeIDToken)
	if idToken == nil || idToken.Invalidated {
		return nil, oidc.ErrInvalidToken().WithDescription("id_token_hint is no longer active")
	}

	// the store is the source of truth for the claims at validation
	// time, the raw token value is never re-parsed
	claims := idToken.Claims

	if claims.String(oidc.ClaimIssuer) != IssuerFromContext(ctx) {
		return nil, oidc.ErrInvalidToken().WithDescription("iss claim does not match the issuer of this server")
	}
	audience := claims.StringList(oidc.ClaimAudience)
	if len(audience) == 0 {
		return nil, oidc.ErrInvalidToken().WithDescription("aud claim is missing")
	}
	client, err := v.clients.ClientByID(ctx, authorization.RegisteredClientID)
	if err != nil || client == nil {
		return nil, oidc.ErrInvalidToken().WithDescription("registered client of id_token_hint not found").WithParent(err)
	}
	if !slices.Contains(audience, client.GetID()) {
		return nil, oidc.ErrInvalidToken().WithDescription("aud claim does not contain the registered client")
	}
	if req.ClientID != "" && req.ClientID != client.GetID() {
		return nil, oidc.ErrInvalidRequest().WithDescription("client_id does not match the client of id_token_hint")
	}
	if req.PostLogoutRedirectURI != "" &&
		!slices.Contains(client.PostLogoutRedirectURIs(), req.PostLogoutRedirectURI) {
		return nil, oidc.ErrInvalidRequest().WithDescription("post_logout_redirect_uri is not registered for the client")
	}

	sessionID := req.SessionID
	if req.Principal.IsAuthenticated() {
		if req.Principal.Name() != claims.String(oidc.ClaimSubject) {
			return nil, oidc.ErrInvalidToken().WithDescription("sub claim does not match the authenticated principal")
		}
		matched, err := v.matchActiveSession(ctx, req.Principal.Name(), req.SessionID)
		if err != nil {
			return nil, oidc.DefaultToServerError(err, "unable to read active sessions")
		}
		// the sid claim must correlate the hint to a concrete live
		// session: a token without sid, a session id without live
		// session and a hash mismatch all fail the same way
		sid := claims.String(oidc.ClaimSessionID)
		if sid == "" || matched == nil || oidc.SessionIDHash(matched.SessionID) != sid {
			return nil, oidc.ErrInvalidToken().WithDescription("sid claim does not correlate to an active session")
		}
		sessionID = matched.SessionID
	}

	return &Logout{
		Principal:             req.Principal,
		IDToken:               idToken,
		SessionID:             sessionID,
		ClientID:              client.GetID(),
		PostLogoutRedirectURI: req.PostLogoutRedirectURI,
		State:                 req.State,
		Authenticated:         true,
	}, nil
}

func (v *LogoutValidator) matchActiveSession(ctx context.Context, principalName, sessionID string) (*SessionRecord, error) {
	if sessionID == "" {
		return nil, nil
	}
	sessions, err := v.sessions.ActiveSessions(ctx, principalName)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].SessionID == sessionID {
			return &sessions[i], nil
		}
	}
	return nil, nil
}
