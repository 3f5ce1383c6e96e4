package oidc

import (
	"crypto/sha256"
	"encoding/base64"
)

// EndSessionRequest for the RP-Initiated Logout according to:
// https://openid.net/specs/openid-connect-rpinitiated-1_0.html#RPLogout
type EndSessionRequest struct {
	IdTokenHint           string  `schema:"id_token_hint"`
	LogoutHint            string  `schema:"logout_hint"`
	ClientID              string  `schema:"client_id"`
	PostLogoutRedirectURI string  `schema:"post_logout_redirect_uri"`
	State                 string  `schema:"state"`
	UILocales             Locales `schema:"ui_locales"`
}

// SessionIDHash computes the `sid` claim value for a session identifier:
// the base64url encoded (no padding) SHA-256 digest of its raw bytes.
// The hash must stay stable across processes and releases, previously
// issued ID Tokens carry it.
func SessionIDHash(sessionID string) string {
	sum := sha256.Sum256([]byte(sessionID))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
