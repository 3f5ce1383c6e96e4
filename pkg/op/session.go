package op

import (
	"net/http"
	"net/url"

	httphelper "github.com/provenid/oplogout/pkg/http"
	"github.com/provenid/oplogout/pkg/oidc"
)

// SessionEnder provides the collaborators of the end_session endpoint.
type SessionEnder interface {
	Decoder() httphelper.Decoder
	Validator() *LogoutValidator
	Storage() Storage
	DefaultLogoutRedirectURI() string
	// SessionFromRequest resolves the caller's authenticated principal
	// and live session id, typically from the server's session cookie.
	// An unauthenticated caller yields an anonymous principal.
	SessionFromRequest(r *http.Request) (Principal, string)
}

func endSessionHandler(ender SessionEnder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		EndSession(w, r, ender)
	}
}

// EndSession parses and validates the logout request, terminates the
// correlated session and redirects the user agent to the validated
// post logout redirect URI (or the server default), echoing the state.
func EndSession(w http.ResponseWriter, r *http.Request, ender SessionEnder) {
	logger := loggerFromContextOr(r, nil)
	req, err := ParseEndSessionRequest(r, ender.Decoder())
	if err != nil {
		RequestError(w, r, err, logger)
		return
	}
	principal, sessionID := ender.SessionFromRequest(r)
	logout, err := ender.Validator().Validate(r.Context(), &LogoutRequest{
		IDTokenHint:           req.IdTokenHint,
		Principal:             principal,
		SessionID:             sessionID,
		ClientID:              req.ClientID,
		PostLogoutRedirectURI: req.PostLogoutRedirectURI,
		State:                 req.State,
	})
	if err != nil {
		RequestError(w, r, err, logger)
		return
	}
	if logout.Principal.IsAuthenticated() {
		err = ender.Storage().TerminateSession(r.Context(), logout.Principal.Name(), logout.SessionID)
		if err != nil {
			RequestError(w, r, oidc.DefaultToServerError(err, "error terminating session"), logger)
			return
		}
	}
	redirect, err := LogoutRedirect(logout, ender.DefaultLogoutRedirectURI())
	if err != nil {
		RequestError(w, r, err, logger)
		return
	}
	http.Redirect(w, r, redirect, http.StatusFound)
}

func ParseEndSessionRequest(r *http.Request, decoder httphelper.Decoder) (*oidc.EndSessionRequest, error) {
	if err := r.ParseForm(); err != nil {
		return nil, oidc.ErrInvalidRequest().WithDescription("error parsing form").WithParent(err)
	}
	req := new(oidc.EndSessionRequest)
	if err := decoder.Decode(req, r.Form); err != nil {
		return nil, oidc.ErrInvalidRequest().WithDescription("error decoding form").WithParent(err)
	}
	if req.IdTokenHint == "" {
		return nil, oidc.ErrInvalidRequest().WithDescription("id_token_hint is required")
	}
	return req, nil
}

// LogoutRedirect builds the URI the user agent is sent to after the
// logout, falling back to the server default when the client did not
// request one. A state is appended as query parameter.
func LogoutRedirect(logout *Logout, defaultRedirectURI string) (string, error) {
	redirectURI := logout.PostLogoutRedirectURI
	if redirectURI == "" {
		redirectURI = defaultRedirectURI
	}
	if logout.State == "" {
		return redirectURI, nil
	}
	redirect, err := url.Parse(redirectURI)
	if err != nil {
		return "", oidc.DefaultToServerError(err, "invalid logout redirect uri")
	}
	return mergeQueryParams(redirect, url.Values{"state": {logout.State}}), nil
}

func mergeQueryParams(uri *url.URL, params url.Values) string {
	queries := uri.Query()
	for param, values := range params {
		for _, value := range values {
			queries.Add(param, value)
		}
	}
	uri.RawQuery = queries.Encode()
	return uri.String()
}
