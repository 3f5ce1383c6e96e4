package exampleop

import (
	"crypto/sha256"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/provenid/oplogout/example/server/storage"
	httphelper "github.com/provenid/oplogout/pkg/http"
	"github.com/provenid/oplogout/pkg/op"
)

const (
	pathLoggedOut     = "/logged-out"
	sessionCookieName = "example_session"
	exampleClientID   = "web"
)

func init() {
	storage.RegisterClients(
		storage.WebClient(exampleClientID, "http://localhost:9998/logged-out"),
	)
}

// SetupServer creates a logout-capable OIDC server with Issuer=http://localhost:<port>
//
// Use the pre-made web client or register a new one.
func SetupServer(issuer string, store *storage.Storage, logger *slog.Logger, extraOptions ...op.Option) chi.Router {
	// the session cookie requires a 32-byte key
	// be sure to create a proper crypto random key and manage it securely!
	key := sha256.Sum256([]byte("test"))
	cookieHandler := httphelper.NewCookieHandler(key[:], key[:], httphelper.WithUnsecure())

	router := chi.NewRouter()

	// for simplicity, we provide a very small default page for users who have signed out
	router.HandleFunc(pathLoggedOut, func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("signed out successfully"))
		if err != nil {
			logger.Warn("error serving logged out page", "error", err)
		}
	})

	// creation of the provider with the just created in-memory Storage
	provider, err := newOP(store, issuer, sessionReader(store, cookieHandler), logger, extraOptions...)
	if err != nil {
		logger.Error("error creating provider", "error", err)
		os.Exit(1)
	}

	// the provider will only take care of the logout protocol, so there must be
	// some sort of UI establishing the session that is later ended; for the
	// simplicity of the example this means a simple page with username and
	// password field that also issues the ID Token used as id_token_hint
	l := NewLogin(store, issuer, exampleClientID, cookieHandler)
	router.Mount("/login", l.router)

	// we register the http handler of the provider on the root, so that
	// end_session and the health probes are served on their expected paths
	router.Mount("/", provider.HttpHandler())

	return router
}

// sessionReader resolves the caller's principal from the session
// cookie; every failure degrades to an anonymous caller.
func sessionReader(store *storage.Storage, cookie *httphelper.CookieHandler) op.SessionReader {
	return func(r *http.Request) (op.Principal, string) {
		sessionID, err := cookie.CheckCookie(r, sessionCookieName)
		if err != nil {
			return op.AnonymousPrincipal(), ""
		}
		session, ok := store.SessionByID(sessionID)
		if !ok {
			return op.AnonymousPrincipal(), ""
		}
		return op.AuthenticatedPrincipal(session.Username), session.ID
	}
}

func newOP(store op.Storage, issuer string, reader op.SessionReader, logger *slog.Logger, extraOptions ...op.Option) (*op.Provider, error) {
	config := &op.Config{
		// will be used if the end_session endpoint is called without a post_logout_redirect_uri
		DefaultLogoutRedirectURI: pathLoggedOut,
	}
	return op.NewProvider(config, store, op.StaticIssuer(issuer),
		append([]op.Option{
			// we must explicitly allow the use of the http issuer
			op.WithAllowInsecure(),
			op.WithSessionReader(reader),
			op.WithLogger(logger),
		}, extraOptions...)...,
	)
}
