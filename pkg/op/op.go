package op

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/zitadel/logging"
	"github.com/zitadel/schema"

	"github.com/provenid/oplogout/internal/otel"
	httphelper "github.com/provenid/oplogout/pkg/http"
)

var tracer = otel.Tracer("github.com/provenid/oplogout/pkg/op")

const (
	healthEndpoint            = "/healthz"
	readinessEndpoint         = "/ready"
	defaultEndSessionEndpoint = "oauth/v2/end_session"
)

var defaultCORSOptions = cors.Options{
	AllowCredentials: true,
	AllowedHeaders: []string{
		"Origin",
		"Accept",
		"Accept-Language",
		"Authorization",
		"Content-Type",
		"X-Requested-With",
	},
	AllowedMethods: []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
	},
	ExposedHeaders: []string{
		"Location",
		"Content-Length",
	},
	AllowOriginFunc: func(_ string) bool {
		return true
	},
}

type Endpoint string

func (e Endpoint) Relative() string {
	return "/" + strings.TrimPrefix(string(e), "/")
}

func (e Endpoint) Absolute(host string) string {
	return strings.TrimSuffix(host, "/") + e.Relative()
}

func (e Endpoint) Validate() error {
	if e == "" {
		return errors.New("op: endpoint must not be empty")
	}
	return nil
}

// SessionReader resolves the caller's principal and live session id
// from the incoming request (typically a session cookie).
type SessionReader func(r *http.Request) (Principal, string)

type Config struct {
	// DefaultLogoutRedirectURI is used when the client does not
	// request a post_logout_redirect_uri of its own.
	DefaultLogoutRedirectURI string
}

type HttpInterceptor func(http.Handler) http.Handler

// Provider wires the logout validation engine into an HTTP surface:
// issuer resolution per request, form decoding, the end_session
// endpoint and health probes.
type Provider struct {
	config        *Config
	issuer        IssuerFromRequest
	insecure      bool
	endSession    Endpoint
	storage       Storage
	validator     *LogoutValidator
	decoder       *schema.Decoder
	encoder       *schema.Encoder
	sessionReader SessionReader
	logger        *slog.Logger
	interceptors  []HttpInterceptor
	httpHandler   http.Handler
}

func NewProvider(config *Config, storage Storage, issuer func(bool) (IssuerFromRequest, error), opts ...Option) (_ *Provider, err error) {
	o := &Provider{
		config:     config,
		storage:    storage,
		endSession: defaultEndSessionEndpoint,
		logger:     slog.Default(),
		sessionReader: func(*http.Request) (Principal, string) {
			return AnonymousPrincipal(), ""
		},
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	o.issuer, err = issuer(o.insecure)
	if err != nil {
		return nil, err
	}

	o.validator = NewLogoutValidator(storage, storage, storage)

	o.decoder = schema.NewDecoder()
	o.decoder.IgnoreUnknownKeys(true)
	o.encoder = schema.NewEncoder()

	o.httpHandler = CreateRouter(o, o.interceptors...)

	return o, nil
}

type Option func(o *Provider) error

// WithAllowInsecure allows the use of http (instead of https) for
// issuers. Not recommended outside of local development.
func WithAllowInsecure() Option {
	return func(o *Provider) error {
		o.insecure = true
		return nil
	}
}

func WithCustomEndSessionEndpoint(endpoint Endpoint) Option {
	return func(o *Provider) error {
		if err := endpoint.Validate(); err != nil {
			return err
		}
		o.endSession = endpoint
		return nil
	}
}

func WithSessionReader(reader SessionReader) Option {
	return func(o *Provider) error {
		o.sessionReader = reader
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Provider) error {
		o.logger = logger
		return nil
	}
}

func WithHttpInterceptors(interceptors ...HttpInterceptor) Option {
	return func(o *Provider) error {
		o.interceptors = append(o.interceptors, interceptors...)
		return nil
	}
}

func CreateRouter(o *Provider, interceptors ...HttpInterceptor) chi.Router {
	router := chi.NewRouter()
	router.Use(intercept(o.IssuerFromRequest, interceptors...))
	router.Use(o.logInterceptor)
	router.HandleFunc(healthEndpoint, healthHandler)
	router.HandleFunc(readinessEndpoint, readyHandler(o.storage))
	router.HandleFunc(o.EndSessionEndpoint().Relative(), endSessionHandler(o))
	return router
}

func intercept(i IssuerFromRequest, interceptors ...HttpInterceptor) func(http.Handler) http.Handler {
	issuerInterceptor := NewIssuerInterceptor(i)
	return func(handler http.Handler) http.Handler {
		for i := len(interceptors) - 1; i >= 0; i-- {
			handler = interceptors[i](handler)
		}
		return cors.New(defaultCORSOptions).Handler(issuerInterceptor.Handler(handler))
	}
}

func (o *Provider) logInterceptor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(logging.ToContext(r.Context(), o.logger)))
	})
}

func (o *Provider) IssuerFromRequest(r *http.Request) string {
	return o.issuer(r)
}

func (o *Provider) Insecure() bool {
	return o.insecure
}

func (o *Provider) EndSessionEndpoint() Endpoint {
	return o.endSession
}

func (o *Provider) Storage() Storage {
	return o.storage
}

func (o *Provider) Validator() *LogoutValidator {
	return o.validator
}

func (o *Provider) Decoder() httphelper.Decoder {
	return o.decoder
}

func (o *Provider) Encoder() httphelper.Encoder {
	return o.encoder
}

func (o *Provider) DefaultLogoutRedirectURI() string {
	return o.config.DefaultLogoutRedirectURI
}

func (o *Provider) SessionFromRequest(r *http.Request) (Principal, string) {
	return o.sessionReader(r)
}

func (o *Provider) Logger() *slog.Logger {
	return o.logger
}

func (o *Provider) HttpHandler() http.Handler {
	return o.httpHandler
}

type status struct {
	Status string `json:"status"`
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	httphelper.MarshalJSON(w, status{"ok"})
}

func readyHandler(s Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Health(r.Context()); err != nil {
			http.Error(w, "not ready", http.StatusInternalServerError)
			return
		}
		httphelper.MarshalJSON(w, status{"ok"})
	}
}
