package storage

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	jose "github.com/go-jose/go-jose/v3"
	"github.com/google/uuid"

	"github.com/provenid/oplogout/pkg/oidc"
	"github.com/provenid/oplogout/pkg/op"
)

// Session is the storage model of a signed-in user agent.
type Session struct {
	ID          string
	Username    string
	LastRequest time.Time
}

type signingKey struct {
	id        string
	algorithm jose.SignatureAlgorithm
	key       *rsa.PrivateKey
}

// Storage implements op.Storage in-memory; it keeps the issued ID
// Tokens, the registered clients and the live sessions of the example
// server. This might be the layer for accessing your database.
type Storage struct {
	lock           sync.Mutex
	users          UserStore
	sessions       map[string]*Session
	authorizations map[string]*op.Authorization
	signingKey     signingKey
}

// NewStorage creates Storage with a fresh RSA signing key, so issued
// tokens do not survive a restart. Just like the sessions, they are
// not meant to.
func NewStorage(userStore UserStore) *Storage {
	key, _ := rsa.GenerateKey(rand.Reader, 2048)
	return &Storage{
		users:          userStore,
		sessions:       make(map[string]*Session),
		authorizations: make(map[string]*op.Authorization),
		signingKey: signingKey{
			id:        uuid.NewString(),
			algorithm: jose.RS256,
			key:       key,
		},
	}
}

// Login checks the given username and password and starts a new
// session, returning its id.
func (s *Storage) Login(username, password string) (string, error) {
	user := s.users.GetUserByUsername(username)
	if user == nil || user.Password != password {
		return "", errors.New("username or password wrong")
	}
	session := &Session{
		ID:          uuid.NewString(),
		Username:    user.Username,
		LastRequest: time.Now(),
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.sessions[session.ID] = session
	return session.ID, nil
}

// SessionByID returns the live session with the given id, if any.
func (s *Storage) SessionByID(sessionID string) (*Session, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	session, ok := s.sessions[sessionID]
	return session, ok
}

// IssueIDToken signs an ID Token for the given client and session and
// records it so that it can later be presented as id_token_hint. The
// sid claim carries the hash of the session id, never the id itself.
func (s *Storage) IssueIDToken(issuer, clientID, sessionID string) (string, error) {
	client := clientByClientID(clientID)
	if client == nil {
		return "", fmt.Errorf("client %s not found", clientID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return "", errors.New("session not found")
	}

	now := time.Now().UTC()
	claims := oidc.Claims{
		oidc.ClaimIssuer:     oidc.StringClaim(issuer),
		oidc.ClaimSubject:    oidc.StringClaim(session.Username),
		oidc.ClaimAudience:   oidc.StringListClaim(client.GetID()),
		oidc.ClaimIssuedAt:   oidc.TimeClaim(now),
		oidc.ClaimExpiration: oidc.TimeClaim(now.Add(time.Hour)),
		oidc.ClaimAuthTime:   oidc.TimeClaim(session.LastRequest),
		oidc.ClaimSessionID:  oidc.StringClaim(oidc.SessionIDHash(session.ID)),
	}
	token, err := s.sign(claims)
	if err != nil {
		return "", err
	}

	s.authorizations[token] = &op.Authorization{
		ID:                 uuid.NewString(),
		RegisteredClientID: client.RegistrationID(),
		PrincipalName:      session.Username,
		Tokens: map[op.TokenType]*op.TokenRecord{
			op.TokenTypeIDToken: {
				Value:  token,
				Claims: claims,
			},
		},
	}
	return token, nil
}

func (s *Storage) sign(claims oidc.Claims) (string, error) {
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: s.signingKey.algorithm, Key: s.signingKey.key},
		(&jose.SignerOptions{}).WithType("JWT").WithHeader("kid", s.signingKey.id),
	)
	if err != nil {
		return "", err
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	jws, err := signer.Sign(payload)
	if err != nil {
		return "", err
	}
	return jws.CompactSerialize()
}

// AuthorizationByToken implements op.AuthorizationStore.
func (s *Storage) AuthorizationByToken(_ context.Context, tokenValue string, tokenType op.TokenType) (*op.Authorization, error) {
	if tokenType != op.TokenTypeIDToken {
		return nil, fmt.Errorf("unsupported token type %s", tokenType)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.authorizations[tokenValue], nil
}

// ClientByID implements op.ClientStore; the id is the registration
// id, not the public client_id.
func (s *Storage) ClientByID(_ context.Context, registrationID string) (op.Client, error) {
	client, ok := clients[registrationID]
	if !ok {
		return nil, fmt.Errorf("client %s not found", registrationID)
	}
	return client, nil
}

// ActiveSessions implements op.SessionDirectory.
func (s *Storage) ActiveSessions(_ context.Context, principalName string) ([]op.SessionRecord, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	var records []op.SessionRecord
	for _, session := range s.sessions {
		if session.Username == principalName {
			records = append(records, op.SessionRecord{
				PrincipalName: session.Username,
				SessionID:     session.ID,
				LastRequest:   session.LastRequest,
			})
		}
	}
	return records, nil
}

// TerminateSession implements op.SessionDirectory. It removes the
// session and invalidates every ID Token that was bound to it.
func (s *Storage) TerminateSession(_ context.Context, principalName, sessionID string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok || session.Username != principalName {
		return nil
	}
	delete(s.sessions, sessionID)

	sid := oidc.SessionIDHash(sessionID)
	for _, authorization := range s.authorizations {
		if authorization.PrincipalName != principalName {
			continue
		}
		idToken := authorization.Token(op.TokenTypeIDToken)
		if idToken != nil && idToken.Claims.String(oidc.ClaimSessionID) == sid {
			idToken.Invalidated = true
		}
	}
	return nil
}

// Health implements op.Storage.
func (s *Storage) Health(_ context.Context) error {
	return nil
}
