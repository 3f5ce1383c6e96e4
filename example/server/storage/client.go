package storage

import (
	"github.com/google/uuid"
)

// clients to be used by the storage interface, keyed by their
// registration id (not the public client_id)
var clients = map[string]*Client{}

// Client represents the storage model of an OAuth/OIDC client
// this could also be your database model
type Client struct {
	registrationID         string
	id                     string
	postLogoutRedirectURIs []string
}

// GetID must return the client_id
func (c *Client) GetID() string {
	return c.id
}

// PostLogoutRedirectURIs must return the registered post_logout_redirect_uris for sign-outs
func (c *Client) PostLogoutRedirectURIs() []string {
	return c.postLogoutRedirectURIs
}

// RegistrationID returns the internal id the client was registered
// under, the one issued tokens refer back to.
func (c *Client) RegistrationID() string {
	return c.registrationID
}

// WebClient will create a client of type web, issued a fresh
// registration id on every call
func WebClient(id string, postLogoutRedirectURIs ...string) *Client {
	return &Client{
		registrationID:         uuid.NewString(),
		id:                     id,
		postLogoutRedirectURIs: postLogoutRedirectURIs,
	}
}

// RegisterClients enables you to register clients for the example implementation
// there are some clients (web and native) to try out different cases
// add more if necessary
func RegisterClients(registerClients ...*Client) {
	for _, client := range registerClients {
		clients[client.registrationID] = client
	}
}

func clientByClientID(clientID string) *Client {
	for _, client := range clients {
		if client.id == clientID {
			return client
		}
	}
	return nil
}
