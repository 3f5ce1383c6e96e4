package mock

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/provenid/oplogout/pkg/op"
)

func NewClient(t *testing.T) *MockClient {
	return NewMockClient(gomock.NewController(t))
}

// NewClientWithConfig returns an op.Client answering any number of
// calls with the given id and registered post logout redirect URIs.
func NewClientWithConfig(t *testing.T, id string, postLogoutRedirectURIs ...string) op.Client {
	c := NewClient(t)
	c.EXPECT().GetID().AnyTimes().Return(id)
	c.EXPECT().PostLogoutRedirectURIs().AnyTimes().Return(postLogoutRedirectURIs)
	return c
}
