package op_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provenid/oplogout/pkg/op"
	"github.com/provenid/oplogout/pkg/op/mock"
)

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name         string
		endpoint     op.Endpoint
		wantRelative string
		wantAbsolute string
		wantErr      bool
	}{
		{
			name:         "without leading slash",
			endpoint:     "oauth/v2/end_session",
			wantRelative: "/oauth/v2/end_session",
			wantAbsolute: "https://provider.com/oauth/v2/end_session",
		},
		{
			name:         "with leading slash",
			endpoint:     "/oauth/v2/end_session",
			wantRelative: "/oauth/v2/end_session",
			wantAbsolute: "https://provider.com/oauth/v2/end_session",
		},
		{
			name:    "empty",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				assert.Error(t, tt.endpoint.Validate())
				return
			}
			require.NoError(t, tt.endpoint.Validate())
			assert.Equal(t, tt.wantRelative, tt.endpoint.Relative())
			assert.Equal(t, tt.wantAbsolute, tt.endpoint.Absolute("https://provider.com/"))
		})
	}
}

func TestNewProvider(t *testing.T) {
	t.Run("insecure issuer rejected", func(t *testing.T) {
		_, err := op.NewProvider(&op.Config{}, mock.NewStorage(t), op.StaticIssuer("http://provider.com"))
		assert.ErrorIs(t, err, op.ErrInvalidIssuerHTTPS)
	})
	t.Run("insecure issuer allowed", func(t *testing.T) {
		provider, err := op.NewProvider(&op.Config{}, mock.NewStorage(t),
			op.StaticIssuer("http://localhost:9998/"),
			op.WithAllowInsecure(),
		)
		require.NoError(t, err)
		assert.True(t, provider.Insecure())
	})
	t.Run("custom end_session endpoint", func(t *testing.T) {
		provider, err := op.NewProvider(&op.Config{}, mock.NewStorage(t),
			op.StaticIssuer(testIssuer),
			op.WithCustomEndSessionEndpoint("logout"),
		)
		require.NoError(t, err)
		assert.Equal(t, "/logout", provider.EndSessionEndpoint().Relative())
	})
	t.Run("invalid custom endpoint", func(t *testing.T) {
		_, err := op.NewProvider(&op.Config{}, mock.NewStorage(t),
			op.StaticIssuer(testIssuer),
			op.WithCustomEndSessionEndpoint(""),
		)
		assert.Error(t, err)
	})
}

func TestProvider_Health(t *testing.T) {
	storage := mock.NewStorage(t)
	provider := newTestProvider(t, storage)

	t.Run("healthz", func(t *testing.T) {
		rec := httptest.NewRecorder()
		provider.HttpHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})
	t.Run("ready", func(t *testing.T) {
		storage.EXPECT().Health(gomock.Any()).Return(nil)
		rec := httptest.NewRecorder()
		provider.HttpHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
	t.Run("not ready", func(t *testing.T) {
		storage.EXPECT().Health(gomock.Any()).Return(errors.New("connection lost"))
		rec := httptest.NewRecorder()
		provider.HttpHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestPrincipal(t *testing.T) {
	anonymous := op.AnonymousPrincipal()
	assert.False(t, anonymous.IsAuthenticated())
	assert.Empty(t, anonymous.Name())

	authenticated := op.AuthenticatedPrincipal(testPrincipalName)
	assert.True(t, authenticated.IsAuthenticated())
	assert.Equal(t, testPrincipalName, authenticated.Name())

	var zero op.Principal
	assert.Equal(t, anonymous, zero)
}
