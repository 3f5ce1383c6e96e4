package oidc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIDHash(t *testing.T) {
	// the sid claim of previously issued tokens depends on this exact
	// algorithm (SHA-256, base64url without padding), so pin a vector
	assert.Equal(t, "hAl4KPwxqMjSkhDfSJAahd5_0BP2hrF7530b4py3qYs", SessionIDHash("session-1"))

	assert.Equal(t, SessionIDHash("session-1"), SessionIDHash("session-1"))
	assert.NotEqual(t, SessionIDHash("session-1"), SessionIDHash("session-2"))
	assert.NotContains(t, SessionIDHash("session-1"), "=")
}

func TestEndSessionRequest_UILocales(t *testing.T) {
	var locales Locales
	require.NoError(t, locales.UnmarshalText([]byte("de-CH en !!")))
	assert.Len(t, locales, 2)
}
