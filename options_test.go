package sqlfql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_getOpts(t *testing.T) {
	t.Parallel()
	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		o, err := getOpts()
		require.NoError(t, err)
		assert.Equal(t, "http", o.scheme)
		assert.Equal(t, 8443, o.port)
		assert.Empty(t, o.domain)
	})
	t.Run("overrides", func(t *testing.T) {
		t.Parallel()
		o, err := getOpts(WithScheme("https"), WithDomain("db.example.com"), WithPort(443))
		require.NoError(t, err)
		assert.Equal(t, "https", o.scheme)
		assert.Equal(t, "db.example.com", o.domain)
		assert.Equal(t, 443, o.port)
	})
	t.Run("invalid-scheme", func(t *testing.T) {
		t.Parallel()
		_, err := getOpts(WithScheme("ftp"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotSupported)
	})
	t.Run("empty-domain", func(t *testing.T) {
		t.Parallel()
		_, err := getOpts(WithDomain(""))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProgramming)
	})
}

func Test_NewDriver_requires_domain(t *testing.T) {
	t.Parallel()
	_, err := NewDriver("secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProgramming)
}
