package store

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "disk")
	s, err := NewLocal(dir)
	require.NoError(t, err)

	_, ok := s.Get("houses")
	assert.False(t, ok)

	require.NoError(t, s.Set("houses", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Set("houses", []byte(`[{"id":2}]`)))
	data, ok := s.Get("houses")
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":2}]`, string(data))

	_, err = os.Stat(filepath.Join(dir, "houses.json"))
	assert.NoError(t, err)
}

func TestLocalStoreKeysStayInDir(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocal(filepath.Join(dir, "inner"))
	require.NoError(t, err)

	require.NoError(t, s.Set("../escape", []byte("{}")))
	_, err = os.Stat(filepath.Join(dir, "escape.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "inner", "escape.json"))
	assert.NoError(t, err)
}

func TestOnlyGCSStoreNeedsClosing(t *testing.T) {
	assert.Implements(t, (*io.Closer)(nil), new(GCSStore))
	assert.NotImplements(t, (*io.Closer)(nil), new(LocalStore))
	assert.Implements(t, (*Store)(nil), new(GCSStore))
}
