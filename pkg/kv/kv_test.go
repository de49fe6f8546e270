package kv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familycar/datastore/pkg/kv"
)

// roundTrip exercises the Medium contract against any driver.
func roundTrip(t *testing.T, m kv.Medium) {
	t.Helper()

	_, ok, err := m.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok, "absent key must report not-present, not an error")

	require.NoError(t, m.Set("greeting", `{"msg":"hello"}`))
	val, ok, err := m.Get("greeting")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"msg":"hello"}`, val)

	require.NoError(t, m.Set("greeting", `{"msg":"replaced"}`))
	val, _, err = m.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, `{"msg":"replaced"}`, val, "Set must overwrite")

	require.NoError(t, m.Remove("greeting"))
	_, ok, err = m.Get("greeting")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Remove("greeting"), "removing an absent key is a no-op")
}

func TestMemoryMedium(t *testing.T) {
	roundTrip(t, kv.NewMemory())
}

func TestFileMedium(t *testing.T) {
	m, err := kv.NewFile(t.TempDir())
	require.NoError(t, err)
	roundTrip(t, m)
}

func TestFileMediumLaysOutOneFilePerKey(t *testing.T) {
	root := t.TempDir()
	m, err := kv.NewFile(root)
	require.NoError(t, err)

	require.NoError(t, m.Set("familyCar_users", "[]"))

	data, err := os.ReadFile(filepath.Join(root, "familyCar_users.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFileMediumCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "store")
	_, err := kv.NewFile(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpenDriverUnknown(t *testing.T) {
	_, err := kv.OpenDriver("etcd")
	assert.Error(t, err)
}

func TestRegisterCustomDriver(t *testing.T) {
	kv.Register("custom-test", func() (kv.Medium, error) { return kv.NewMemory(), nil })

	m, err := kv.OpenDriver("custom-test")
	require.NoError(t, err)
	roundTrip(t, m)
}
