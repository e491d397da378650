package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultClosesAllGates(t *testing.T) {
	o := Default()
	assert.False(t, o.UnsafeMath)
	assert.False(t, o.UnsafeObject)
}

func TestGetDispatchesByName(t *testing.T) {
	o := Options{UnsafeMath: true, UnsafeObject: false}
	assert.True(t, o.Get("unsafe-math"))
	assert.False(t, o.Get("unsafe-object"))
	assert.False(t, o.Get("not-a-real-option"))
}

func TestLoadWithNoEnvPathLeavesDefaults(t *testing.T) {
	o := Load("", nil, nil)
	assert.False(t, o.UnsafeMath)
	assert.False(t, o.UnsafeObject)
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("OPTIQ_UNSAFE_MATH=true\nOPTIQ_UNSAFE_OBJECT=false\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("OPTIQ_UNSAFE_MATH")
		os.Unsetenv("OPTIQ_UNSAFE_OBJECT")
	})

	o := Load(path, nil, nil)
	assert.True(t, o.UnsafeMath)
	assert.False(t, o.UnsafeObject)
}

func TestLoadOverridesTakePrecedenceOverEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("OPTIQ_UNSAFE_MATH=true\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("OPTIQ_UNSAFE_MATH") })

	override := false
	o := Load(path, &override, nil)
	assert.False(t, o.UnsafeMath, "explicit override false should win over env true")
}

func TestLoadIgnoresMissingEnvFile(t *testing.T) {
	o := Load(filepath.Join(t.TempDir(), "does-not-exist.env"), nil, nil)
	assert.False(t, o.UnsafeMath)
	assert.False(t, o.UnsafeObject)
}
