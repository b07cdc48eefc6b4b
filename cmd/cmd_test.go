package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"alternativo", "config", "version"} {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}

	c, _, err := rootCmd.Find([]string{"alt"})
	require.NoError(t, err)
	assert.Equal(t, "alternativo", c.Name())

	c, _, err = rootCmd.Find([]string{"config", "init"})
	require.NoError(t, err)
	assert.Equal(t, "init", c.Name())
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "evangelio version: dev")
}

func TestOutputFlag(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("output")
	require.NotNil(t, f)
	assert.Equal(t, "o", f.Shorthand)
	assert.Empty(t, f.DefValue)
}
