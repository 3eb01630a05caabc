package root

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/cjk-breaks/internal/version"
)

func TestNewCmdRoot(t *testing.T) {
	cmd := NewCmdRoot()

	assert.Equal(t, "cjkb", cmd.Use)
	for _, name := range []string{"config", "output", "no-color", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"init", "render", "breaks", "config", "completion"}, names)
}

func TestNewCmdRoot_Version(t *testing.T) {
	cmd := NewCmdRoot()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "cjkb version "+version.String()+"\n", out.String())
}
