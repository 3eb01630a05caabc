package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/cjk-breaks/internal/config"
)

// newTestRoot wires the command under a root with the global flags.
func newTestRoot(t *testing.T, configPath, stdin string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	for _, v := range []string{"CJKB_EITHER", "CJKB_NORMALIZE", "CJKB_PUNCT_SPACE", "CJKB_PUNCT_ADD", "CJKB_PUNCT_REMOVE"} {
		t.Setenv(v, "")
	}

	root := &cobra.Command{Use: "cjkb", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().StringP("config", "c", configPath, "")
	root.PersistentFlags().StringP("output", "o", "", "")
	root.PersistentFlags().Bool("no-color", true, "")
	root.PersistentFlags().BoolP("verbose", "v", false, "")
	root.AddCommand(NewCmdRender())

	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetIn(strings.NewReader(stdin))
	return root, out
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *config.Config
		args  []string
		stdin string
		want  string
	}{
		{
			name:  "html from stdin",
			stdin: "日本語の\n文章です",
			want:  "<p>日本語の文章です</p>\n",
		},
		{
			name:  "latin break kept",
			stdin: "Hello\nworld",
			want:  "<p>Hello\nworld</p>\n",
		},
		{
			name:  "config spacing",
			cfg:   &config.Config{SpaceAfterPunctuation: "half"},
			stdin: "本当！\n次",
			want:  "<p>本当！ 次</p>\n",
		},
		{
			name:  "flag overrides config",
			cfg:   &config.Config{SpaceAfterPunctuation: "half"},
			args:  []string{"--punct-space", "full"},
			stdin: "本当！\n次",
			want:  "<p>本当！\u3000次</p>\n",
		},
		{
			name:  "flag disables targets",
			cfg:   &config.Config{SpaceAfterPunctuation: "half"},
			args:  []string{"--no-punct-targets"},
			stdin: "本当！\n次",
			want:  "<p>本当！次</p>\n",
		},
		{
			name:  "either",
			args:  []string{"--either"},
			stdin: "日本\nABC",
			want:  "<p>日本ABC</p>\n",
		},
		{
			name:  "markdown output",
			args:  []string{"--to", "markdown"},
			stdin: "日本語の\n文章です",
			want:  "日本語の文章です\n",
		},
		{
			name: "empty input",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")
			if tt.cfg != nil {
				require.NoError(t, tt.cfg.Save(configPath))
			}

			root, out := newTestRoot(t, configPath, tt.stdin)
			root.SetArgs(append([]string{"render"}, tt.args...))

			require.NoError(t, root.Execute())
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRender_File(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(input, []byte("# 見出し\n\n一行目\n二行目\n"), 0600))

	root, out := newTestRoot(t, filepath.Join(dir, "config.yml"), "")
	root.SetArgs([]string{"render", input})

	require.NoError(t, root.Execute())
	assert.Equal(t, "<h1>見出し</h1>\n<p>一行目二行目</p>\n", out.String())
}

func TestRender_InvalidTo(t *testing.T) {
	root, _ := newTestRoot(t, filepath.Join(t.TempDir(), "config.yml"), "x")
	root.SetArgs([]string{"render", "--to", "pdf"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --to value")
}

func TestRender_InvalidSpace(t *testing.T) {
	root, _ := newTestRoot(t, filepath.Join(t.TempDir(), "config.yml"), "x")
	root.SetArgs([]string{"render", "--punct-space", "a\nb"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line breaks")
}

func TestRender_VerboseLogsDecisions(t *testing.T) {
	root, _ := newTestRoot(t, filepath.Join(t.TempDir(), "config.yml"), "日本\n語")
	errOut := new(bytes.Buffer)
	root.SetErr(errOut)
	root.SetArgs([]string{"render", "-v"})

	require.NoError(t, root.Execute())
	assert.Contains(t, errOut.String(), "break resolved")
}
