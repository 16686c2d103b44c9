package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"srcstruct/pkg/export"
	"srcstruct/pkg/version"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into an empty working directory and returns its
// path as the process sees it.
func chdirTemp(t *testing.T) string {
	t.Helper()
	testChdir(t, t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	return wd
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	stdout := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRootCommand_Defaults(t *testing.T) {
	wd := chdirTemp(t)
	mustWrite(t, filepath.Join(wd, "src", "a.txt"), "hello")
	mustWrite(t, filepath.Join(wd, "src", "sub", "b.txt"), "world")

	stdout, err := execute(t)
	require.NoError(t, err)

	dest := filepath.Join(wd, "src_structure.txt")
	assert.Equal(t, "✅ Structure saved to: "+dest+"\n", stdout)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "FILE PATH: "+filepath.Join(wd, "src", "a.txt")+"\n"+export.Separator+"\nhello\n\n")
	assert.Contains(t, out, "FILE PATH: "+filepath.Join(wd, "src", "sub", "b.txt")+"\n"+export.Separator+"\nworld\n\n")
	assert.True(t, strings.HasSuffix(out, "[SKIPPED] Directory not found: "+filepath.Join(wd, "prisma")+"\n"+export.Separator+"\n\n"))
}

func TestRootCommand_ArgumentsAndFlags(t *testing.T) {
	wd := chdirTemp(t)
	base := filepath.Join(wd, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "empty"), 0o755))

	stdout, err := execute(t, "--base", base, "-o", "out/dump.txt", "missing", "empty")
	require.NoError(t, err)

	dest := filepath.Join(base, "out", "dump.txt")
	assert.Equal(t, "✅ Structure saved to: "+dest+"\n", stdout)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t,
		"\n"+export.Separator+"\n[SKIPPED] Directory not found: "+filepath.Join(base, "missing")+"\n"+export.Separator+"\n\n",
		string(data))
}

func TestRootCommand_ConfigFile(t *testing.T) {
	wd := chdirTemp(t)
	mustWrite(t, filepath.Join(wd, "app", "main.go"), "package main")
	cfgPath := filepath.Join(wd, "settings.yaml")
	mustWrite(t, cfgPath, "roots:\n  - app\noutput: snapshot.txt\n")

	stdout, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(wd, "snapshot.txt"))

	data, err := os.ReadFile(filepath.Join(wd, "snapshot.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "FILE PATH: "+filepath.Join(wd, "app", "main.go")+"\n")
	assert.NotContains(t, string(data), "[SKIPPED]")
}

func TestRootCommand_FlagOverridesConfigFile(t *testing.T) {
	wd := chdirTemp(t)
	mustWrite(t, filepath.Join(wd, "srcstruct.yaml"), "output: from-config.txt\nroots: []\n")

	stdout, err := execute(t, "-o", "from-flag.txt")
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(wd, "from-flag.txt"))
	assert.FileExists(t, filepath.Join(wd, "from-flag.txt"))
	assert.NoFileExists(t, filepath.Join(wd, "from-config.txt"))
}

func TestRootCommand_DestinationFailure(t *testing.T) {
	wd := chdirTemp(t)
	require.NoError(t, os.Mkdir(filepath.Join(wd, "taken"), 0o755))

	stdout, err := execute(t, "-o", "taken", "src")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export failed")
	assert.Empty(t, stdout)
}

func TestRootCommand_MissingConfigFile(t *testing.T) {
	wd := chdirTemp(t)

	_, err := execute(t, "--config", filepath.Join(wd, "nope.yaml"))
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(wd, "src_structure.txt"))
}

func TestVersionCommand(t *testing.T) {
	chdirTemp(t)

	stdout, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)

	stdout, err = execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version.Get().String()+"\n", stdout)
}

func TestNewRootCmd_BindsFlags(t *testing.T) {
	var cmd *cobra.Command
	require.NotPanics(t, func() { cmd = NewRootCmd() })
	for _, name := range []string{"base", "output", "debug"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
