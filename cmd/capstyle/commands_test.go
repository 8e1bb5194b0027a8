package capstyle

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/capstyle/cmd/capstyle/internal/app"
	"github.com/arthur-debert/capstyle/pkg/errors"
	"github.com/arthur-debert/capstyle/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// styled are the flags giving deterministic ANSI output
var styled = []string{"--backend", "ansi", "--term", "xterm", "--force-styling", "always"}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	testutil.NewTestEnvironment(t)

	cmd := newRootCmd(&app.App{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderRaw(t *testing.T) {
	out, err := execute(t, append(styled, "render", "--raw", "bold", "hello", "world")...)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1mhello world\x1b[0m\n", out)
}

func TestRenderStyle(t *testing.T) {
	out, err := execute(t, append(styled, "render", "--raw", "--style", "success", "done")...)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[32mdone\x1b[0m\n", out)

	_, err = execute(t, append(styled, "render", "--style", "sparkly", "done")...)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestRenderStyleReport(t *testing.T) {
	out, err := execute(t, append(styled, "--format", "json", "render", "--style", "success", "done")...)
	require.NoError(t, err)

	var rep map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "green", rep["name"])
	assert.Equal(t, "color", rep["name_kind"])
	assert.Equal(t, "\x1b[32mdone\x1b[0m", rep["output"])
}

func TestRenderWithoutStyling(t *testing.T) {
	out, err := execute(t, "--backend", "ansi", "--force-styling", "never", "render", "--raw", "bold_red", "plain")
	require.NoError(t, err)
	assert.Equal(t, "plain\n", out)
}

func TestRenderMisspelledName(t *testing.T) {
	_, err := execute(t, append(styled, "render", "bright_rde", "text")...)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCapabilityMisuse))
	assert.Contains(t, err.Error(), "bright_rde")
}

func TestResolveJSON(t *testing.T) {
	out, err := execute(t, append(styled, "--format", "json", "resolve", "bold_on_red")...)
	require.NoError(t, err)

	var rep map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "bold_on_red", rep["name"])
	assert.Equal(t, "compound", rep["name_kind"])
	assert.Equal(t, []any{"bold", "on_red"}, rep["tokens"])

	attr, ok := rep["attribute"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "formatting", attr["kind"])
	assert.Equal(t, "\x1b[1m\x1b[41m", attr["sequence"])
}

func TestResolveText(t *testing.T) {
	out, err := execute(t, append(styled, "--format", "text", "resolve", "move_x", "red")...)
	require.NoError(t, err)
	assert.Contains(t, out, "move_x")
	assert.Contains(t, out, "parameterizing")
	assert.Contains(t, out, `\x1b[31m`)
}

func TestParam(t *testing.T) {
	out, err := execute(t, append(styled, "param", "--raw", "move", "2", "5")...)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[3;6H", out)

	_, err = execute(t, append(styled, "param", "move_x", "ten")...)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCapabilityMisuse))

	_, err = execute(t, append(styled, "param", "bold", "1")...)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestMarkup(t *testing.T) {
	out, err := execute(t, append(styled, "markup", "-d", "who=world", "<bold>hi {{.who}}</bold>")...)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1mhi world\x1b[0m\n", out)

	out, err = execute(t, append(styled, "markup", "--strip", "<bold>hi</bold>")...)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)

	_, err = execute(t, append(styled, "markup")...)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestMarkupFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "motd.tmpl")
	require.NoError(t, os.WriteFile(file, []byte("<no-format>[ok] </no-format>ready"), 0o644))

	out, err := execute(t, "--backend", "ansi", "--force-styling", "never", "markup", "--file", file)
	require.NoError(t, err)
	assert.Equal(t, "[ok] ready\n", out)
}

func TestColorsJSON(t *testing.T) {
	out, err := execute(t, append(styled, "--format", "json", "colors")...)
	require.NoError(t, err)

	var palette struct {
		Terminal struct {
			Colors int `json:"colors"`
		} `json:"terminal"`
		Swatches []struct {
			Name     string `json:"name"`
			Index    int    `json:"index"`
			Sequence string `json:"sequence"`
		} `json:"swatches"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &palette))
	assert.Equal(t, 16, palette.Terminal.Colors)
	require.Len(t, palette.Swatches, 16)
	assert.Equal(t, "red", palette.Swatches[1].Name)
	assert.Equal(t, "\x1b[31m", palette.Swatches[1].Sequence)
	assert.Equal(t, "bright_white", palette.Swatches[15].Name)
}

func TestColorsAll(t *testing.T) {
	out, err := execute(t, "--backend", "ansi", "--term", "xterm-256color", "--force-styling", "always",
		"--format", "json", "colors", "--all")
	require.NoError(t, err)
	assert.Equal(t, 256, strings.Count(out, `"index"`))
}

func TestGenConfig(t *testing.T) {
	out, err := execute(t, "--colors", "88", "gen-config")
	require.NoError(t, err)
	assert.Contains(t, out, "[terminal]")
	assert.Contains(t, out, "colors = 88")
	assert.Contains(t, out, "[styles]")
}

func TestGenConfigWrite(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	run := func(args ...string) error {
		cmd := newRootCmd(&app.App{})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	require.NoError(t, run("--term", "vt100", "gen-config", "--write"))
	content, err := os.ReadFile(env.ConfigFile())
	require.NoError(t, err)
	assert.Contains(t, string(content), "vt100")

	// the written file is picked up as the user config
	err = run("gen-config", "--write")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	require.NoError(t, run("gen-config", "--write", "--force"))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "capstyle dev")
}

func TestHelpTopics(t *testing.T) {
	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	for _, topic := range []string{"names", "markup", "configuration", "styling"} {
		assert.Contains(t, out, topic)
	}

	out, err = execute(t, "help", "names")
	require.NoError(t, err)
	assert.Contains(t, out, "Compoundables")
}

func TestNoCommand(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestInvalidConfigValue(t *testing.T) {
	_, err := execute(t, "--force-styling", "sometimes", "resolve", "bold")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestUserConfigStyles(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteConfig("[styles]\nalert = 'bold_blink'\n")

	cmd := newRootCmd(&app.App{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append(styled, "render", "--raw", "--style", "alert", "now"))
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "\x1b[1m\x1b[5mnow\x1b[0m\n", out.String())
}
