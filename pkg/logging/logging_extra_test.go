package logging

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(&buf).Level(zerolog.TraceLevel)
	return &buf
}

func TestLogResolution(t *testing.T) {
	buf := captureLogs(t)

	LogResolution(log.Logger, "bold_red", "compound", "\x1b[1m\x1b[31m")

	output := buf.String()
	assert.Contains(t, output, "bold_red")
	assert.Contains(t, output, `"kind":"compound"`)
	assert.Contains(t, output, `"bytes":9`)
	assert.Contains(t, output, "Resolved attribute")
}

func TestLogOperationStart(t *testing.T) {
	buf := captureLogs(t)

	done := LogOperationStart(log.Logger, "load-terminfo")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "load-terminfo")
	assert.Contains(t, output, "duration")
}

func TestMustNoError(t *testing.T) {
	assert.NotPanics(t, func() {
		Must(nil, "this should not exit")
	})
}

func TestMustWithError(t *testing.T) {
	if os.Getenv("BE_CRASHER") == "1" {
		Must(errors.New("test error"), "expected exit")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMustWithError")
	cmd.Env = append(os.Environ(), "BE_CRASHER=1")
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.False(t, exitErr.Success())
}
