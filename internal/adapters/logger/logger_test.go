package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vulcan/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithOutput(&buf)
	lg.Info("Building base requires")

	assert.Contains(t, buf.String(), "Building base requires")
	assert.Contains(t, buf.String(), "INFO")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithOutput(&buf)
	lg.Warn("some warning")

	assert.Contains(t, buf.String(), "some warning")
	assert.Contains(t, buf.String(), "WARN")
}

func TestLogger_Error_StandardError(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithOutput(&buf)
	lg.Error(os.ErrPermission)

	assert.Contains(t, buf.String(), "permission denied")
	assert.Contains(t, buf.String(), "ERROR")
}

func TestLogger_Error_Nil(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithOutput(&buf)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithOutput(&buf)
	lg.SetJSON(true)

	err := zerr.With(zerr.Wrap(zerr.New("install conflict"), "failed to install"), "exit_code", 1)
	lg.Error(err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "failed to install: install conflict", record["error"])
	details, ok := record["details"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 1, details["exit_code"], 0)
}

func TestFormatError_RendersChainAndOutput(t *testing.T) {
	base := zerr.New("install conflict")
	err := zerr.Wrap(base, "pip rejected the requirement set")
	err = zerr.With(err, "output", "ERROR: Cannot install requests==2.5.0 and requests==2.4.0\nResolutionImpossible")
	err = zerr.Wrap(err, "failed to resolve extra")

	out := logger.FormatError(err)
	lines := strings.Split(out, "\n")

	assert.Equal(t, "Error: failed to resolve extra", lines[0])
	assert.Contains(t, out, "→ pip rejected the requirement set")
	assert.Contains(t, out, "| ERROR: Cannot install requests==2.5.0 and requests==2.4.0")
	assert.Contains(t, out, "| ResolutionImpossible")
	assert.Contains(t, out, "→ install conflict")
}
