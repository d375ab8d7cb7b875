package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vulcan/internal/adapters/telemetry/progrock"
	"go.trai.ch/vulcan/internal/core/domain"
)

func TestRecorder_Integration(t *testing.T) {
	var out bytes.Buffer
	recorder := progrock.NewConsole(&out)
	require.NotNil(t, recorder)

	ctx := context.Background()
	_, base := recorder.Record(ctx, "install base")
	_, extra := recorder.Record(ctx, "install extra test")

	_, err := base.Stdout().Write([]byte("Successfully installed requests-2.31.0\n"))
	require.NoError(t, err)
	_, err = extra.Stderr().Write([]byte("ERROR: ResolutionImpossible\n"))
	require.NoError(t, err)

	base.Log(domain.LogLevelDebug, "debug msg")
	base.Complete(nil)
	extra.Complete(errors.New("install conflict"))

	assert.NoError(t, recorder.Close())
}

func TestRecorder_ConsoleShowsInstallOutput(t *testing.T) {
	var out bytes.Buffer
	recorder := progrock.NewConsole(&out)

	_, base := recorder.Record(context.Background(), "install base: requests")
	_, err := base.Stdout().Write([]byte("Successfully installed requests-2.31.0\n"))
	require.NoError(t, err)
	base.Complete(nil)

	_, extra := recorder.Record(context.Background(), "install extra-test: pytest")
	_, err = extra.Stdout().Write([]byte("ERROR: ResolutionImpossible\n"))
	require.NoError(t, err)
	extra.Complete(errors.New("install conflict"))

	require.NoError(t, recorder.Close())

	rendered := out.String()
	assert.Contains(t, rendered, "install base: requests")
	assert.Contains(t, rendered, "Successfully installed requests-2.31.0")
	assert.Contains(t, rendered, "install extra-test: pytest")
	assert.Contains(t, rendered, "ERROR: ResolutionImpossible")
}
