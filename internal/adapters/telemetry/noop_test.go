package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vulcan/internal/adapters/telemetry"
	"go.trai.ch/vulcan/internal/core/domain"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()
	ctx := context.Background()

	gotCtx, vertex := tel.Record(ctx, "install base")
	assert.Equal(t, ctx, gotCtx)

	n, err := vertex.Stdout().Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	vertex.Log(domain.LogLevelInfo, "ignored")
	vertex.Complete(nil)
	assert.NoError(t, tel.Close())
}
