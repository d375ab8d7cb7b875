package venv_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vulcan/internal/adapters/venv"
	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/vulcan/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func venvPython(root string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(root, "venv", "Scripts", "python.exe")
	}
	return filepath.Join(root, "venv", "bin", "python")
}

func TestProvider_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	locator := mocks.NewMockRuntimeLocator(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	tempRoot := t.TempDir()

	locator.EXPECT().Host(gomock.Any()).Return("/usr/bin/python3", nil)

	var root string
	gomock.InOrder(
		executor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, cmd domain.Command, _ any) (domain.CommandResult, error) {
				assert.Equal(t, "/usr/bin/python3", cmd.Path)
				require.Len(t, cmd.Args, 3)
				assert.Equal(t, []string{"-m", "venv"}, cmd.Args[:2])
				root = filepath.Dir(cmd.Args[2])
				return domain.CommandResult{}, nil
			}),
		executor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, cmd domain.Command, _ any) (domain.CommandResult, error) {
				assert.Equal(t, venvPython(root), cmd.Path)
				assert.Equal(t, []string{"-Im", "pip", "install", "--upgrade", "pip"}, cmd.Args)
				return domain.CommandResult{}, nil
			}),
	)

	provider := venv.NewProviderWithTempRoot(executor, locator, logger, tempRoot)
	env, release, err := provider.Create(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, release)

	assert.Equal(t, root, env.Root)
	assert.Equal(t, venvPython(root), env.Python)
	assert.Equal(t, tempRoot, filepath.Dir(env.Root))
	assert.DirExists(t, env.ScratchDir())

	require.NoError(t, release())
	assert.NoDirExists(t, env.Root)
}

func TestProvider_Create_RequestedVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	locator := mocks.NewMockRuntimeLocator(ctrl)

	locator.EXPECT().Locate(gomock.Any(), "3.9").Return("/usr/bin/python3.9", nil)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), nil).Return(domain.CommandResult{}, nil).Times(2)

	provider := venv.NewProviderWithTempRoot(executor, locator, mocks.NewMockLogger(ctrl), t.TempDir())
	env, release, err := provider.Create(context.Background(), "3.9")
	require.NoError(t, err)
	t.Cleanup(func() { _ = release() })

	assert.Equal(t, "3.9", env.RuntimeVersion)
}

func TestProvider_Create_RuntimeUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	locator := mocks.NewMockRuntimeLocator(ctrl)
	tempRoot := t.TempDir()

	unavailable := zerr.With(zerr.Wrap(domain.ErrEnvironmentUnavailable, "requested runtime is not installed"), "version", "2.7")
	locator.EXPECT().Locate(gomock.Any(), "2.7").Return("", unavailable)

	provider := venv.NewProviderWithTempRoot(executor, locator, mocks.NewMockLogger(ctrl), tempRoot)
	_, release, err := provider.Create(context.Background(), "2.7")
	require.ErrorIs(t, err, domain.ErrEnvironmentUnavailable)
	assert.Nil(t, release)

	entries, err := os.ReadDir(tempRoot)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProvider_Create_CleansUpOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	locator := mocks.NewMockRuntimeLocator(ctrl)
	tempRoot := t.TempDir()

	locator.EXPECT().Host(gomock.Any()).Return("/usr/bin/python3", nil)
	gomock.InOrder(
		executor.EXPECT().Execute(gomock.Any(), gomock.Any(), nil).Return(domain.CommandResult{}, nil),
		executor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), nil).
			Return(domain.CommandResult{Combined: []byte("no network"), ExitCode: 1}, errors.New("exit status 1")),
	)

	provider := venv.NewProviderWithTempRoot(executor, locator, mocks.NewMockLogger(ctrl), tempRoot)
	_, release, err := provider.Create(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrEnvironmentCreateFailed)
	assert.Nil(t, release)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "no network", zErr.Metadata()["output"])

	entries, err := os.ReadDir(tempRoot)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
