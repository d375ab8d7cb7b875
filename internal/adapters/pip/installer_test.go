package pip_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vulcan/internal/adapters/pip"
	"go.trai.ch/vulcan/internal/adapters/telemetry"
	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/vulcan/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var testEnv = domain.Environment{Root: "/tmp/env", Python: "/tmp/env/venv/bin/python"}

func TestInstaller_InstallAndFreeze(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	gomock.InOrder(
		executor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd domain.Command, _ any) (domain.CommandResult, error) {
				assert.Equal(t, testEnv.Python, cmd.Path)
				assert.Equal(t, []string{
					"-Im", "pip", "install", "--use-pep517", "--target", "/tmp/env/scratch/base",
					"requests>=2", "click",
				}, cmd.Args)
				return domain.CommandResult{}, nil
			}),
		executor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, cmd domain.Command, _ any) (domain.CommandResult, error) {
				assert.Equal(t, []string{
					"-Im", "pip", "list", "--format=freeze", "--path", "/tmp/env/scratch/base",
				}, cmd.Args)
				return domain.CommandResult{Stdout: []byte("click==8.1.7\nrequests==2.32.3\nurllib3==2.2.1\n")}, nil
			}),
	)

	installer := pip.NewInstaller(executor, telemetry.NewNoOp())
	frozen, err := installer.InstallAndFreeze(context.Background(), testEnv, "/tmp/env/scratch/base",
		[]domain.Requirement{"requests>=2", "click"})
	require.NoError(t, err)

	assert.Equal(t, []string{"click", "requests", "urllib3"}, frozen.Names())
	assert.Equal(t, domain.Requirement("urllib3==2.2.1"), frozen["urllib3"])
}

func TestInstaller_InstallAndFreeze_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	installer := pip.NewInstaller(executor, telemetry.NewNoOp())
	frozen, err := installer.InstallAndFreeze(context.Background(), testEnv, "/tmp/env/scratch/x", nil)
	require.NoError(t, err)
	assert.Empty(t, frozen)
}

func TestInstaller_InstallAndFreeze_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	output := "ERROR: Cannot install a==1 and a==2 because these package versions have conflicting dependencies."
	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.CommandResult{Combined: []byte(output + "\n"), ExitCode: 1}, errors.New("exit status 1"))

	installer := pip.NewInstaller(executor, telemetry.NewNoOp())
	_, err := installer.InstallAndFreeze(context.Background(), testEnv, "/tmp/env/scratch/c",
		[]domain.Requirement{"a==1", "a==2"})
	require.ErrorIs(t, err, domain.ErrInstallConflict)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, output, zErr.Metadata()["output"])
	assert.Equal(t, 1, zErr.Metadata()["exit_code"])
}

func TestInstaller_InstallAndFreeze_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Command, any) (domain.CommandResult, error) {
			cancel()
			return domain.CommandResult{ExitCode: -1}, context.Canceled
		})

	installer := pip.NewInstaller(executor, telemetry.NewNoOp())
	_, err := installer.InstallAndFreeze(ctx, testEnv, "/tmp/env/scratch/base", []domain.Requirement{"a"})
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrInstallConflict)
}

func TestInstaller_InstallAndFreeze_LaunchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	launchErr := errors.New("fork/exec /tmp/env/venv/bin/python: no such file or directory")
	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.CommandResult{ExitCode: -1}, launchErr)

	installer := pip.NewInstaller(executor, telemetry.NewNoOp())
	_, err := installer.InstallAndFreeze(context.Background(), testEnv, "/tmp/env/scratch/base",
		[]domain.Requirement{"a"})
	require.ErrorIs(t, err, launchErr)
	assert.NotErrorIs(t, err, domain.ErrInstallConflict)
}

func TestInstaller_InstallAndFreeze_FreezeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	gomock.InOrder(
		executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.CommandResult{}, nil),
		executor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), nil).
			Return(domain.CommandResult{ExitCode: 2}, errors.New("exit status 2")),
	)

	installer := pip.NewInstaller(executor, telemetry.NewNoOp())
	_, err := installer.InstallAndFreeze(context.Background(), testEnv, "/tmp/env/scratch/f",
		[]domain.Requirement{"a"})
	require.ErrorIs(t, err, domain.ErrFreezeFailed)
}

func TestInstaller_RecordsVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	tel.EXPECT().Record(gomock.Any(), "install base: a").Return(context.Background(), vertex)
	vertex.EXPECT().Stdout().Return(nil)
	vertex.EXPECT().Log(domain.LogLevelDebug, gomock.Any())
	vertex.EXPECT().Complete(nil)

	gomock.InOrder(
		executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.CommandResult{}, nil),
		executor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), nil).
			Return(domain.CommandResult{Stdout: []byte("a==1\n")}, nil),
	)

	installer := pip.NewInstaller(executor, tel)
	frozen, err := installer.InstallAndFreeze(context.Background(), testEnv, "/tmp/env/scratch/base",
		[]domain.Requirement{"a"})
	require.NoError(t, err)
	assert.Equal(t, domain.Requirement("a==1"), frozen["a"])
}

func TestParseFreeze(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    []string
		wantErr error
	}{
		{name: "empty", out: ""},
		{name: "pins", out: "Flask==3.0.0\nJinja2==3.1.3\n", want: []string{"flask", "jinja2"}},
		{name: "skips blanks and comments", out: "\n# comment\nzope.interface==6.0\n\n", want: []string{"zope-interface"}},
		{name: "crlf", out: "a==1\r\nb==2\r\n", want: []string{"a", "b"}},
		{name: "duplicate", out: "a==1\nA==2\n", wantErr: domain.ErrDuplicatePackage},
		{name: "garbage", out: "==1\n", wantErr: domain.ErrMalformedRequirement},
		{name: "editable", out: "requests==2.0\n-e git+https://x\n", wantErr: domain.ErrMalformedRequirement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pip.ParseFreeze([]byte(tt.out))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if errors.Is(tt.wantErr, domain.ErrMalformedRequirement) {
					var zErr *zerr.Error
					require.ErrorAs(t, err, &zErr)
					assert.NotEmpty(t, zErr.Metadata()["line"])
				}
				return
			}
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got.Names())
		})
	}
}

func TestInstaller_InstallPackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	python := "/work/.venv/bin/python"

	gomock.InOrder(
		executor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd domain.Command, _ any) (domain.CommandResult, error) {
				assert.Equal(t, python, cmd.Path)
				assert.Equal(t, []string{"-m", "pip", "install", "requests[socks]"}, cmd.Args)
				return domain.CommandResult{}, nil
			}),
		executor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, cmd domain.Command, _ any) (domain.CommandResult, error) {
				assert.Equal(t, []string{"-m", "pip", "list", "--format=freeze"}, cmd.Args)
				return domain.CommandResult{Stdout: []byte("PySocks==1.7.1\nrequests==2.32.3\n")}, nil
			}),
	)

	installer := pip.NewInstaller(executor, telemetry.NewNoOp())
	frozen, err := installer.InstallPackage(context.Background(), python, "requests[socks]")
	require.NoError(t, err)
	assert.Equal(t, domain.Requirement("requests==2.32.3"), frozen["requests"])
	assert.Equal(t, domain.Requirement("PySocks==1.7.1"), frozen["pysocks"])
}

func TestInstaller_InstallPackage_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	tel.EXPECT().Record(gomock.Any(), "add nosuchpkg").Return(context.Background(), vertex)
	vertex.EXPECT().Stdout().Return(nil)
	vertex.EXPECT().Complete(gomock.Not(gomock.Nil()))

	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.CommandResult{
			Combined: []byte("ERROR: No matching distribution found for nosuchpkg\n"),
			ExitCode: 1,
		}, errors.New("exit status 1"))

	installer := pip.NewInstaller(executor, tel)
	_, err := installer.InstallPackage(context.Background(), "/work/.venv/bin/python", "nosuchpkg")
	require.ErrorIs(t, err, domain.ErrInstallConflict)
}
