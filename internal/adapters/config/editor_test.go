package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vulcan/internal/adapters/config"
	"go.trai.ch/vulcan/internal/core/domain"
)

const editablePyproject = `[project]
name = "demo"
dynamic = ["dependencies"]

# runtime requirements
[tool.vulcan.dependencies]
requests = ">=2.31"  # pinned by ops
click = ""

[tool.black]
line-length = 100
`

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func dependencies(t *testing.T, dir string) map[string]domain.Requirement {
	t.Helper()
	loader, _ := newLoader(t)
	project, err := loader.Load(dir)
	require.NoError(t, err)

	byName := make(map[string]domain.Requirement, len(project.Dependencies))
	for _, req := range project.Dependencies {
		name, err := req.Name()
		require.NoError(t, err)
		byName[name] = req
	}
	return byName
}

func TestEditor_AddDependency_PyprojectInsert(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", editablePyproject)

	path, err := config.NewEditor().AddDependency(dir, "httpx", "~=0.27")
	require.NoError(t, err)
	assert.Equal(t, "pyproject.toml", filepath.Base(path))

	content := readFile(t, path)
	assert.Contains(t, content, "# runtime requirements")
	assert.Contains(t, content, `requests = ">=2.31"  # pinned by ops`)
	assert.Contains(t, content, "line-length = 100")
	assert.Less(t, strings.Index(content, "httpx"), strings.Index(content, "[tool.black]"))

	deps := dependencies(t, dir)
	assert.Len(t, deps, 3)
	assert.Equal(t, domain.Requirement("httpx~=0.27"), deps["httpx"])
	assert.Equal(t, domain.Requirement("requests>=2.31"), deps["requests"])
}

func TestEditor_AddDependency_PyprojectReplace(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", editablePyproject)

	path, err := config.NewEditor().AddDependency(dir, "Requests[socks]", "~=2.32")
	require.NoError(t, err)

	content := readFile(t, path)
	assert.NotContains(t, content, "pinned by ops")
	assert.Equal(t, 1, strings.Count(content, "equests"))

	deps := dependencies(t, dir)
	assert.Len(t, deps, 2)
	assert.Equal(t, domain.Requirement("Requests[socks]~=2.32"), deps["requests"])
	assert.Equal(t, domain.Requirement("click"), deps["click"])
}

func TestEditor_AddDependency_PyprojectReplacesInlineEntry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml",
		"[project]\ndynamic = [\"dependencies\"]\n\n[tool.vulcan.dependencies]\nhttpx = { version = \"~=0.26\", extras = [\"http2\"] }\n")

	_, err := config.NewEditor().AddDependency(dir, "httpx[http2]", "~=0.27")
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.Requirement{"httpx": "httpx[http2]~=0.27"}, dependencies(t, dir))
}

func TestEditor_AddDependency_PyprojectWithoutTable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "[project]\nname = \"demo\"\ndynamic = [\"dependencies\"]\n\n[tool.vulcan]\nlockfile = \"deps.lock\"")

	_, err := config.NewEditor().AddDependency(dir, "httpx", "")
	require.NoError(t, err)

	deps := dependencies(t, dir)
	assert.Equal(t, map[string]domain.Requirement{"httpx": "httpx"}, deps)
}

func TestEditor_AddDependency_PyprojectEmptyTable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "[project]\ndynamic = [\"dependencies\"]\n\n[tool.vulcan.dependencies]\n\n[tool.black]\n")

	_, err := config.NewEditor().AddDependency(dir, "httpx", ">=0.27")
	require.NoError(t, err)

	content := readFile(t, filepath.Join(dir, "pyproject.toml"))
	assert.Less(t, strings.Index(content, "httpx"), strings.Index(content, "[tool.black]"))
	assert.Equal(t, domain.Requirement("httpx>=0.27"), dependencies(t, dir)["httpx"])
}

func TestEditor_AddDependency_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "inline table",
			content: "[tool.vulcan]\ndependencies = { requests = \"\" }\n",
			wantErr: domain.ErrInvalidProject,
		},
		{
			name:    "dotted keys",
			content: "[tool.vulcan]\ndependencies.requests = \"\"\n",
			wantErr: domain.ErrInvalidProject,
		},
		{
			name:    "sub-table entry",
			content: "[tool.vulcan.dependencies.httpx]\nversion = \"~=0.27\"\n",
			wantErr: domain.ErrInvalidProject,
		},
		{
			name:    "broken toml",
			content: "[tool.vulcan\n",
			wantErr: domain.ErrInvalidProject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "pyproject.toml", tt.content)

			_, err := config.NewEditor().AddDependency(dir, "httpx", "")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.content, readFile(t, filepath.Join(dir, "pyproject.toml")))
		})
	}
}

func TestEditor_AddDependency_YAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vulcan.yaml", "# managed by vulcan\nlockfile: deps.lock\ndependencies:\n  requests: '>=2.31'\n")

	path, err := config.NewEditor().AddDependency(dir, "httpx", "~=0.27")
	require.NoError(t, err)
	assert.Equal(t, "vulcan.yaml", filepath.Base(path))
	assert.Contains(t, readFile(t, path), "# managed by vulcan")

	_, err = config.NewEditor().AddDependency(dir, "requests", "~=2.32")
	require.NoError(t, err)

	deps := dependencies(t, dir)
	assert.Equal(t, map[string]domain.Requirement{
		"httpx":    "httpx~=0.27",
		"requests": "requests~=2.32",
	}, deps)
}

func TestEditor_AddDependency_YAMLWithoutDependencies(t *testing.T) {
	for name, content := range map[string]string{
		"empty file":        "",
		"null dependencies": "dependencies:\n",
	} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "vulcan.yaml", content)

			_, err := config.NewEditor().AddDependency(dir, "httpx", "")
			require.NoError(t, err)
			assert.Equal(t, map[string]domain.Requirement{"httpx": "httpx"}, dependencies(t, dir))
		})
	}
}

func TestEditor_AddDependency_NotFound(t *testing.T) {
	_, err := config.NewEditor().AddDependency(t.TempDir(), "httpx", "")
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
}
