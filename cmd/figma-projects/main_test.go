package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOr(t *testing.T) {
	t.Setenv("FIGMA_API_ROOT", "")
	assert.Equal(t, "https://api.figma.com", envOr("FIGMA_API_ROOT", "https://api.figma.com"))

	t.Setenv("FIGMA_API_ROOT", "http://localhost:9000")
	assert.Equal(t, "http://localhost:9000", envOr("FIGMA_API_ROOT", "https://api.figma.com"))
}

func TestEnvUint64(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    uint64
		wantErr bool
	}{
		{name: "unset uses fallback", value: "", want: defaultProjectID},
		{name: "numeric", value: "42", want: 42},
		{name: "not a number", value: "abc", wantErr: true},
		{name: "negative", value: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FIGMA_PROJECT_ID", tt.value)
			got, err := envUint64("FIGMA_PROJECT_ID", defaultProjectID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		level   string
		wantErr bool
	}{
		{name: "console", format: "console", level: "info"},
		{name: "json", format: "json", level: "debug"},
		{name: "json bad level", format: "json", level: "loud", wantErr: true},
		{name: "unknown format", format: "xml", level: "info", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, closeLogger, err := newLogger(tt.format, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
			closeLogger()
		})
	}
}

// TestLiveProject builds the figma-projects binary and runs it against the real
// Figma API.
//
// Run with:
//
//	FIGMA_ACCESS_TOKEN=<your-token> FIGMA_PROJECT_ID=<id> go test -run TestLiveProject -v
func TestLiveProject(t *testing.T) {
	if os.Getenv("FIGMA_ACCESS_TOKEN") == "" {
		t.Skip("FIGMA_ACCESS_TOKEN not set, skipping test")
	}

	dir := t.TempDir()
	bin := filepath.Join(dir, "figma-projects")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}

	build := exec.Command("go", "build", "-o", bin, ".")
	out, err := build.CombinedOutput()
	require.NoError(t, err, "failed to build binary:\n%s", out)

	outputFile := filepath.Join(dir, "project.json")
	cmd := exec.Command(bin, "--format", "json", "--output", outputFile, "--log-format", "json")
	out, err = cmd.CombinedOutput()
	t.Logf("CLI output:\n%s", out)
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{"))
	assert.Contains(t, string(data), `"files"`)
}
