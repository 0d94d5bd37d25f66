package cmd_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// testBinaryName is the name of the test binary for E2E tests.
	testBinaryName = "zspotify-grabber-test"

	baseConfig = `# Settings used by the E2E tests.
auth_token: "test_token_123"
root_path: "/tmp/test-output"
download_format: "mp3-320"
download_speed_limit: "500KB"
log_level: "info"
`
)

// TestMain builds the binary before running E2E tests.
func TestMain(m *testing.M) {
	//nolint:noctx // TestMain doesn't have access to context, and build is needed before tests run.
	buildCmd := exec.Command("go", "build", "-o", testBinaryName, "../.")
	if err := buildCmd.Run(); err != nil {
		os.Exit(1)
	}

	code := m.Run()

	_ = os.Remove(testBinaryName)

	os.Exit(code)
}

// writeConfig writes baseConfig into a temporary directory and returns its path.
func writeConfig(t *testing.T) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "test-config.yaml")
	err := os.WriteFile(configPath, []byte(baseConfig), 0o644) //nolint:gosec // It's a test file.
	require.NoError(t, err)

	return configPath
}

// runBinary runs the test binary and returns its combined output.
func runBinary(t *testing.T, args ...string) (string, error) {
	t.Helper()

	//nolint:gosec,noctx // Test binary name is a constant, not user input. No context available in test.
	cmd := exec.Command("./"+testBinaryName, args...)
	output, err := cmd.CombinedOutput()

	return string(output), err
}

// TestE2E_ConfigSetGet tests that settings saved with "config set" are read back by "config get".
func TestE2E_ConfigSetGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key      string
		value    string
		expected string
	}{
		{key: "download_format", value: "FLAC", expected: "flac"},
		{key: "download_real_time", value: "true", expected: "true"},
		{key: "root_path", value: "/new/output/", expected: "/new/output"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			configPath := writeConfig(t)

			output, err := runBinary(t, "config", "set", tt.key, tt.value, "--config", configPath)
			require.NoError(t, err, output)

			output, err = runBinary(t, "config", "get", tt.key, "--config", configPath)
			require.NoError(t, err, output)
			assert.Equal(t, tt.expected, strings.TrimSpace(output))

			content, err := os.ReadFile(configPath)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(content), "# Settings used by the E2E tests."),
				"comments must survive saving: %s", content)
		})
	}
}

// TestE2E_InvalidValues tests that invalid values are rejected before anything is downloaded.
func TestE2E_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		args             []string
		expectedErrorMsg string
	}{
		{
			name:             "invalid format flag",
			args:             []string{"--format", "ogg", "track:abc"},
			expectedErrorMsg: "invalid download_format",
		},
		{
			name:             "invalid speed limit flag",
			args:             []string{"--speed-limit", "invalid-speed", "track:abc"},
			expectedErrorMsg: "failed to parse download speed limit",
		},
		{
			name:             "no valid references",
			args:             []string{"https://example.com/not-a-track"},
			expectedErrorMsg: "no valid references",
		},
		{
			name:             "config set unknown key",
			args:             []string{"config", "set", "auth_token", "x"},
			expectedErrorMsg: "unknown configuration key",
		},
		{
			name:             "config set invalid format",
			args:             []string{"config", "set", "download_format", "ogg"},
			expectedErrorMsg: "invalid download_format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			configPath := writeConfig(t)

			output, err := runBinary(t, append(tt.args, "--config", configPath)...)
			require.Error(t, err)

			assert.Contains(t, strings.ToLower(output), strings.ToLower(tt.expectedErrorMsg),
				"Expected error message about '%s' but got: %s", tt.expectedErrorMsg, output)
		})
	}
}

// TestE2E_UnsupportedFormatInFile tests that an unsupported format in the file falls back to the default and is saved.
func TestE2E_UnsupportedFormatInFile(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "test-config.yaml")
	content := strings.Replace(baseConfig, `download_format: "mp3-320"`, `download_format: "ogg_vorbis_320"`, 1)

	err := os.WriteFile(configPath, []byte(content), 0o644) //nolint:gosec // It's a test file.
	require.NoError(t, err)

	output, err := runBinary(t, "config", "get", "download_format", "--config", configPath)
	require.NoError(t, err, output)
	assert.Contains(t, output, "mp3-320")

	saved, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(saved), `download_format: "mp3-320"`)
	assert.True(t, strings.HasPrefix(string(saved), "# Settings used by the E2E tests."),
		"comments must survive saving: %s", saved)
}
