package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadTestStore loads testConfigContent into a store.
func loadTestStore(t *testing.T) (Store, *Config) {
	t.Helper()

	cfg, err := LoadConfig(writeTestConfig(t, testConfigContent))
	require.NoError(t, err)
	require.NoError(t, ValidateConfig(cfg))

	return NewStore(cfg), cfg
}

// TestFileStore_Get tests reading every store key.
func TestFileStore_Get(t *testing.T) {
	t.Parallel()

	store, _ := loadTestStore(t)

	rootPath, err := store.Get(KeyRootPath)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/music", rootPath)

	format, err := store.Get(KeyDownloadFormat)
	require.NoError(t, err)
	assert.Equal(t, FormatFLAC, format)

	realTime, err := store.Get(KeyDownloadRealTime)
	require.NoError(t, err)
	assert.Equal(t, false, realTime)

	_, err = store.Get("auth_token")
	require.ErrorIs(t, err, ErrUnknownKey)
}

// TestFileStore_Set tests that values are validated, applied and persisted.
func TestFileStore_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		key         string
		value       any
		expectedErr error
		check       func(*testing.T, *Config)
	}{
		{
			name:  "root path",
			key:   KeyRootPath,
			value: "/srv/music/",
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "/srv/music", cfg.RootPath)
			},
		},
		{
			name:        "empty root path",
			key:         KeyRootPath,
			value:       "",
			expectedErr: ErrInvalidValue,
		},
		{
			name:  "format",
			key:   KeyDownloadFormat,
			value: FormatMP3Mid,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, FormatMP3Mid, cfg.DownloadFormat)
			},
		},
		{
			name:        "unknown format",
			key:         KeyDownloadFormat,
			value:       "wav",
			expectedErr: ErrInvalidDownloadFormat,
		},
		{
			name:  "real time from string",
			key:   KeyDownloadRealTime,
			value: "true",
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.True(t, cfg.DownloadRealTime)
			},
		},
		{
			name:  "real time from int",
			key:   KeyDownloadRealTime,
			value: 1,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.True(t, cfg.DownloadRealTime)
			},
		},
		{
			name:        "real time garbage",
			key:         KeyDownloadRealTime,
			value:       "sometimes",
			expectedErr: ErrInvalidValue,
		},
		{
			name:        "unknown key",
			key:         "log_level",
			value:       "debug",
			expectedErr: ErrUnknownKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store, cfg := loadTestStore(t)
			before := *cfg

			err := store.Set(tt.key, tt.value)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, before, *cfg, "failed Set must not change the configuration")

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)

			// The file must round-trip through LoadConfig.
			reloaded, err := LoadConfig(cfg.ConfigFilename)
			require.NoError(t, err)
			require.NoError(t, ValidateConfig(reloaded))
			tt.check(t, reloaded)
		})
	}
}

// TestSaveConfig_PreservesLayout tests that untouched entries and comments survive a save.
func TestSaveConfig_PreservesLayout(t *testing.T) {
	t.Parallel()

	store, cfg := loadTestStore(t)

	require.NoError(t, store.Set(KeyDownloadFormat, FormatMP3High))

	content, err := os.ReadFile(cfg.ConfigFilename)
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "# catalog access")
	assert.Contains(t, text, `download_format: "mp3-320"`)
	assert.Contains(t, text, `auth_token: "test_token"`)
	assert.Less(t,
		indexOf(text, "auth_token"),
		indexOf(text, "download_format"),
		"key order must be preserved")
}

// TestSaveConfig_CreatesMissingFile tests saving into a file that does not exist yet.
func TestSaveConfig_CreatesMissingFile(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		ConfigFilename:   filepath.Join(t.TempDir(), "fresh.yaml"),
		DownloadRealTime: true,
	}

	require.NoError(t, SaveConfig(cfg, KeyDownloadRealTime))

	content, err := os.ReadFile(cfg.ConfigFilename)
	require.NoError(t, err)
	assert.Equal(t, "download_real_time: true\n", string(content))
}

// TestSaveConfig_AppendsMissingKey tests that a key absent from the file is appended.
func TestSaveConfig_AppendsMissingKey(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		ConfigFilename: writeTestConfig(t, "auth_token: \"x\"\n"),
		RootPath:       "/data",
	}

	require.NoError(t, SaveConfig(cfg, KeyRootPath))

	content, err := os.ReadFile(cfg.ConfigFilename)
	require.NoError(t, err)
	assert.Equal(t, "auth_token: \"x\"\nroot_path: \"/data\"\n", string(content))
}

// TestSaveConfig_RejectsNonMapping tests that a list document is not overwritten.
func TestSaveConfig_RejectsNonMapping(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		ConfigFilename: writeTestConfig(t, "- a\n- b\n"),
		RootPath:       "/data",
	}

	err := SaveConfig(cfg, KeyRootPath)
	require.ErrorIs(t, err, ErrMalformedConfigFile)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}

	return -1
}
