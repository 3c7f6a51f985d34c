package core

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jakebark/logarray/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.SourceDir = t.TempDir()
	cfg.DestDir = filepath.Join(cfg.SourceDir, "json")
	require.NoError(t, os.Mkdir(cfg.DestDir, 0755))
	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	files := map[string]string{
		"youtube_api.2024-03-02.log": "{\"day\":2}\n",
		"youtube_api.2024-03-01.log": "{\"day\":1,\"n\":1}\n{\"day\":1,\"n\":2}\n",
		"other.log":                  "not json\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.SourceDir, name), []byte(content), 0644))
	}

	var out bytes.Buffer
	result, err := Run(cfg, &out)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cfg.SourceDir, "youtube_api.2024-03-01.log"), result.Source)
	assert.Equal(t, filepath.Join(cfg.DestDir, "youtube_api.2024-03-01.log.json"), result.Destination)
	assert.Equal(t, 2, result.Records)

	data, err := os.ReadFile(result.Destination)
	require.NoError(t, err)
	assert.Equal(t, len(data), result.Size)
	assert.JSONEq(t, `[{"day":1,"n":1},{"day":1,"n":2}]`, string(data))
	assert.Contains(t, out.String(), "youtube_api.2024-03-01.log")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T, cfg *config.Config)
		wantStage Stage
		wantErr   error
	}{
		{
			name: "missing source directory",
			setup: func(t *testing.T, cfg *config.Config) {
				cfg.SourceDir = filepath.Join(cfg.SourceDir, "missing")
			},
			wantStage: StageSelect,
			wantErr:   os.ErrNotExist,
		},
		{
			name:      "no matching file",
			setup:     func(t *testing.T, cfg *config.Config) {},
			wantStage: StageSelect,
			wantErr:   ErrNoSourceFile,
		},
		{
			name: "invalid line",
			setup: func(t *testing.T, cfg *config.Config) {
				writeSource(t, cfg, "{\"a\":1}\n{a:1}\n")
			},
			wantStage: StageTransform,
		},
		{
			name: "invalid encoding",
			setup: func(t *testing.T, cfg *config.Config) {
				writeSource(t, cfg, "{\"a\":\"\xc3\x28\"}\n")
			},
			wantStage: StageTransform,
			wantErr:   ErrInvalidEncoding,
		},
		{
			name: "missing destination directory",
			setup: func(t *testing.T, cfg *config.Config) {
				writeSource(t, cfg, "{\"a\":1}\n")
				cfg.DestDir = filepath.Join(cfg.DestDir, "missing")
			},
			wantStage: StagePersist,
			wantErr:   os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			destDir := cfg.DestDir
			tt.setup(t, &cfg)

			_, err := Run(cfg, &bytes.Buffer{})
			require.Error(t, err)

			var stageErr *StageError
			require.True(t, errors.As(err, &stageErr), "got %v", err)
			assert.Equal(t, tt.wantStage, stageErr.Stage)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}

			entries, readErr := os.ReadDir(destDir)
			require.NoError(t, readErr)
			assert.Empty(t, entries, "no destination file expected")
		})
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Prefix = ""

	_, err := Run(cfg, &bytes.Buffer{})
	require.Error(t, err)

	var stageErr *StageError
	assert.False(t, errors.As(err, &stageErr))
}

func writeSource(t *testing.T, cfg *config.Config, content string) {
	t.Helper()
	path := filepath.Join(cfg.SourceDir, config.SourcePrefix+".log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
