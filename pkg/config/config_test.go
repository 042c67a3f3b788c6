package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
archive_url: https://example.com/archive
base_url: https://example.com
search_string: release
download_folder: /data/threads
dir_pattern: 'thread_(\d+)_'
table_id: threads
fetch:
  timeout: 45s
  user_agent: test-agent
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "https://example.com/archive", cfg.ArchiveURL)
		assert.Equal(t, "https://example.com", cfg.BaseURL)
		assert.Equal(t, "release", cfg.SearchString)
		assert.Equal(t, "/data/threads", cfg.DownloadFolder)
		assert.Equal(t, `thread_(\d+)_`, cfg.DirPattern)
		assert.Equal(t, "threads", cfg.TableID)
		assert.Equal(t, 45*time.Second, cfg.Fetch.Timeout)
		assert.Equal(t, "test-agent", cfg.Fetch.UserAgent)
		require.NotNil(t, cfg.SearchPattern())
		require.NotNil(t, cfg.FolderPattern())
	})

	t.Run("defaults", func(t *testing.T) {
		configContent := `
archive_url: https://example.com/archive
base_url: https://example.com
search_string: release
download_folder: /data/threads
dir_pattern: '(\d+)'
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

		cfg, err := Load(configPath)
		require.NoError(t, err)

		assert.Equal(t, DefaultTableID, cfg.TableID)
		assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
		assert.Equal(t, "arcwatch/1.0", cfg.Fetch.UserAgent)
	})

	t.Run("json config", func(t *testing.T) {
		configContent := `{
  "archive_url": "https://example.com/archive",
  "base_url": "https://example.com",
  "search_string": "release",
  "download_folder": "/data/threads",
  "dir_pattern": "thread_(\\d+)_"
}`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/archive", cfg.ArchiveURL)
		assert.Equal(t, `thread_(\d+)_`, cfg.DirPattern)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("ARCWATCH_TEST_FOLDER", "/from/env")
		cfg, err := Parse([]byte(`
archive_url: https://example.com/archive
base_url: https://example.com
search_string: release
download_folder: ${ARCWATCH_TEST_FOLDER}
dir_pattern: '(\d+)'
`))
		require.NoError(t, err)
		assert.Equal(t, "/from/env", cfg.DownloadFolder)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "invalid.yml")
		require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestParse_Validation(t *testing.T) {
	full := map[string]string{
		"archive_url":     "https://example.com/archive",
		"base_url":        "https://example.com",
		"search_string":   "release",
		"download_folder": "/data",
		"dir_pattern":     `thread_(\d+)`,
	}

	build := func(skip string, override map[string]string) []byte {
		doc := ""
		for _, k := range []string{"archive_url", "base_url", "search_string", "download_folder", "dir_pattern"} {
			if k == skip {
				continue
			}
			v := full[k]
			if o, ok := override[k]; ok {
				v = o
			}
			doc += k + ": '" + v + "'\n"
		}
		return []byte(doc)
	}

	for _, field := range []string{"archive_url", "base_url", "search_string", "download_folder", "dir_pattern"} {
		t.Run("missing "+field, func(t *testing.T) {
			cfg, err := Parse(build(field, nil))
			require.Error(t, err)
			assert.Nil(t, cfg)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, field, cfgErr.Field)
			assert.Equal(t, field+": is required", err.Error())
		})
	}

	tests := []struct {
		name     string
		override map[string]string
		field    string
		errMsg   string
	}{
		{name: "blank field", override: map[string]string{"base_url": "  "}, field: "base_url", errMsg: "is required"},
		{name: "bad search pattern", override: map[string]string{"search_string": "rel(ease"}, field: "search_string", errMsg: "invalid pattern"},
		{name: "bad dir pattern", override: map[string]string{"dir_pattern": "thread_[0-9"}, field: "dir_pattern", errMsg: "invalid pattern"},
		{name: "dir pattern without group", override: map[string]string{"dir_pattern": `thread_\d+`}, field: "dir_pattern", errMsg: "has no capturing group"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(build("", tt.override))
			require.Error(t, err)
			assert.Nil(t, cfg)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	t.Run("negative timeout", func(t *testing.T) {
		data := append(build("", nil), []byte("fetch:\n  timeout: -5s\n")...)
		_, err := Parse(data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch.timeout")
	})
}

func TestConfig_Patterns(t *testing.T) {
	cfg, err := Parse([]byte(`
archive_url: https://example.com/archive
base_url: https://example.com
search_string: release
download_folder: /data
dir_pattern: 'thread_(\d+)_'
`))
	require.NoError(t, err)

	t.Run("search pattern ignores case", func(t *testing.T) {
		assert.True(t, cfg.SearchPattern().MatchString("Weekly RELEASE notes"))
		assert.True(t, cfg.SearchPattern().MatchString("another release thread"))
		assert.False(t, cfg.SearchPattern().MatchString("off-topic chat"))
	})

	t.Run("folder pattern compiled as is", func(t *testing.T) {
		m := cfg.FolderPattern().FindStringSubmatch("thread_42_old")
		require.Len(t, m, 2)
		assert.Equal(t, "42", m[1])
	})

	t.Run("compiled once", func(t *testing.T) {
		assert.Same(t, cfg.SearchPattern(), cfg.SearchPattern())
		assert.Same(t, cfg.FolderPattern(), cfg.FolderPattern())
	})
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()
	require.NotNil(t, schema)

	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	for _, key := range []string{"archive_url", "base_url", "search_string", "download_folder", "dir_pattern", "table_id", "user_agent"} {
		assert.Contains(t, string(data), `"`+key+`"`)
	}
	assert.NotContains(t, string(data), "searchRe")
}
