package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("正常系: YAMLの値と環境変数の上書き", func(t *testing.T) {
		dir := t.TempDir()
		yaml := `
database:
  driver: sqlite
  url: "file::memory:"
server:
  port: ":9090"
app:
  review_limit: 5
  session_ttl: 10m
auth:
  enabled: false
mailer:
  type: smtp
smtp:
  host: localhost
  port: 1025
  from: noreply@example.com
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
		t.Setenv("APP_SERVER_PORT", ":7070")

		require.NoError(t, LoadConfig(dir))

		assert.Equal(t, "sqlite", Cfg.Database.Driver)
		assert.Equal(t, ":7070", Cfg.Server.Port)
		assert.Equal(t, 5, Cfg.App.ReviewLimit)
		assert.Equal(t, 10*time.Minute, Cfg.App.SessionTTL)
		assert.Equal(t, DefaultSweepInterval, Cfg.App.SweepInterval)
		assert.False(t, Cfg.Auth.Enabled)
		assert.Equal(t, "smtp", Cfg.Mailer.Type)
		assert.Equal(t, 1025, Cfg.SMTP.Port)
	})

	t.Run("正常系: 設定ファイルがなければデフォルト値", func(t *testing.T) {
		dir := t.TempDir()
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { os.Chdir(wd) })

		require.NoError(t, LoadConfig(dir))

		assert.Equal(t, DefaultServerPort, Cfg.Server.Port)
		assert.Equal(t, DefaultDatabaseDriver, Cfg.Database.Driver)
		assert.Equal(t, DefaultAppReviewLimit, Cfg.App.ReviewLimit)
		assert.Equal(t, DefaultSessionTTL, Cfg.App.SessionTTL)
		assert.Equal(t, DefaultMailerType, Cfg.Mailer.Type)
		assert.Equal(t, DefaultSMTPTimeout, Cfg.SMTP.Timeout)
		assert.True(t, Cfg.Auth.Enabled)
	})
}
