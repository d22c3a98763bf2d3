package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("默认配置", func(t *testing.T) {
		log, err := New(Options{})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("debug级别", func(t *testing.T) {
		log, err := New(Options{Level: "DEBUG", Format: "console"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("无效级别返回错误", func(t *testing.T) {
		_, err := New(Options{Level: "verbose"})
		assert.Error(t, err)
	})

	t.Run("输出到文件", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")

		log, err := New(Options{Level: "info", Format: "json", Output: path})
		require.NoError(t, err)

		log.Info("book created")
		require.NoError(t, log.Sync())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"msg":"book created"`)
	})
}
