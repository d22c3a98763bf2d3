// Package dbtest 提供测试用的SQLite数据库
// 每个测试一个临时文件库,表结构与生产环境同源(AutoMigrate)
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/bookapi/internal/infrastructure/config"
	"github.com/xiebiao/bookapi/internal/infrastructure/persistence/database"
	"github.com/xiebiao/bookapi/pkg/logger"
)

// New 创建临时SQLite数据库,测试结束时自动关闭
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			DBName: filepath.Join(t.TempDir(), "bookapi.db"),
			Query:  "_foreign_keys=on",
		},
	}

	db, cleanup, err := database.NewDB(cfg, logger.NewNop())
	require.NoError(t, err, "创建测试数据库失败")
	t.Cleanup(cleanup)

	return db
}
