package record

import (
	"path/filepath"
	"testing"

	"github.com/SlpAus/arknights-damage-backend/internal/operator"
	"github.com/SlpAus/arknights-damage-backend/internal/platform/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB 在临时目录创建一个完整迁移过的SQLite数据库，
// 干员表也一并迁移，供历史查询的JOIN和统计使用
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, PrimeDB(db))
	require.NoError(t, operator.PrimeDB(db))
	return db
}

func intPtr(v int) *int {
	return &v
}
