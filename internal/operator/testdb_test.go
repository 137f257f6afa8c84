package operator

import (
	"path/filepath"
	"testing"

	"github.com/SlpAus/arknights-damage-backend/internal/platform/database"
	"github.com/SlpAus/arknights-damage-backend/internal/record"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB 在临时目录创建一个完整迁移过的SQLite数据库
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, PrimeDB(db))
	require.NoError(t, record.PrimeDB(db))
	return db
}

// mustInsert 插入一个仅指定名称的干员并返回分配到的ID
func mustInsert(t *testing.T, repo *Repository, name string) int {
	t.Helper()

	id, err := repo.Insert(Input{Name: name})
	require.NoError(t, err)
	return id
}
