package record

import (
	"testing"

	"github.com/SlpAus/arknights-damage-backend/internal/operator"
	"github.com/SlpAus/arknights-damage-backend/pkg/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCalculationRoundTrip(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	params := payload.Map{"atk": payload.Number(1000), "enemy_def": payload.Number(300)}
	results := payload.Map{"dps": payload.Number(250.5)}

	id, err := repo.RecordCalculation(nil, "dps", params, results)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	entries, err := repo.History(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, id, got.ID)
	assert.Nil(t, got.OperatorID)
	assert.Empty(t, got.OperatorName)
	assert.Equal(t, "dps", got.CalculationType)
	assert.Equal(t, 1000.0, got.Parameters["atk"].AsNumber())
	assert.Equal(t, 300.0, got.Parameters["enemy_def"].AsNumber())
	assert.Equal(t, 250.5, got.Results["dps"].AsNumber())
	assert.False(t, got.CreatedAt.IsZero())
}

func TestHistoryJoinsOperatorName(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	operators := operator.NewRepository(db)

	opID, err := operators.Insert(operator.Input{Name: "银灰"})
	require.NoError(t, err)

	_, err = repo.RecordCalculation(intPtr(opID), "performance", payload.Map{}, payload.Map{})
	require.NoError(t, err)
	// 悬空引用：指向不存在的干员
	_, err = repo.RecordCalculation(intPtr(999), "performance", payload.Map{}, payload.Map{})
	require.NoError(t, err)

	entries, err := repo.History(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// 新的在前：悬空引用的记录名称为空，不影响读取
	assert.Equal(t, 999, *entries[0].OperatorID)
	assert.Empty(t, entries[0].OperatorName)
	assert.Equal(t, opID, *entries[1].OperatorID)
	assert.Equal(t, "银灰", entries[1].OperatorName)
}

func TestHistoryToleratesCorruptPayload(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)

	// 直接写入一条payload损坏的记录
	require.NoError(t, db.Exec(
		"INSERT INTO calculation_records (operator_id, calculation_type, parameters, results, created_at) VALUES (NULL, 'dps', '{broken', '', CURRENT_TIMESTAMP)").Error)
	_, err := repo.RecordCalculation(nil, "dps", payload.Map{"ok": payload.Bool(true)}, payload.Map{})
	require.NoError(t, err)

	entries, err := repo.History(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// 损坏的记录解码为空Map，完好的记录不受影响
	for _, entry := range entries {
		require.NotNil(t, entry.Parameters)
		require.NotNil(t, entry.Results)
	}
	assert.True(t, entries[0].Parameters["ok"].AsBool())
	assert.Empty(t, entries[1].Parameters)
}

func TestHistoryLimitAndDefault(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	for i := 0; i < 5; i++ {
		_, err := repo.RecordCalculation(nil, "dps", payload.Map{}, payload.Map{})
		require.NoError(t, err)
	}

	entries, err := repo.History(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	// 新的在前
	assert.Equal(t, 5, entries[0].ID)
	assert.Equal(t, 3, entries[2].ID)

	// 非正数回落到默认上限
	entries, err = repo.History(0)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestRecordImportAndList(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	_, err := repo.RecordImport("json_import", "a.json", 10, StatusSuccess, "")
	require.NoError(t, err)
	_, err = repo.RecordImport("csv_import", "b.csv", 3, StatusPartial, "第2行: 缺少名称")
	require.NoError(t, err)

	entries, err := repo.ImportRecords(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// 新的在前
	assert.Equal(t, "csv_import", entries[0].ImportType)
	assert.Equal(t, "b.csv", entries[0].FileName)
	assert.Equal(t, 3, entries[0].RecordCount)
	assert.Equal(t, StatusPartial, entries[0].Status)
	assert.Equal(t, "第2行: 缺少名称", entries[0].ErrorMessage)
	assert.Equal(t, StatusSuccess, entries[1].Status)

	entries, err = repo.ImportRecords(1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
