package record

import (
	"testing"
	"time"

	"github.com/SlpAus/arknights-damage-backend/internal/operator"
	"github.com/SlpAus/arknights-damage-backend/pkg/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsSummary(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	operators := operator.NewRepository(db)

	for _, in := range []operator.Input{
		{Name: "银灰", ClassType: "guard"},
		{Name: "陈", ClassType: "guard"},
		{Name: "闪灵", ClassType: "medic"},
	} {
		_, err := operators.Insert(in)
		require.NoError(t, err)
	}

	_, err := repo.RecordCalculation(nil, "dps", payload.Map{}, payload.Map{})
	require.NoError(t, err)
	_, err = repo.RecordCalculation(nil, "dps", payload.Map{}, payload.Map{})
	require.NoError(t, err)
	_, err = repo.RecordImport("json_import", "a.json", 3, StatusSuccess, "")
	require.NoError(t, err)

	result := repo.Statistics()
	require.False(t, result.Degraded)
	require.NoError(t, result.Err)

	summary := result.Value
	assert.EqualValues(t, 3, summary.TotalOperators)
	assert.EqualValues(t, 2, summary.TotalCalculations)
	assert.EqualValues(t, 1, summary.TotalImports)
	assert.Equal(t, map[string]int64{"guard": 2, "medic": 1}, summary.ClassDistribution)
}

func TestTodayCalculationsExcludesOlderRecords(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)

	// 今天的记录
	_, err := repo.RecordCalculation(nil, "dps", payload.Map{}, payload.Map{})
	require.NoError(t, err)

	// 昨天的记录：显式指定时间戳写入
	yesterday := CalculationRecord{
		CalculationType: "dps",
		Parameters:      "{}",
		Results:         "{}",
		CreatedAt:       time.Now().AddDate(0, 0, -1),
	}
	require.NoError(t, db.Create(&yesterday).Error)

	count, err := repo.TodayCalculations()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	result := repo.Statistics()
	require.False(t, result.Degraded)
	assert.EqualValues(t, 1, result.Value.TodayCalculations)
	assert.EqualValues(t, 2, result.Value.TotalCalculations)
}

func TestStatisticsEmptyStore(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	result := repo.Statistics()
	require.False(t, result.Degraded)

	summary := result.Value
	assert.Zero(t, summary.TotalOperators)
	assert.Zero(t, summary.TodayCalculations)
	assert.Zero(t, summary.TotalImports)
	assert.Zero(t, summary.TotalCalculations)
	assert.Empty(t, summary.ClassDistribution)
	assert.NotNil(t, summary.ClassDistribution)
}

func TestStatisticsDegradesOnStorageFailure(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	result := repo.Statistics()
	assert.True(t, result.Degraded)
	assert.Error(t, result.Err)

	// 降级时返回全零摘要而不是半成品
	summary := result.Value
	assert.Zero(t, summary.TotalOperators)
	assert.Zero(t, summary.TotalCalculations)
	assert.NotNil(t, summary.ClassDistribution)
	assert.Empty(t, summary.ClassDistribution)
}
