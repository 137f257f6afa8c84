package operator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextAvailableIDEmptyStore(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	assert.Equal(t, 1, repo.NextAvailableID())
}

func TestNextAvailableIDContiguous(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	mustInsert(t, repo, "银灰")
	mustInsert(t, repo, "陈")

	assert.Equal(t, 3, repo.NextAvailableID())
}

func TestGapReuseSequence(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	// 空库 → A拿1，B拿2
	assert.Equal(t, 1, mustInsert(t, repo, "A"))
	assert.Equal(t, 2, mustInsert(t, repo, "B"))

	// 删除1留下空缺，C补进来
	deleted, err := repo.Delete(1)
	require.NoError(t, err)
	require.True(t, deleted)
	assert.Equal(t, 1, mustInsert(t, repo, "C"))

	// 存活的只有B和C；GetAll按名称排序，而不是按ID
	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "B", all[0].Name)
	assert.Equal(t, "C", all[1].Name)
	assert.Equal(t, 2, all[0].ID)
	assert.Equal(t, 1, all[1].ID)
}

func TestNextAvailableIDAlwaysMinimalFree(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	for i, name := range []string{"a", "b", "c", "d", "e"} {
		assert.Equal(t, i+1, mustInsert(t, repo, name))
	}

	// 删除中间的两个，最小空缺应该是2
	for _, id := range []int{2, 4} {
		deleted, err := repo.Delete(id)
		require.NoError(t, err)
		require.True(t, deleted)
	}
	assert.Equal(t, 2, repo.NextAvailableID())

	// 填上2之后，下一个最小空缺是4
	assert.Equal(t, 2, mustInsert(t, repo, "f"))
	assert.Equal(t, 4, repo.NextAvailableID())
}

func TestIDGaps(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	gaps, err := repo.IDGaps()
	require.NoError(t, err)
	assert.Empty(t, gaps)

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		mustInsert(t, repo, name)
	}
	for _, id := range []int{2, 4} {
		_, err := repo.Delete(id)
		require.NoError(t, err)
	}

	gaps, err = repo.IDGaps()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, gaps)
}
