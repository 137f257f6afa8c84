package record

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler 持有journal模块的HTTP入口所需的依赖
type Handler struct {
	repo *Repository
}

// NewHandler 构造journal模块的HTTP处理器
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// GetHistory 返回最近的计算历史
func (h *Handler) GetHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	entries, err := h.repo.History(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetImportRecords 返回最近的导入记录
func (h *Handler) GetImportRecords(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.repo.ImportRecords(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetStatistics 返回统计摘要；降级时一并回传降级标记
func (h *Handler) GetStatistics(c *gin.Context) {
	result := h.repo.Statistics()
	c.JSON(http.StatusOK, gin.H{
		"summary":  result.Value,
		"degraded": result.Degraded,
	})
}

// PostCleanup 触发过期记录清理，days缺省为30
func (h *Handler) PostCleanup(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	result := h.repo.Cleanup(days)
	c.JSON(http.StatusOK, result)
}
