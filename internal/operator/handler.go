package operator

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler 持有operator模块的HTTP入口所需的依赖
type Handler struct {
	repo *Repository
}

// NewHandler 构造operator模块的HTTP处理器
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// ListOperators 返回所有干员，按名称排序
func (h *Handler) ListOperators(c *gin.Context) {
	operators, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, operators)
}

// GetOperator 根据ID返回单个干员
func (h *Handler) GetOperator(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的干员ID"})
		return
	}

	record, err := h.repo.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "干员不存在"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// CreateOperator 插入一个新干员，返回分配到的ID
func (h *Handler) CreateOperator(c *gin.Context) {
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
		return
	}
	if in.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "干员名称不能为空"})
		return
	}

	id, err := h.repo.Insert(in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateOperator 整体更新指定干员的字段
func (h *Handler) UpdateOperator(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的干员ID"})
		return
	}

	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
		return
	}

	updated, err := h.repo.Update(id, in)
	if err != nil {
		var dup *DuplicateNameError
		switch {
		case errors.As(err, &dup):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// DeleteOperator 删除指定干员
func (h *Handler) DeleteOperator(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的干员ID"})
		return
	}

	deleted, err := h.repo.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "干员不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// DeleteAllOperators 删除全部干员及其关联计算记录
func (h *Handler) DeleteAllOperators(c *gin.Context) {
	result := h.repo.DeleteAll()
	c.JSON(http.StatusOK, result)
}

// ReorderOperatorIDs 把所有干员ID重排为连续的1..N
func (h *Handler) ReorderOperatorIDs(c *gin.Context) {
	result := h.repo.ReorderIDs()
	c.JSON(http.StatusOK, result)
}

// GetIDGaps 返回当前ID序列中的空缺
func (h *Handler) GetIDGaps(c *gin.Context) {
	gaps, err := h.repo.IDGaps()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"gaps":    gaps,
		"next_id": h.repo.NextAvailableID(),
	})
}
