package importer

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler 持有importer模块的HTTP入口所需的依赖
type Handler struct {
	importer *Importer
}

// NewHandler 构造importer模块的HTTP处理器
func NewHandler(importer *Importer) *Handler {
	return &Handler{importer: importer}
}

// importRequest 指定要导入的本地文件
type importRequest struct {
	Path string `json:"path" binding:"required"`
}

// PostImport 从本地文件导入干员数据
func (h *Handler) PostImport(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
		return
	}

	report, err := h.importer.ImportFile(req.Path)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
