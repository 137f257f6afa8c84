package calc

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SlpAus/arknights-damage-backend/internal/operator"
	"github.com/gin-gonic/gin"
)

// Handler 持有calc模块的HTTP入口所需的依赖
type Handler struct {
	service *Service
}

// NewHandler 构造calc模块的HTTP处理器
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// optionalIntQuery 解析可选的整数查询参数；缺席时返回nil
func optionalIntQuery(c *gin.Context, key string) *int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// optionalFloatQuery 解析可选的浮点查询参数；缺席时返回nil
func optionalFloatQuery(c *gin.Context, key string) *float64 {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func respondCalcError(c *gin.Context, err error) {
	if errors.Is(err, operator.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "干员不存在"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GetPerformance 返回干员面对指定（或默认）敌人配置的性能指标
func (h *Handler) GetPerformance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的干员ID"})
		return
	}

	perf, err := h.service.Performance(id, optionalIntQuery(c, "enemy_def"), optionalFloatQuery(c, "enemy_mdef"))
	if err != nil {
		respondCalcError(c, err)
		return
	}
	c.JSON(http.StatusOK, perf)
}

// GetCurve 返回干员的伤害-防御曲线数据
func (h *Handler) GetCurve(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的干员ID"})
		return
	}

	maxDefense, _ := strconv.Atoi(c.DefaultQuery("max_defense", "1000"))
	step, _ := strconv.Atoi(c.DefaultQuery("step", "25"))

	curve, err := h.service.Curve(id, maxDefense, step)
	if err != nil {
		respondCalcError(c, err)
		return
	}
	c.JSON(http.StatusOK, curve)
}

// GetTimeline 返回干员的累计伤害时间轴数据
func (h *Handler) GetTimeline(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的干员ID"})
		return
	}

	duration, err := strconv.ParseFloat(c.DefaultQuery("duration", "60"), 64)
	if err != nil || duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的持续时间"})
		return
	}

	timeline, err := h.service.Timeline(id, duration, optionalIntQuery(c, "enemy_def"), optionalFloatQuery(c, "enemy_mdef"))
	if err != nil {
		respondCalcError(c, err)
		return
	}
	c.JSON(http.StatusOK, timeline)
}
