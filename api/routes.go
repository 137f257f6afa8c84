package api

import (
	"github.com/SlpAus/arknights-damage-backend/internal/calc"
	"github.com/SlpAus/arknights-damage-backend/internal/importer"
	"github.com/SlpAus/arknights-damage-backend/internal/operator"
	"github.com/SlpAus/arknights-damage-backend/internal/record"
	"github.com/gin-gonic/gin"
)

// Handlers 汇集各模块的HTTP处理器，由main构造后传入
type Handlers struct {
	Operators *operator.Handler
	Records   *record.Handler
	Calc      *calc.Handler
	Importer  *importer.Handler
}

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine, h Handlers) {
	api := router.Group("/api")
	{
		// 干员相关的路由组 /api/operators
		operatorRoutes := api.Group("/operators")
		{
			operatorRoutes.GET("", h.Operators.ListOperators)
			operatorRoutes.POST("", h.Operators.CreateOperator)
			operatorRoutes.DELETE("", h.Operators.DeleteAllOperators)
			operatorRoutes.GET("/gaps", h.Operators.GetIDGaps)
			operatorRoutes.POST("/reorder", h.Operators.ReorderOperatorIDs)
			operatorRoutes.GET("/:id", h.Operators.GetOperator)
			operatorRoutes.PUT("/:id", h.Operators.UpdateOperator)
			operatorRoutes.DELETE("/:id", h.Operators.DeleteOperator)
		}

		// journal相关的路由组 /api/records
		recordRoutes := api.Group("/records")
		{
			recordRoutes.GET("/history", h.Records.GetHistory)
			recordRoutes.GET("/imports", h.Records.GetImportRecords)
			recordRoutes.POST("/cleanup", h.Records.PostCleanup)
		}

		// 统计摘要
		api.GET("/stats", h.Records.GetStatistics)

		// 伤害计算相关的路由组 /api/calc
		calcRoutes := api.Group("/calc")
		{
			calcRoutes.GET("/performance/:id", h.Calc.GetPerformance)
			calcRoutes.GET("/curve/:id", h.Calc.GetCurve)
			calcRoutes.GET("/timeline/:id", h.Calc.GetTimeline)
		}

		// 数据导入
		api.POST("/import", h.Importer.PostImport)
	}
}
