package main

import (
	"fmt"
	"time"

	"github.com/SlpAus/arknights-damage-backend/api"
	"github.com/SlpAus/arknights-damage-backend/internal/calc"
	"github.com/SlpAus/arknights-damage-backend/internal/importer"
	"github.com/SlpAus/arknights-damage-backend/internal/operator"
	"github.com/SlpAus/arknights-damage-backend/internal/platform/config"
	"github.com/SlpAus/arknights-damage-backend/internal/platform/database"
	"github.com/SlpAus/arknights-damage-backend/internal/record"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("配置加载失败，无法启动: %v", err))
	}
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 存储句柄构造一次，之后显式传给每个需要它的模块
	db, err := database.Open(cfg.Database.Sqlite.Path)
	if err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 幂等的表结构初始化与增量迁移
	if err := operator.PrimeDB(db); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}
	if err := record.PrimeDB(db); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	operatorRepo := operator.NewRepository(db)
	recordRepo := record.NewRepository(db)
	calcService := calc.NewService(operatorRepo, recordRepo, cfg.Calculator)
	fileImporter := importer.New(operatorRepo, recordRepo)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r, api.Handlers{
		Operators: operator.NewHandler(operatorRepo),
		Records:   record.NewHandler(recordRepo),
		Calc:      calc.NewHandler(calcService),
		Importer:  importer.NewHandler(fileImporter),
	})

	fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
	if err := r.Run(cfg.Server.Address); err != nil {
		panic("Failed to start server: " + err.Error())
	}
}
