package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open 打开指定路径的SQLite数据库并返回连接句柄。
// 句柄在main中构造一次，然后显式传递给每个需要它的仓库，
// 而不是放在进程级全局变量里。
//
// 每个公开操作从句柄的连接池中取得自己的连接，结束时无条件归还；
// SQLite同一时刻只支持一个写入者，因此连接池上限设为1，
// 避免并发写入时出现SQLITE_BUSY。
func Open(path string) (*gorm.DB, error) {
	// GORM日志配置
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 0,
			LogLevel:      logger.Silent,
			Colorful:      true,
		},
	)

	// 连接到SQLite数据库
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层数据库连接失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	fmt.Println("数据库连接成功！")
	return db, nil
}
