package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config 结构体定义了应用程序的所有配置项
// 它与 config.yaml 文件的结构完全对应
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Calculator CalculatorConfig `mapstructure:"calculator"`
}

// ServerConfig 定义了服务器相关的配置
type ServerConfig struct {
	Mode    string     `mapstructure:"mode"`
	Address string     `mapstructure:"address"`
	Cors    CorsConfig `mapstructure:"cors"`
}

// CorsConfig 定义了CORS相关的配置
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig 定义了数据库相关的配置
type DatabaseConfig struct {
	Sqlite SqliteConfig `mapstructure:"sqlite"`
}

// SqliteConfig 定义了SQLite数据库文件的配置
type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// CalculatorConfig 定义了伤害计算相关的默认参数。
// 核心存储层不依赖这些值，它们由调用计算接口的一方在未指定敌人属性时使用。
type CalculatorConfig struct {
	DefaultEnemyDef  int     `mapstructure:"defaultEnemyDef"`
	DefaultEnemyMdef float64 `mapstructure:"defaultEnemyMdef"`
}

// LoadConfig 函数负责查找、加载和解析配置文件
// 它会在指定的路径中查找名为 config.yaml 的文件，
// 找不到配置文件时回退到内置默认值
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 1. 设置配置文件名和类型
	v.SetConfigName("config") // 文件名 (不带扩展名)
	v.SetConfigType("yaml")   // 文件类型

	// 2. 添加配置文件搜索路径
	v.AddConfigPath("./config") // `config/config.yaml`
	v.AddConfigPath(".")        // `./config.yaml` (如果在根目录)

	// 3. 内置默认值
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.cors.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("database.sqlite.path", "damage_analyzer.db")
	v.SetDefault("calculator.defaultEnemyDef", 300)
	v.SetDefault("calculator.defaultEnemyMdef", 30)

	// 4. 设置环境变量支持
	// 允许通过环境变量覆盖配置，例如 SERVER_ADDRESS=:8888
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 5. 读取配置文件；文件不存在不是错误，使用默认值继续
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// 6. 将配置反序列化到结构体中
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
