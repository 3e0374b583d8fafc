package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Server   *Server   `json:"server" yaml:"server"`
	Database *Database `json:"database" yaml:"database"`
	Log      *Log      `json:"log" yaml:"log"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New 读取 yaml 配置；文件不存在时使用默认值，环境变量优先级最高
func New(filename string) *Config {
	conf := Default()

	content, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		panic(err)
	default:
		if err := yaml.Unmarshal(content, conf); err != nil {
			panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
		}
	}

	conf.applyEnv()
	return conf
}

// Default 默认配置
func Default() *Config {
	return &Config{
		App:    &App{Env: "dev"},
		Server: &Server{Http: 8080},
		Database: &Database{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 1800,
		},
		Log: &Log{Level: "info"},
	}
}

func (c *Config) applyEnv() {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		c.Database.Dsn = dsn
	}
	if port, err := strconv.Atoi(os.Getenv("HTTP_PORT")); err == nil && port > 0 {
		c.Server.Http = port
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
