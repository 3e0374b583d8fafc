package config

import "time"

// Database Postgres 连接配置
type Database struct {
	Dsn             string `json:"dsn" yaml:"dsn"`
	MaxOpenConns    int    `json:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns    int    `json:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLifetime int    `json:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒
}

func (d *Database) Lifetime() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}
