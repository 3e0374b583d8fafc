package dao

import (
	"fmt"

	"gorm.io/gorm"
)

// Repo 通用仓储基类，持有共享的数据库连接池和模型对应的表名
type Repo[T any] struct {
	Db    *gorm.DB
	Table string
}

// NewRepo 通过 gorm schema 解析 T 的表名（TableName 或命名策略）
func NewRepo[T any](db *gorm.DB) Repo[T] {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err != nil {
		panic(fmt.Sprintf("解析模型 %T 失败: %v", *new(T), err))
	}
	return Repo[T]{Db: db, Table: stmt.Schema.Table}
}
