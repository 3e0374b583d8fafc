package models

import (
	"time"
)

// Note 笔记表，id 为 UUID 字符串，时间戳由数据库生成
type Note struct {
	ID          string     `gorm:"column:id;type:text;primaryKey" json:"id"`
	Title       string     `gorm:"column:title;type:text;not null" json:"title"`
	Content     string     `gorm:"column:content;type:text;not null" json:"content"`
	IsPublished bool       `gorm:"column:is_published;not null;default:false" json:"is_published"`
	CreatedAt   *time.Time `gorm:"column:created_at;type:timestamptz;default:now()" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at;type:timestamptz;default:now()" json:"updated_at"`
}

func (n Note) TableName() string {
	return "notes"
}
