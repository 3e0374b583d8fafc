package types

import (
	"time"
)

// Pagination 分页常量
const (
	DefaultPage     int = 1   // 默认页码
	DefaultPageSize int = 10  // 默认每页数量
	MaxPageSize     int = 100 // 每页上限
)

// FilterOptions 列表查询参数，page 从 1 开始
type FilterOptions struct {
	Page  *int
	Limit *int
}

// CreateNoteRequest 创建笔记请求
type CreateNoteRequest struct {
	Title       string  `json:"title" binding:"required"`
	Content     *string `json:"content" binding:"required"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

// UpdateNoteRequest 更新笔记请求，未传的字段保持原值
type UpdateNoteRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	IsPublished *bool   `json:"is_published"`
}

// NoteResponse 对外返回的笔记结构，与表结构解耦
type NoteResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	IsPublished bool       `json:"is_published"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
