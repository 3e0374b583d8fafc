package dao

import (
	"NoteAPI/models"
	"context"

	"gorm.io/gorm"
)

var _ INoteDAO = (*NoteDAO)(nil)

type INoteDAO interface {
	List(ctx context.Context, limit, offset int) ([]*models.Note, error)
	Insert(ctx context.Context, id, title, content string, isPublished bool) (*models.Note, error)
	GetByID(ctx context.Context, id string) (*models.Note, error)
	Update(ctx context.Context, id, title, content string, isPublished bool) (*models.Note, error)
}

const noteColumns = "id, title, content, is_published, created_at, updated_at"

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// List 分页查询笔记，按创建时间倒序
func (d *NoteDAO) List(ctx context.Context, limit, offset int) ([]*models.Note, error) {
	notes := make([]*models.Note, 0, max(limit, 0))
	err := d.Db.WithContext(ctx).
		Raw("SELECT "+noteColumns+" FROM "+d.Table+" ORDER BY created_at DESC, id LIMIT ? OFFSET ?", limit, offset).
		Scan(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Insert 插入笔记并返回落库后的完整记录
func (d *NoteDAO) Insert(ctx context.Context, id, title, content string, isPublished bool) (*models.Note, error) {
	var note models.Note
	tx := d.Db.WithContext(ctx).
		Raw("INSERT INTO "+d.Table+" (id, title, content, is_published) VALUES (?, ?, ?, ?) RETURNING "+noteColumns,
			id, title, content, isPublished).
		Scan(&note)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &note, nil
}

// GetByID 按 ID 查询，不存在时返回 gorm.ErrRecordNotFound
func (d *NoteDAO) GetByID(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	tx := d.Db.WithContext(ctx).
		Raw("SELECT "+noteColumns+" FROM "+d.Table+" WHERE id = ?", id).
		Scan(&note)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &note, nil
}

// Update 覆盖四个字段并刷新 updated_at
func (d *NoteDAO) Update(ctx context.Context, id, title, content string, isPublished bool) (*models.Note, error) {
	var note models.Note
	tx := d.Db.WithContext(ctx).
		Raw("UPDATE "+d.Table+" SET title = ?, content = ?, is_published = ?, updated_at = NOW() WHERE id = ? RETURNING "+noteColumns,
			title, content, isPublished, id).
		Scan(&note)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &note, nil
}
