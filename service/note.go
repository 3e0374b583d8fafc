package service

import (
	"NoteAPI/dao"
	"NoteAPI/pkg/errs"
	"NoteAPI/pkg/log"
	"NoteAPI/pkg/utils"
	"NoteAPI/types"
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	ListNotes(ctx context.Context, opts types.FilterOptions) ([]*types.NoteResponse, error)
	CreateNote(ctx context.Context, req *types.CreateNoteRequest) (*types.NoteResponse, error)
	UpdateNote(ctx context.Context, id string, req *types.UpdateNoteRequest) (*types.NoteResponse, error)
}

type NoteService struct {
	NoteDAO dao.INoteDAO
}

// ListNotes 分页查询笔记
func (s *NoteService) ListNotes(ctx context.Context, opts types.FilterOptions) ([]*types.NoteResponse, error) {
	page, limit := Paginate(opts)
	offset := (page - 1) * limit

	notes, err := s.NoteDAO.List(ctx, limit, offset)
	if err != nil {
		return nil, persistenceError("list notes", err)
	}
	return utils.ConvertNoteModelsToDTO(notes), nil
}

// CreateNote 创建笔记，ID 为随机 UUID v4
func (s *NoteService) CreateNote(ctx context.Context, req *types.CreateNoteRequest) (*types.NoteResponse, error) {
	id := uuid.NewString()

	var content string
	if req.Content != nil {
		content = *req.Content
	}
	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	note, err := s.NoteDAO.Insert(ctx, id, req.Title, content, isPublished)
	if err != nil {
		return nil, persistenceError("create note", err)
	}
	return utils.ConvertNoteModelToDTO(note), nil
}

// UpdateNote 部分更新：字段为 nil 时保留原值，显式的 false 或空串会被写入
func (s *NoteService) UpdateNote(ctx context.Context, id string, req *types.UpdateNoteRequest) (*types.NoteResponse, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidArgument, fmt.Sprintf("Invalid UUID format: %v", err), err)
	}
	id = parsed.String()

	existing, err := s.NoteDAO.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(id, err)
	}

	title := existing.Title
	if req.Title != nil {
		title = *req.Title
	}
	content := existing.Content
	if req.Content != nil {
		content = *req.Content
	}
	isPublished := existing.IsPublished
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	note, err := s.NoteDAO.Update(ctx, id, title, content, isPublished)
	if err != nil {
		return nil, lookupError(id, err)
	}
	return utils.ConvertNoteModelToDTO(note), nil
}

// Paginate 补全分页默认值，返回 page 与 limit；page 过大导致 offset 溢出时回退默认页
func Paginate(opts types.FilterOptions) (int, int) {
	limit := types.DefaultPageSize
	if opts.Limit != nil && *opts.Limit >= 1 {
		limit = min(*opts.Limit, types.MaxPageSize)
	}
	page := types.DefaultPage
	if opts.Page != nil && *opts.Page >= 1 && *opts.Page-1 <= math.MaxInt/limit {
		page = *opts.Page
	}
	return page, limit
}

func lookupError(id string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.Wrap(errs.NotFound, fmt.Sprintf("Database error: note %s not found", id), err)
	}
	return persistenceError("lookup note", err)
}

func persistenceError(op string, err error) error {
	log.L.Error("note persistence failed", zap.String("op", op), zap.Error(err))
	return errs.Wrap(errs.PersistenceError, fmt.Sprintf("Database error: %v", err), err)
}
