// Package daotest provides an in-memory dao.INoteDAO for service and handler tests.
package daotest

import (
	"NoteAPI/dao"
	"NoteAPI/models"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

var _ dao.INoteDAO = (*MemoryNoteDAO)(nil)

// ListCall records the arguments of a List invocation.
type ListCall struct {
	Limit  int
	Offset int
}

// MemoryNoteDAO keeps notes in a map and records every call it receives.
// Setting Err makes every operation fail with it.
type MemoryNoteDAO struct {
	mu    sync.Mutex
	notes map[string]*models.Note
	now   func() time.Time

	Err       error
	ListCalls []ListCall
	Calls     int
}

func NewMemoryNoteDAO() *MemoryNoteDAO {
	return &MemoryNoteDAO{
		notes: make(map[string]*models.Note),
		now:   time.Now,
	}
}

func (m *MemoryNoteDAO) List(_ context.Context, limit, offset int) ([]*models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.ListCalls = append(m.ListCalls, ListCall{Limit: limit, Offset: offset})
	if m.Err != nil {
		return nil, m.Err
	}
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("LIMIT/OFFSET must not be negative: limit=%d offset=%d", limit, offset)
	}

	all := make([]*models.Note, 0, len(m.notes))
	for _, n := range m.notes {
		all = append(all, clone(n))
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(*all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.After(*all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []*models.Note{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *MemoryNoteDAO) Insert(_ context.Context, id, title, content string, isPublished bool) (*models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}

	now := m.now()
	n := &models.Note{
		ID:          id,
		Title:       title,
		Content:     content,
		IsPublished: isPublished,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}
	m.notes[id] = n
	return clone(n), nil
}

func (m *MemoryNoteDAO) GetByID(_ context.Context, id string) (*models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}

	n, ok := m.notes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return clone(n), nil
}

func (m *MemoryNoteDAO) Update(_ context.Context, id, title, content string, isPublished bool) (*models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}

	n, ok := m.notes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	now := m.now()
	n.Title = title
	n.Content = content
	n.IsPublished = isPublished
	n.UpdatedAt = &now
	return clone(n), nil
}

// Len returns the number of stored notes.
func (m *MemoryNoteDAO) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notes)
}

func clone(n *models.Note) *models.Note {
	c := *n
	return &c
}
