package dao

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var noteRowColumns = []string{"id", "title", "content", "is_published", "created_at", "updated_at"}

func newMockNoteDAO(t *testing.T) (*NoteDAO, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewNoteDAO(db), mock
}

type draftNote struct {
	ID string
}

func TestNewRepo_ResolvesTableFromModel(t *testing.T) {
	d, _ := newMockNoteDAO(t)
	assert.Equal(t, "notes", d.Table)

	drafts := NewRepo[draftNote](d.Db)
	assert.Equal(t, "draft_notes", drafts.Table)
}

func TestNoteDAO_List(t *testing.T) {
	d, mock := newMockNoteDAO(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM notes ORDER BY created_at DESC, id LIMIT $1 OFFSET $2")).
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows(noteRowColumns).
			AddRow("a", "t1", "c1", true, now, now).
			AddRow("b", "t2", "c2", false, now, now))

	notes, err := d.List(context.Background(), 5, 5)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].ID)
	assert.True(t, notes[0].IsPublished)
	assert.Equal(t, "c2", notes[1].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteDAO_ListEmpty(t *testing.T) {
	d, mock := newMockNoteDAO(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM notes")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(noteRowColumns))

	notes, err := d.List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.NotNil(t, notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteDAO_Insert(t *testing.T) {
	d, mock := newMockNoteDAO(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notes (id, title, content, is_published) VALUES ($1, $2, $3, $4) RETURNING")).
		WithArgs("id-1", "title", "content", false).
		WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow("id-1", "title", "content", false, now, now))

	note, err := d.Insert(context.Background(), "id-1", "title", "content", false)
	require.NoError(t, err)
	assert.Equal(t, "id-1", note.ID)
	assert.Equal(t, "title", note.Title)
	require.NotNil(t, note.CreatedAt)
	assert.True(t, now.Equal(*note.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteDAO_GetByID(t *testing.T) {
	d, mock := newMockNoteDAO(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM notes WHERE id = $1")).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow("id-1", "t", "c", true, now, now))

	note, err := d.GetByID(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "t", note.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteDAO_GetByIDNotFound(t *testing.T) {
	d, mock := newMockNoteDAO(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM notes WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(noteRowColumns))

	_, err := d.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteDAO_Update(t *testing.T) {
	d, mock := newMockNoteDAO(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE notes SET title = $1, content = $2, is_published = $3, updated_at = NOW() WHERE id = $4 RETURNING")).
		WithArgs("new", "body", true, "id-1").
		WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow("id-1", "new", "body", true, now, now))

	note, err := d.Update(context.Background(), "id-1", "new", "body", true)
	require.NoError(t, err)
	assert.Equal(t, "new", note.Title)
	assert.True(t, note.IsPublished)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteDAO_UpdateNotFound(t *testing.T) {
	d, mock := newMockNoteDAO(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE notes SET")).
		WithArgs("t", "c", false, "missing").
		WillReturnRows(sqlmock.NewRows(noteRowColumns))

	_, err := d.Update(context.Background(), "missing", "t", "c", false)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteDAO_QueryError(t *testing.T) {
	d, mock := newMockNoteDAO(t)
	dbErr := errors.New("connection refused")

	mock.ExpectQuery(regexp.QuoteMeta("FROM notes")).WillReturnError(dbErr)

	_, err := d.List(context.Background(), 10, 0)
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
