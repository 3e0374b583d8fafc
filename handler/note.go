package handler

import (
	"NoteAPI/pkg/context"
	"NoteAPI/pkg/errs"
	"NoteAPI/pkg/response"
	"NoteAPI/service"
	"NoteAPI/types"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Note struct {
	NoteService service.INoteService
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/notes")
	g.GET("", context.Wrap(n.ListNotes))
	g.POST("", context.Wrap(n.CreateNote))
	g.PUT("/:id", context.Wrap(n.UpdateNote))
}

// ListNotes 分页获取笔记列表，page/limit 缺失或非法时使用默认值
func (n *Note) ListNotes(c *gin.Context) error {
	opts := types.FilterOptions{
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	}

	notes, err := n.NoteService.ListNotes(c.Request.Context(), opts)
	if err != nil {
		return err
	}

	response.Success(c, "Notes retrieved successfully", notes)
	return nil
}

// CreateNote 创建笔记
func (n *Note) CreateNote(c *gin.Context) error {
	var req types.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Wrap(errs.InvalidArgument, "Invalid request payload: "+err.Error(), err)
	}

	note, err := n.NoteService.CreateNote(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, "Note created successfully", note)
	return nil
}

// UpdateNote 按 ID 部分更新笔记
func (n *Note) UpdateNote(c *gin.Context) error {
	var req types.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Wrap(errs.InvalidArgument, "Invalid request payload: "+err.Error(), err)
	}

	note, err := n.NoteService.UpdateNote(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}

	response.Success(c, "Note updated successfully", note)
	return nil
}

func queryInt(c *gin.Context, key string) *int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return nil
	}
	return &v
}
