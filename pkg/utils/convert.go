package utils

import (
	"NoteAPI/models"
	"NoteAPI/types"
)

// ConvertNoteModelToDTO 表结构转为对外返回结构
func ConvertNoteModelToDTO(note *models.Note) *types.NoteResponse {
	return &types.NoteResponse{
		ID:          note.ID,
		Title:       note.Title,
		Content:     note.Content,
		IsPublished: note.IsPublished,
		CreatedAt:   note.CreatedAt,
		UpdatedAt:   note.UpdatedAt,
	}
}

// ConvertNoteModelsToDTO 批量转换，空输入返回空切片
func ConvertNoteModelsToDTO(notes []*models.Note) []*types.NoteResponse {
	res := make([]*types.NoteResponse, 0, len(notes))
	for _, note := range notes {
		res = append(res, ConvertNoteModelToDTO(note))
	}
	return res
}
