package server

import (
	"NoteAPI/handler"
)

type Handlers struct {
	Common *handler.Common
	Note   *handler.Note
}
