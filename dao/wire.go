package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewNoteDAO,
	wire.Bind(new(INoteDAO), new(*NoteDAO)),
)
