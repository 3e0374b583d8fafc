//go:build wireinject
// +build wireinject

package main

import (
	"NoteAPI/config"
	"NoteAPI/dao"
	"NoteAPI/handler"
	"NoteAPI/pkg/database"
	"NoteAPI/pkg/server"
	"NoteAPI/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		database.NewDB,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Common), "*"),
		wire.Struct(new(handler.Note), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil, nil, nil
}
