//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"gocms/internal/auth"
	"gocms/internal/config"
	"gocms/internal/content"
	"gocms/internal/dbmysql"
	"gocms/internal/storage"
	"gocms/internal/upload"
)

// This is just a declaration — wire generates the real body in wire_gen.go.
func InitializeApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		ProvideLogger,
		ProvideTokenService,
		dbmysql.NewMySQL,
		content.NewRepository,
		content.NewService,
		content.NewHandler,
		auth.NewService,
		auth.NewHandler,
		ProvideS3Store,
		wire.Bind(new(upload.Presigner), new(*storage.S3Store)),
		upload.NewService,
		upload.NewHandler,
		ProvideRouter,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
