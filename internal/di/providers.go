package di

import (
	"context"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gocms/internal/auth"
	"gocms/internal/common"
	"gocms/internal/config"
	"gocms/internal/content"
	"gocms/internal/storage"
	"gocms/internal/upload"
)

// Application bundles everything main needs to serve requests.
type Application struct {
	Config *config.Config
	Router *mux.Router
	Log    *zap.SugaredLogger
}

func ProvideLogger(cfg *config.Config) (*zap.SugaredLogger, error) {
	return common.NewLogger(cfg.Server.Environment)
}

func ProvideTokenService(cfg *config.Config) *common.TokenService {
	return common.NewTokenService(cfg.Auth.JWTSecret)
}

func ProvideS3Store(ctx context.Context, cfg *config.Config) (*storage.S3Store, error) {
	return storage.NewS3Store(ctx, cfg)
}

func ProvideRouter(
	contentHandler *content.Handler,
	authHandler *auth.Handler,
	uploadHandler *upload.Handler,
	tokens *common.TokenService,
	log *zap.SugaredLogger,
) *mux.Router {
	r := mux.NewRouter()
	requireAuth := common.AuthMiddleware(tokens, log)

	authHandler.Register(r)
	uploadHandler.Register(r, requireAuth)
	contentHandler.Register(r, requireAuth)

	return r
}
