package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/edunews/news-site/internal/newssite"
)

func New(logger *slog.Logger, manager *newssite.Manager) *zenrpc.Server {
	rpcService := NewNewsService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("news", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "news-site", nil))

	return rpcServer
}
