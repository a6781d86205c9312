package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/devocrazia/internal/devocrazia"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const articlesNamespace = "articles"

func New(logger *slog.Logger, manager *devocrazia.Manager) *zenrpc.Server {
	rpcService := NewArticleService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(articlesNamespace, rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "devocrazia", nil))

	return rpcServer
}
