package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/sahelmedia/newsroom/internal/newsroom"
)

func New(logger *slog.Logger, manager *newsroom.Manager) *zenrpc.Server {
	rpcService := NewEditorialService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("editorial", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "newsroom", nil))

	return rpcServer
}
