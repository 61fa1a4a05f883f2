package cmd

import (
	"github.com/urfave/cli"

	"github.com/prism-render/prism/log"
	"github.com/prism-render/prism/web/server"
)

// Serve starts the HTTP preview server.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	srv := server.New(log.New("web"))
	addr := ctx.String("listen")
	logger.Noticef("preview server listening on %s", addr)
	return srv.Start(addr)
}
