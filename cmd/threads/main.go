package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/deppfellow/threads-backend/cmd/threads/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Version      kong.VersionFlag
		Serve        commands.ServeCmd        `cmd:"" default:"1" help:"Start the HTTP API, webhook receiver and job workers."`
		Migrate      commands.MigrateCmd      `cmd:"" help:"Apply pending database migrations and exit."`
		EmailPreview commands.EmailPreviewCmd `cmd:"" name:"email-preview" help:"Render an email template with sample data."`
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("threads"),
		kong.Description("Threads backend: Clerk webhook receiver and thread API."),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Version: version})
	cmd.FatalIfErrorf(err)
}
