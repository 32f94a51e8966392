package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/regression-io/claude-config-plugins/internal/consts"
	"github.com/regression-io/claude-config-plugins/internal/pkg/logs"
)

func main() {
	cmd := &cli.Command{
		Name:    "convert-templates",
		Usage:   "Convert claude-config templates into Claude plugins",
		Version: consts.VERSION,
		Flags:   globalFlags(),
		Action:  convertHwd.run,
		Commands: []*cli.Command{
			convertHwd.cmd(),
			listHwd.cmd(),
			verifyHwd.cmd(),
			initHwd.cmd(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logs.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}
