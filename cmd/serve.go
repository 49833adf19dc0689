package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openathletics/flextime/app"
	"github.com/openathletics/flextime/config"
	"github.com/openathletics/flextime/infra/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the service with its metrics endpoint until interrupted",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("serve-command").Errorf("service close: %v", err)
		}
	}()

	svc.Start(ctx)
	<-ctx.Done()
	return nil
}
