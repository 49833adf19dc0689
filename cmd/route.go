package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openathletics/flextime/app"
	"github.com/openathletics/flextime/config"
	"github.com/openathletics/flextime/infra/logger"
)

var (
	routePrompt       string
	routeSystemPrompt string
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Route a scheduling request to the matching resolvers",
	RunE:  runRoute,
}

func init() {
	routeCmd.Flags().StringVarP(&routePrompt, "prompt", "p", "", "request to route")
	routeCmd.Flags().StringVar(&routeSystemPrompt, "system-prompt", "", "context prepended to every resolver invocation")
	_ = routeCmd.MarkFlagRequired("prompt")
	rootCmd.AddCommand(routeCmd)
}

// Step-level resolver failures are part of the routed output, not process
// failures; the command exits non-zero only on unrecoverable input errors.
func runRoute(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if routeSystemPrompt != "" {
		cfg.Router.SystemPrompt = routeSystemPrompt
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("route-command").Errorf("service close: %v", err)
		}
	}()
	svc.Start(ctx)

	out, err := svc.Route(ctx, routePrompt)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
