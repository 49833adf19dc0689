package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openathletics/flextime/app"
	"github.com/openathletics/flextime/config"
	"github.com/openathletics/flextime/core/model"
	"github.com/openathletics/flextime/infra/logger"
)

var detectSchedules string

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Run a venue conflict detection pass over the schedules",
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectSchedules, "schedules", "", "schedules JSON file (overrides config)")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if detectSchedules != "" {
		cfg.Resolvers.SchedulesFile = detectSchedules
	}
	if cfg.Resolvers.SchedulesFile == "" {
		return fmt.Errorf("no schedules file configured; pass --schedules")
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("detect-command").Errorf("service close: %v", err)
		}
	}()

	report, err := svc.Detect(ctx)
	if err != nil {
		return err
	}

	counts := map[model.ConflictType]int{}
	for _, c := range report.Conflicts {
		counts[c.Type]++
	}
	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(errOut, "%s %d\n", color.RedString("hard conflicts:"), counts[model.HardConflict])
	fmt.Fprintf(errOut, "%s %d\n", color.YellowString("soft conflicts:"), counts[model.SoftConflict])
	fmt.Fprintf(errOut, "%s %d\n", color.GreenString("doubleheader opportunities:"), counts[model.DoubleheaderOpportunity])

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
