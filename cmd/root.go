package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvaneyck/posology/app"
	"github.com/mvaneyck/posology/config"
)

var (
	cfgPath   string
	dosages   string
	maxPeriod int
	jsonPath  string
	csvPath   string
	plotPath  string
)

var rootCmd = &cobra.Command{
	Use:   "posology",
	Short: "Compute optimal periodic dosing schedules",
	Long: "posology enumerates every periodic dosing schedule over a set of allowed\n" +
		"daily dosages and keeps, for each achievable mean dose, the schedule with\n" +
		"the lowest variability, breaking ties by shortest period.",
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVarP(&dosages, "dosages", "d", "", "possible daily dosages, in pills, separated by comma (default: 0,0.5,1,2)")
	rootCmd.PersistentFlags().IntVarP(&maxPeriod, "max-period", "p", 0, "max period, in days (default: 21)")
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "write the optimal schedules to a JSON file")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "write the optimal schedules to a CSV file")
	rootCmd.Flags().StringVar(&plotPath, "plot", "", "write a mean-vs-stddev scatter to an image file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig layers the optional config file, environment overrides and the
// command-line flags, flags winning.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dosages != "" {
		cfg.Dosages = dosages
	}
	if maxPeriod > 0 {
		cfg.MaxPeriod = maxPeriod
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if jsonPath != "" {
		cfg.Output.JSONPath = jsonPath
	}
	if csvPath != "" {
		cfg.Output.CSVPath = csvPath
	}
	if plotPath != "" {
		cfg.Output.PlotPath = plotPath
	}

	svc := app.New(cfg, cmd.OutOrStdout())
	return svc.Run(ctx)
}
