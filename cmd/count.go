package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvaneyck/posology/core/compose"
	"github.com/mvaneyck/posology/core/dose"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print how many schedules a run would enumerate, without running it",
	RunE:  countSchedules,
}

func init() {
	rootCmd.AddCommand(countCmd)
}

func countSchedules(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doses, err := dose.ParseSet(cfg.Dosages)
	if err != nil {
		return err
	}
	total := compose.TotalCount(len(doses), cfg.MaxPeriod)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\n", total)
	return err
}
