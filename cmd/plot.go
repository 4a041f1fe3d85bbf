package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvaneyck/posology/app"
	"github.com/mvaneyck/posology/infra/plot"
)

var plotCmd = &cobra.Command{
	Use:   "plot <output-image>",
	Short: "Render the optimal schedules scatter without the text report",
	Args:  cobra.ExactArgs(1),
	RunE:  renderPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)
}

func renderPlot(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc := app.New(cfg, io.Discard)
	_, optimal, _, err := svc.Solve(ctx)
	if err != nil {
		return err
	}
	return plot.Render(args[0], optimal)
}
