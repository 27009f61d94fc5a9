package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Urvashi-146/ThinkHire/internal/client"
	"github.com/Urvashi-146/ThinkHire/internal/metrics"
)

const healthTimeout = 10 * time.Second

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the analysis service is reachable",
	Long: `Check that the analysis service answers at the configured backend URL.

Examples:
  thinkhire health
  thinkhire health --backend http://localhost:5000`,
	Args: cobra.NoArgs,
	RunE: runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	c := newClient()

	var status *client.HealthStatus
	err := collector.Time(metrics.OpHealth, func() error {
		var err error
		status, err = c.Health(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("backend %s unreachable: %w", c.BaseURL(), err)
	}

	msg := status.Status
	if msg == "" {
		msg = "ok"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Backend %s is up (%s)\n", c.BaseURL(), msg)
	return nil
}
