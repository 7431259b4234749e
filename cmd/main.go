package main

import (
	"os"

	"github.com/spf13/cobra"

	"parking_kiosk/internal/config"
)

// @title           Parking Kiosk API
// @version         1.0
// @description     Live parking-lot board, history, revenue and barrier control for the kiosk screens.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "parking-kiosk",
		Short: "Parking-lot monitoring kiosk",
		Long: `parking-kiosk mirrors the parking backend's live events onto kiosk screens:
gate activity, slot occupancy, air quality, history, revenue and manual barrier control.`,
		SilenceUsage: true,
	}
	config.AddFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCmd(),
		newHistoryCmd(),
	)
	return root
}
