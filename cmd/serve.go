package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"workout-catalog/cmd/bootstrap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the workout catalog HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Initialize application with all dependencies
		app, err := bootstrap.New()
		if err != nil {
			logrus.Errorf("Failed to initialize application: %v", err)
			return err
		}

		if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
			if err := app.Migrate(false); err != nil {
				app.Close()
				return err
			}
		}

		return app.Run()
	},
}

func init() {
	serveCmd.Flags().Bool("migrate", false, "apply pending migrations before serving")
}
