package main

import (
	"github.com/spf13/cobra"

	"workout-catalog/cmd/bootstrap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		down, _ := cmd.Flags().GetBool("down")

		app, err := bootstrap.New()
		if err != nil {
			return err
		}
		defer app.Close()

		return app.Migrate(down)
	},
}

func init() {
	migrateCmd.Flags().Bool("down", false, "revert every migration instead")
}
