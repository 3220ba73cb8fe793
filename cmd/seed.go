package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"workout-catalog/cmd/bootstrap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert generated workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")

		app, err := bootstrap.New()
		if err != nil {
			return err
		}
		defer app.Close()

		total, err := app.Seed(cmd.Context(), count)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d workouts, %d in catalog\n", count, total)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntP("count", "n", 50, "number of workouts to generate")
}
