package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"workout-catalog/config"
	"workout-catalog/internal/browse"
	"workout-catalog/internal/client"
	"workout-catalog/internal/query"
	"workout-catalog/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of the workout list",
	Long: `Print one page of the workout list.

The page is addressed like the browser's address bar: pass a shareable URL
with --url, or build one from --page, --category and --month. Without a
month the current month is used; a --url without startDate starts from the
current month on page 1.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		apiBase, _ := cmd.Flags().GetString("api")
		rawURL, _ := cmd.Flags().GetString("url")
		page, _ := cmd.Flags().GetInt("page")
		categories, _ := cmd.Flags().GetStringSlice("category")
		month, _ := cmd.Flags().GetString("month")
		jsonOut, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadBrowseConfig(cfgPath)
		if err != nil {
			return err
		}
		if apiBase != "" {
			cfg.APIBaseURL = apiBase
		}
		api, err := client.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
		if err != nil {
			return err
		}

		var loc *browse.MemoryLocation
		if rawURL != "" {
			if loc, err = browse.ParseLocation(rawURL); err != nil {
				return err
			}
		} else {
			// an explicit month keeps --page; the default month would reset it to 1
			if month == "" {
				month = time.Now().Format(query.MonthLayout)
			}
			q := query.Query{Page: page, Categories: categories, StartMonth: month}
			loc = browse.NewMemoryLocation(browse.RouteList, q.Values())
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log := logrus.New()
		log.SetOutput(cmd.ErrOrStderr())
		log.SetLevel(logrus.WarnLevel)

		ctrl := browse.New(browse.Options{Context: ctx, Location: loc, Fetcher: api, Logger: log})
		defer ctrl.Release()

		if err := ctrl.Refresh(ctx); err != nil {
			return fmt.Errorf("fetch workouts: %w", err)
		}

		st := ctrl.State()
		if jsonOut {
			return printListJSON(cmd.OutOrStdout(), st)
		}
		printListTable(cmd.OutOrStdout(), st)
		return nil
	},
}

func init() {
	listCmd.Flags().String("config", "", "browser config file (default ~/.config/workouts/browse.toml)")
	listCmd.Flags().String("api", "", "API base URL, overrides the config file")
	listCmd.Flags().String("url", "", "shareable list URL, e.g. /?page=2&category=c1,c3")
	listCmd.Flags().Int("page", 1, "page number")
	listCmd.Flags().StringSliceP("category", "c", nil, "category code filter (repeatable)")
	listCmd.Flags().String("month", "", "start month filter as YYYY-MM (default current month)")
	listCmd.Flags().Bool("json", false, "output as JSON")
}

func printListJSON(w io.Writer, st browse.State) error {
	payload := struct {
		URL        string           `json:"url"`
		Page       int              `json:"page"`
		TotalPages int              `json:"totalPages"`
		Total      int              `json:"total"`
		Workouts   []client.Workout `json:"workouts"`
	}{
		URL:        st.URL,
		Page:       st.Query.Page,
		TotalPages: st.TotalPages,
		Total:      st.Total,
		Workouts:   st.Workouts,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func printListTable(out io.Writer, st browse.State) {
	if len(st.Workouts) == 0 {
		fmt.Fprintln(out, "No workouts found for these filters.")
	} else {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCATEGORY\tSTART\tDESCRIPTION")
		for _, workout := range st.Workouts {
			desc := strings.ReplaceAll(ui.Excerpt(workout.Description), "\n", " ")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", workout.Name, workout.Category, workout.StartDate, desc)
		}
		w.Flush()
	}
	fmt.Fprintf(out, "\nPage %d of %d (%d workouts)\n", st.Query.Page, st.TotalPages, st.Total)
	fmt.Fprintln(out, st.URL)
}
