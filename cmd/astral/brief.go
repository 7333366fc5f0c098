package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/astralhq/astral/internal/config"
	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/persist"
	"github.com/astralhq/astral/internal/state"
	"github.com/astralhq/astral/internal/types"
)

var (
	briefDBOverride string
	briefJSONOutput bool
)

var briefCmd = &cobra.Command{
	Use:   "brief",
	Short: "Print today's tasks, MITs, and coaching signals",
	Long:  "Read the local state and print the day view without running the server.",
	Args:  cobra.NoArgs,
	RunE:  runBrief,
}

func init() {
	briefCmd.Flags().StringVar(&briefDBOverride, "db", "",
		"Database path (overrides config and ASTRAL_DB_PATH)")
	briefCmd.Flags().BoolVar(&briefJSONOutput, "json", false,
		"Output in JSON format")
}

func runBrief(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, blob, cfg, err := openLocalStore(ctx)
	if err != nil {
		return err
	}
	defer blob.Close()

	type brief struct {
		Date         string       `json:"date"`
		Tasks        []types.Task `json:"tasks"`
		MITs         []types.Task `json:"mits"`
		OrphanTasks  []types.Task `json:"orphanTasks"`
		IgnoredGoals []types.Goal `json:"ignoredGoals"`
	}

	var b brief
	store.Read(func(st *types.AppState, now time.Time) {
		today := now.Format(time.DateOnly)
		b = brief{
			Date:         today,
			Tasks:        derive.TodayTasks(st, today),
			MITs:         derive.MITs(st, today),
			OrphanTasks:  derive.OrphanTasks(st),
			IgnoredGoals: derive.IgnoredGoals(st, now, cfg.Coach.IgnoredGoalDays),
		}
	})

	if briefJSONOutput {
		return printJSON(cmd.OutOrStdout(), b)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Brief for %s\n\n", b.Date)

	if len(b.Tasks) == 0 {
		fmt.Fprintln(out, "No tasks scheduled for today.")
	} else {
		w := newTabWriter(out)
		fmt.Fprintln(w, "STATUS\tPRIORITY\tTITLE")
		for _, t := range b.Tasks {
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.Status, t.Priority, marker(b.MITs, t.ID)+t.Title)
		}
		w.Flush()
	}

	if len(b.IgnoredGoals) > 0 {
		fmt.Fprintf(out, "\nGoals with no recent activity:\n")
		for _, g := range b.IgnoredGoals {
			fmt.Fprintf(out, "  - %s (%s %d)\n", g.Title, g.Quarter, g.Year)
		}
	}
	if len(b.OrphanTasks) > 0 {
		fmt.Fprintf(out, "\n%d task(s) not connected to any goal.\n", len(b.OrphanTasks))
	}

	return nil
}

// marker prefixes MIT entries with a star in the table view.
func marker(mits []types.Task, id string) string {
	for _, m := range mits {
		if m.ID == id {
			return "* "
		}
	}
	return ""
}

// openLocalStore opens the configured database directly, bypassing the
// server. Dev mode is implied for local commands, so only the database
// path matters.
func openLocalStore(ctx context.Context) (*state.Store, persist.Blob, *config.Config, error) {
	cfg, err := config.LoadLocal()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	path := briefDBOverride
	if path == "" {
		path = cfg.Database.Path
	}

	blob, err := persist.NewSQLiteBlob(path)
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := state.New(ctx, blob)
	if err != nil {
		blob.Close()
		return nil, nil, nil, err
	}
	return store, blob, cfg, nil
}

// printJSON marshals v to JSON and writes to the given writer.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTabWriter returns a configured tabwriter for aligned columns.
func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
