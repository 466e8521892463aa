package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ledgerline/finhealth/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect persisted score runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List persisted score runs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		companyID, _ := cmd.Flags().GetString("company")
		industry, _ := cmd.Flags().GetString("industry")
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		runs, err := st.ListRuns(ctx, store.RunFilter{
			CompanyID: companyID,
			Industry:  industry,
			Limit:     limit,
		})
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs found.")
			return nil
		}

		fmt.Printf("%-36s %-15s %-18s %-6s %7s  %s\n", "ID", "Company", "Industry", "Size", "Score", "Created")
		fmt.Println(strings.Repeat("-", 100))
		for _, run := range runs {
			fmt.Printf("%-36s %-15s %-18s %-6s %7.1f  %s\n",
				run.ID, run.Company.ID, run.Company.Industry, run.Company.Size,
				run.Result.Score, run.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print one score run as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		run, err := st.GetRun(ctx, args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	},
}

func init() {
	f := runsListCmd.Flags()
	f.String("company", "", "filter by company identifier")
	f.String("industry", "", "filter by industry")
	f.Int("limit", 0, "maximum number of runs (0=store default)")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}
