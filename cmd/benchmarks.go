package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerline/finhealth/internal/benchmark"
	"github.com/ledgerline/finhealth/internal/model"
)

var benchmarksCmd = &cobra.Command{
	Use:   "benchmarks",
	Short: "List the financial ratio catalog and reference benchmarks",
	RunE: func(cmd *cobra.Command, _ []string) error {
		categoryRaw, _ := cmd.Flags().GetString("category")
		industry, _ := cmd.Flags().GetString("industry")
		sizeRaw, _ := cmd.Flags().GetString("size")

		size, err := model.ParseSizeTier(sizeRaw)
		if err != nil {
			return err
		}

		var filter *model.Category
		if categoryRaw != "" {
			cat, err := model.ParseCategory(categoryRaw)
			if err != nil {
				return err
			}
			filter = &cat
		}

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		if industry == "" {
			industry = benchmark.IndustryDefault
		}

		fmt.Printf("%-28s %-15s %9s %9s  %s\n", "Ratio", "Category", "Benchmark", "Warning", "Formula")
		fmt.Println(strings.Repeat("-", 110))
		for _, cat := range model.Categories() {
			if filter != nil && *filter != cat {
				continue
			}
			names := catalog.RatiosInCategory(cat)
			sort.Strings(names)
			for _, name := range names {
				def, _ := catalog.Ratio(name)
				bench, _ := catalog.BenchmarkFor(def, industry, size)
				warn, _ := catalog.WarningFor(def, industry)
				fmt.Printf("%-28s %-15s %9.2f %9.2f  %s\n", def.Name, def.Category, bench, warn, def.Formula)
			}
		}
		return nil
	},
}

func init() {
	f := benchmarksCmd.Flags()
	f.String("category", "", "only show one category")
	f.String("industry", "", "industry to resolve benchmarks for (default: catalog default)")
	f.String("size", "small", "size tier to resolve benchmarks for")

	rootCmd.AddCommand(benchmarksCmd)
}
