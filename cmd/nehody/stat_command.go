package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"nehody"
)

func newStatCommand(ctx *commandContext) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "stat [region...]",
		Short: "Aggregate accident statistics over the merged regional tables",
		Long: `Aggregate accident statistics over the merged regional tables.

With no region arguments, all 14 regions are merged. Available kinds:

  counts    accidents per year per region
  conseq    deaths and injuries per region
  damage    accidents per damage bin and main cause per region
  surface   accidents per road-surface condition per region`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var render func(*nehody.Table) string
			switch kind {
			case "counts":
				render = renderCounts
			case "conseq":
				render = renderConsequences
			case "damage":
				render = renderDamage
			case "surface":
				render = renderSurface
			default:
				return fmt.Errorf("stat: unsupported kind %q", kind)
			}

			catalog, err := ctx.ensureCatalog()
			if err != nil {
				return err
			}
			_, merged, err := catalog.GetList(args...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render(merged))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "counts", "Aggregation kind: counts, conseq, damage or surface")
	return cmd
}

func renderCounts(t *nehody.Table) string {
	counts := nehody.CountByYearRegion(t)

	years := make([]string, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Strings(years)

	regionSet := make(map[string]bool)
	for _, byRegion := range counts {
		for region := range byRegion {
			regionSet[region] = true
		}
	}
	regions := make([]string, 0, len(regionSet))
	for region := range regionSet {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	headers := append([]string{"Year"}, regions...)
	rows := make([][]string, 0, len(years))
	numeric := make([]int, 0, len(regions))
	for i := range regions {
		numeric = append(numeric, i+1)
	}
	for _, year := range years {
		row := []string{year}
		for _, region := range regions {
			row = append(row, strconv.Itoa(counts[year][region]))
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows, numeric...)
}

func renderConsequences(t *nehody.Table) string {
	rows := make([][]string, 0, 14)
	for _, rc := range nehody.Consequences(t) {
		rows = append(rows, []string{
			rc.Region,
			strconv.Itoa(rc.Deaths),
			strconv.Itoa(rc.Severe),
			strconv.Itoa(rc.Light),
			strconv.Itoa(rc.Total),
		})
	}
	return renderTable([]string{"Region", "Deaths", "Severe", "Light", "Total"}, rows, 1, 2, 3, 4)
}

func renderDamage(t *nehody.Table) string {
	rows := make([][]string, 0, 64)
	for _, cell := range nehody.DamageBreakdown(t) {
		rows = append(rows, []string{cell.Region, cell.Damage, cell.Cause, strconv.Itoa(cell.Count)})
	}
	return renderTable([]string{"Region", "Damage [k CZK]", "Cause", "Count"}, rows, 3)
}

func renderSurface(t *nehody.Table) string {
	rows := make([][]string, 0, 64)
	for _, sc := range nehody.SurfaceCounts(t) {
		rows = append(rows, []string{sc.Region, sc.Surface, strconv.Itoa(sc.Count)})
	}
	return renderTable([]string{"Region", "Surface", "Count"}, rows, 2)
}
