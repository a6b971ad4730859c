package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/xrs-b/MyLedger/internal/client/stats"
	"github.com/xrs-b/MyLedger/pkg/api"
)

func (c *Cli) runStats(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	startDate := fs.String("start", "", "Start date (YYYY-MM-DD)")
	endDate := fs.String("end", "", "End date (YYYY-MM-DD)")
	recordType := fs.String("type", "", "Filter by type: income or expense")
	period := fs.String("period", "", "Also show the trend: day, week, or month")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *period != "" && *period != api.TrendPeriodDay &&
		*period != api.TrendPeriodWeek && *period != api.TrendPeriodMonth {
		return fmt.Errorf("invalid period %q: use day, week, or month", *period)
	}

	if err := c.restore(ctx); err != nil {
		return err
	}

	c.stats.SetFilters(map[string]string{
		stats.FilterStartDate: *startDate,
		stats.FilterEndDate:   *endDate,
		stats.FilterType:      *recordType,
	})

	c.stats.LoadAll(ctx)
	if msg := c.stats.Err(); msg != "" {
		// Частичный сбой: печатаем, что есть, но предупреждаем
		c.io.Printf("Warning: %s\n", msg)
	}

	if summary := c.stats.Summary(); summary != nil {
		c.io.Println("=== Summary ===")
		c.io.Printf("Income:  %.2f (%d records)\n", summary.IncomeAmount, summary.IncomeCount)
		c.io.Printf("Expense: %.2f (%d records)\n", summary.ExpenseAmount, summary.ExpenseCount)
		c.io.Printf("Net:     %.2f\n", c.stats.NetAmount())
		c.io.Printf("Expense rate: %.1f%%\n", c.stats.ExpenseRate())
	}

	if categories := c.stats.Categories(); len(categories) > 0 {
		c.io.Println("")
		c.io.Println("=== By category ===")
		w := tabwriter.NewWriter(c.io, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tAMOUNT\tCOUNT\tSHARE")
		for _, cat := range categories {
			fmt.Fprintf(w, "%s\t%.2f\t%d\t%.1f%%\n", cat.Name, cat.Amount, cat.Count, cat.Percentage)
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	if projects := c.stats.Projects(); len(projects) > 0 {
		c.io.Println("")
		c.io.Println("=== By project ===")
		for _, p := range projects {
			c.io.Printf("  %s (%s): %.2f\n", p.ProjectTitle, p.Status, p.Total)
		}
	}

	if *period != "" {
		c.stats.FetchTrend(ctx, *period)
		if points := c.stats.Trend(); len(points) > 0 {
			c.io.Println("")
			c.io.Printf("=== Trend (%s) ===\n", *period)
			w := tabwriter.NewWriter(c.io, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PERIOD\tINCOME\tEXPENSE\tNET")
			for _, pt := range points {
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n", pt.Period, pt.Income, pt.Expense, pt.Net)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}
		}
	}

	return nil
}
