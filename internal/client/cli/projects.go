package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/xrs-b/MyLedger/internal/client/store"
)

func (c *Cli) runProjects(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "list":
		return c.runProjectsList(ctx, args)
	case "complete":
		return c.runProjectTransition(ctx, args, "complete")
	case "reopen":
		return c.runProjectTransition(ctx, args, "reopen")
	default:
		return fmt.Errorf("unknown projects subcommand: %s. Use: list, complete, or reopen", sub)
	}
}

func (c *Cli) runProjectsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("projects list", flag.ContinueOnError)
	status := fs.String("status", "", "Filter by status: ongoing or completed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.restore(ctx); err != nil {
		return err
	}

	c.projects.SetFilters(map[string]string{store.FilterStatus: *status})
	if res := c.projects.Refresh(ctx); !res.Success {
		return fmt.Errorf("failed to load projects: %s", res.Message)
	}

	items := c.projects.Items()
	if len(items) == 0 {
		c.io.Println("No projects found.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tBUDGET\tSPENT\tPERIOD")
	for _, p := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.2f\t%s..%s\n",
			p.ID, p.Title, p.Status, p.Budget, p.TotalExpense, p.StartDate, p.EndDate)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func (c *Cli) runProjectTransition(ctx context.Context, args []string, action string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing project id. Usage: myledger projects %s <id>", action)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid project id %q", args[0])
	}

	if err := c.restore(ctx); err != nil {
		return err
	}

	var res store.Result
	if action == "complete" {
		res = c.projects.Complete(ctx, id)
	} else {
		res = c.projects.Reopen(ctx, id)
	}
	if !res.Success {
		return fmt.Errorf("failed to %s project: %s", action, res.Message)
	}
	c.io.Printf("✓ Project #%d %sd.\n", id, action)
	return nil
}
