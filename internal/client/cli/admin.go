package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/xrs-b/MyLedger/pkg/api"
)

func (c *Cli) runAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing admin subcommand. Use: stats, users, activate, or deactivate")
	}

	if err := c.restore(ctx); err != nil {
		return err
	}
	// Серверная проверка все равно есть; это только ранний отказ
	if !c.session.IsAdmin() {
		return fmt.Errorf("admin access required")
	}

	switch args[0] {
	case "stats":
		return c.runAdminStats(ctx)
	case "users":
		return c.runAdminUsers(ctx)
	case "activate":
		return c.runAdminSetActive(ctx, args[1:], true)
	case "deactivate":
		return c.runAdminSetActive(ctx, args[1:], false)
	default:
		return fmt.Errorf("unknown admin subcommand: %s. Use: stats, users, activate, or deactivate", args[0])
	}
}

func (c *Cli) runAdminStats(ctx context.Context) error {
	res := c.admin.FetchStats(ctx)
	if !res.Success {
		return fmt.Errorf("failed to load admin stats: %s", res.Message)
	}
	c.io.Println("=== Server totals ===")
	c.io.Printf("Users:      %d\n", res.Data.UserCount)
	c.io.Printf("Records:    %d\n", res.Data.RecordCount)
	c.io.Printf("Projects:   %d\n", res.Data.ProjectCount)
	c.io.Printf("Categories: %d\n", res.Data.CategoryCount)
	return nil
}

func (c *Cli) runAdminUsers(ctx context.Context) error {
	if res := c.admin.Users.Refresh(ctx); !res.Success {
		return fmt.Errorf("failed to load users: %s", res.Message)
	}
	for c.admin.Users.HasMore() {
		if res := c.admin.Users.LoadMore(ctx); !res.Success {
			return fmt.Errorf("failed to load users: %s", res.Message)
		}
	}

	users := c.admin.Users.Items()
	if len(users) == 0 {
		c.io.Println("No users found.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tADMIN\tACTIVE\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%v\t%v\t%s\n", u.ID, u.Username, u.IsAdmin, u.IsActive, u.CreatedAt)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func (c *Cli) runAdminSetActive(ctx context.Context, args []string, active bool) error {
	if len(args) == 0 {
		return fmt.Errorf("missing user id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}

	res := c.admin.UpdateUser(ctx, id, api.UserUpdate{IsActive: &active})
	if !res.Success {
		return fmt.Errorf("failed to update user: %s", res.Message)
	}
	state := "inactive"
	if active {
		state = "active"
	}
	c.io.Printf("✓ User %s is now %s.\n", res.Data.Username, state)
	return nil
}
