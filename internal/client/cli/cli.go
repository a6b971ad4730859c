// Package cli реализует терминальные команды клиента поверх
// сессии, коллекций и агрегатора статистики.
package cli

import (
	"context"
	"fmt"

	"github.com/xrs-b/MyLedger/internal/client/iocli"
	"github.com/xrs-b/MyLedger/internal/client/session"
	"github.com/xrs-b/MyLedger/internal/client/stats"
	"github.com/xrs-b/MyLedger/internal/client/store"
)

type Cli struct {
	io         iocli.IO
	session    *session.Session
	records    *store.Records
	projects   *store.Projects
	categories *store.Categories
	admin      *store.Admin
	stats      *stats.Aggregator
}

func New(
	io iocli.IO,
	sess *session.Session,
	records *store.Records,
	projects *store.Projects,
	categories *store.Categories,
	admin *store.Admin,
	aggregator *stats.Aggregator,
) *Cli {
	return &Cli{
		io:         io,
		session:    sess,
		records:    records,
		projects:   projects,
		categories: categories,
		admin:      admin,
		stats:      aggregator,
	}
}

// Run выполняет одну команду. Незнакомая команда — ошибка,
// main печатает usage сам.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "records":
		return c.runRecords(ctx, args)
	case "projects":
		return c.runProjects(ctx, args)
	case "categories":
		return c.runCategories(ctx)
	case "stats":
		return c.runStats(ctx, args)
	case "admin":
		return c.runAdmin(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// restore поднимает сохранённую сессию и требует, чтобы она была.
func (c *Cli) restore(ctx context.Context) error {
	c.session.Restore(ctx)
	if !c.session.IsAuthenticated(ctx) {
		return fmt.Errorf("not authenticated. Please run 'myledger login' first")
	}
	return nil
}

func (c *Cli) PrintUsage() {
	c.io.Println("MyLedger — personal finance tracker client")
	c.io.Println("")
	c.io.Println("Usage: myledger [flags] <command> [args]")
	c.io.Println("")
	c.io.Println("Commands:")
	c.io.Println("  register                    Create a new account")
	c.io.Println("  login                       Authenticate and save the session")
	c.io.Println("  logout                      Drop the saved session")
	c.io.Println("  status                      Show current session")
	c.io.Println("  records list [flags]        List records (filters, --all for every page)")
	c.io.Println("  records add [flags]         Create a record")
	c.io.Println("  records delete <id>         Delete a record")
	c.io.Println("  projects list [--status s]  List projects")
	c.io.Println("  projects complete <id>      Mark a project completed")
	c.io.Println("  projects reopen <id>        Reopen a completed project")
	c.io.Println("  categories                  Show categories and payment methods")
	c.io.Println("  stats [flags]               Show statistics")
	c.io.Println("  admin <stats|users>         Admin views")
	c.io.Println("")
	c.io.Println("Flags:")
	c.io.Println("  -server URL   Server URL")
	c.io.Println("  -db PATH      Path to the local database")
	c.io.Println("  -version      Show version information")
}
