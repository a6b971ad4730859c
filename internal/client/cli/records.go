package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/xrs-b/MyLedger/pkg/api"
	"github.com/xrs-b/MyLedger/internal/client/store"
)

func (c *Cli) runRecords(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "list":
		return c.runRecordsList(ctx, args)
	case "add":
		return c.runRecordsAdd(ctx, args)
	case "delete":
		return c.runRecordsDelete(ctx, args)
	default:
		return fmt.Errorf("unknown records subcommand: %s. Use: list, add, or delete", sub)
	}
}

func (c *Cli) runRecordsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("records list", flag.ContinueOnError)
	recordType := fs.String("type", "", "Filter by type: income or expense")
	categoryID := fs.String("category", "", "Filter by category id")
	projectID := fs.String("project", "", "Filter by project id")
	startDate := fs.String("start", "", "Start date (YYYY-MM-DD)")
	endDate := fs.String("end", "", "End date (YYYY-MM-DD)")
	all := fs.Bool("all", false, "Fetch every page")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.restore(ctx); err != nil {
		return err
	}

	c.records.SetFilters(map[string]string{
		store.FilterType:       *recordType,
		store.FilterCategoryID: *categoryID,
		store.FilterProjectID:  *projectID,
		store.FilterStartDate:  *startDate,
		store.FilterEndDate:    *endDate,
	})

	if res := c.records.Refresh(ctx); !res.Success {
		return fmt.Errorf("failed to load records: %s", res.Message)
	}
	if *all {
		for c.records.HasMore() {
			if res := c.records.LoadMore(ctx); !res.Success {
				return fmt.Errorf("failed to load records: %s", res.Message)
			}
		}
	}

	items := c.records.Items()
	if len(items) == 0 {
		c.io.Println("No records found.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTYPE\tCATEGORY\tAMOUNT\tREMARK")
	for _, rec := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%s\n",
			rec.ID, rec.Date, rec.Type, rec.CategoryName, rec.Amount, rec.Remark)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	p := c.records.Pagination()
	c.io.Println("")
	c.io.Printf("Showing %d of %d records (page %d/%d)\n", len(items), p.Total, p.Page, p.TotalPages)
	c.io.Printf("Income: %.2f  Expense: %.2f\n", c.records.IncomeAmount(), c.records.ExpenseAmount())
	return nil
}

func (c *Cli) runRecordsAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("records add", flag.ContinueOnError)
	recordType := fs.String("type", api.RecordTypeExpense, "Record type: income or expense")
	categoryID := fs.Int64("category", 0, "Category id")
	itemID := fs.Int64("item", 0, "Category item id")
	amount := fs.Float64("amount", 0, "Amount")
	date := fs.String("date", "", "Date (YYYY-MM-DD)")
	remark := fs.String("remark", "", "Optional remark")
	paymentMethodID := fs.Int64("payment", 0, "Optional payment method id")
	projectID := fs.Int64("project", 0, "Optional project id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *categoryID == 0 || *itemID == 0 || *amount == 0 || *date == "" {
		return fmt.Errorf("missing required flags: -category, -item, -amount, -date")
	}

	if err := c.restore(ctx); err != nil {
		return err
	}

	in := api.RecordCreate{
		Type:           *recordType,
		CategoryID:     *categoryID,
		CategoryItemID: *itemID,
		Amount:         *amount,
		Date:           *date,
		Remark:         *remark,
	}
	if *paymentMethodID != 0 {
		in.PaymentMethodID = paymentMethodID
	}
	if *projectID != 0 {
		in.ProjectID = projectID
	}

	res := c.records.Create(ctx, in)
	if !res.Success {
		return fmt.Errorf("failed to create record: %s", res.Message)
	}

	c.io.Printf("✓ Record #%d created.\n", res.Data.ID)
	return nil
}

func (c *Cli) runRecordsDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing record id. Usage: myledger records delete <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid record id %q", args[0])
	}

	if err := c.restore(ctx); err != nil {
		return err
	}

	if res := c.records.Delete(ctx, id); !res.Success {
		return fmt.Errorf("failed to delete record: %s", res.Message)
	}
	c.io.Printf("✓ Record #%d deleted.\n", id)
	return nil
}
