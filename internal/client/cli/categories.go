package cli

import (
	"context"
	"fmt"

	"github.com/xrs-b/MyLedger/pkg/api"
)

func (c *Cli) runCategories(ctx context.Context) error {
	if err := c.restore(ctx); err != nil {
		return err
	}

	if res := c.categories.FetchAll(ctx); !res.Success {
		return fmt.Errorf("failed to load categories: %s", res.Message)
	}
	if res := c.categories.FetchPaymentMethods(ctx); !res.Success {
		return fmt.Errorf("failed to load payment methods: %s", res.Message)
	}

	c.io.Println("=== Expense categories ===")
	c.printCategoryGroup(c.categories.Expense())
	c.io.Println("")
	c.io.Println("=== Income categories ===")
	c.printCategoryGroup(c.categories.Income())

	methods := c.categories.PaymentMethods()
	if len(methods) > 0 {
		c.io.Println("")
		c.io.Println("=== Payment methods ===")
		for _, m := range methods {
			c.io.Printf("  [%d] %s\n", m.ID, m.Name)
		}
	}
	return nil
}

func (c *Cli) printCategoryGroup(categories []api.Category) {
	if len(categories) == 0 {
		c.io.Println("  (none)")
		return
	}
	for _, cat := range categories {
		c.io.Printf("  [%d] %s\n", cat.ID, cat.Name)
		for _, item := range cat.Items {
			c.io.Printf("      [%d] %s\n", item.ID, item.Name)
		}
	}
}
