package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/localshop/localshop/app/models"
	"github.com/localshop/localshop/config"
	"github.com/localshop/localshop/internal/client"
)

var (
	shopCategory string
	shopQuery    string
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Terminal shop client (browse, cart, checkout)",
}

func newController() *client.Controller {
	_ = config.Load()
	store := client.OpenLocalStore(config.ClientStateDir())
	return client.New(config.APIBase(), store, client.NewTerminalUI())
}

// localshop shop list — browse the catalogue with optional filters.
var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products, optionally filtered by category and search text",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newController()
		c.FetchProducts(context.Background())
		if shopCategory != "" {
			c.SetCategory(shopCategory)
		}
		if shopQuery != "" {
			c.SetSearch(shopQuery)
		}
		return printProducts(c.Filtered())
	},
}

// localshop shop search <text> — shorthand for list --query.
var shopSearchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search products by name or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newController()
		c.FetchProducts(context.Background())
		c.SetSearch(args[0])
		return printProducts(c.Filtered())
	},
}

// localshop shop add <id> [qty]
var shopAddCmd = &cobra.Command{
	Use:   "add <product-id> [qty]",
	Short: "Add a product to the cart",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("product id must be a number: %q", args[0])
		}
		qty := 1
		if len(args) == 2 {
			if qty, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("quantity must be a number: %q", args[1])
			}
		}

		c := newController()
		c.FetchProducts(context.Background())
		c.AddToCart(id, qty)
		return printCart(c)
	},
}

// localshop shop qty <id> <n>
var shopQtyCmd = &cobra.Command{
	Use:   "qty <product-id> <quantity>",
	Short: "Change a cart line's quantity (minimum 1)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("product id must be a number: %q", args[0])
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quantity must be a number: %q", args[1])
		}

		c := newController()
		c.SetQuantity(id, qty)
		return printCart(c)
	},
}

// localshop shop remove <id>
var shopRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("product id must be a number: %q", args[0])
		}

		c := newController()
		c.RemoveFromCart(id)
		return printCart(c)
	},
}

// localshop shop cart
var shopCartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCart(newController())
	},
}

// localshop shop checkout
var shopCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Submit the cart as an order",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newController()
		c.Checkout(context.Background())
		return nil
	},
}

// localshop shop retry — resubmit a checkout stashed while offline.
var shopRetryCmd = &cobra.Command{
	Use:   "retry",
	Short: "Resubmit a pending order saved while the server was unreachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newController()
		c.RetryPending(context.Background())
		return nil
	},
}

func printProducts(products []models.Product) error {
	if len(products) == 0 {
		fmt.Println("No products found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tDESCRIPTION")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\tPKR %d\t%s\n", p.ID, p.Name, p.Category, p.Price, p.Description)
	}
	return w.Flush()
}

func printCart(c *client.Controller) error {
	lines := c.Lines()
	if len(lines) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY")
	for _, l := range lines {
		fmt.Fprintf(w, "%d\t%s\tPKR %d\t%d\n", l.ProductID, l.Name, l.Price, l.Quantity)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("%d items, total PKR %d\n", c.TotalCount(), c.TotalPrice())
	return nil
}

func init() {
	shopListCmd.Flags().StringVar(&shopCategory, "category", "", "filter by category (\"All\" shows everything)")
	shopListCmd.Flags().StringVar(&shopQuery, "query", "", "case-insensitive search in name and description")

	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopSearchCmd)
	shopCmd.AddCommand(shopAddCmd)
	shopCmd.AddCommand(shopQtyCmd)
	shopCmd.AddCommand(shopRemoveCmd)
	shopCmd.AddCommand(shopCartCmd)
	shopCmd.AddCommand(shopCheckoutCmd)
	shopCmd.AddCommand(shopRetryCmd)
}
