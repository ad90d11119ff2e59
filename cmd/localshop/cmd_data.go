package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/localshop/localshop/config"
	"github.com/localshop/localshop/internal/server"
	"github.com/localshop/localshop/internal/store"
	"github.com/localshop/localshop/pkg/storage"
)

var seedForce bool

// localshop seed — write the sample catalogue.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the sample product catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		storage.Connect()

		st := store.New(storage.Use(config.StorageDefault()), config.DataDir())
		if err := st.SeedProducts(seedForce); err != nil {
			return err
		}

		fmt.Printf("Seeded %d products into %s/products.json\n", len(store.SampleCatalog), config.DataDir())
		return nil
	},
}

// localshop orders:list — print persisted orders. Diagnostic only; the
// service never reads orders except to assign the next id.
var ordersListCmd = &cobra.Command{
	Use:   "orders:list",
	Short: "List persisted orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		storage.Connect()

		orders := server.NewService().AllOrders()
		if len(orders) == 0 {
			fmt.Println("No orders yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tCREATED\tITEMS\tTOTAL\tCUSTOMER")
		for _, o := range orders {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n",
				o.ID, o.CreatedAt.Format(time.RFC3339), len(o.Items), o.Total, o.Customer.Name)
		}
		return w.Flush()
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "overwrite an existing catalogue")
}
