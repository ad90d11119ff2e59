package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "localshop",
	Short: "LocalShop — flat-file shop backend and terminal client",
	Long: "LocalShop serves a small product catalogue and order intake over HTTP,\n" +
		"backed by plain JSON files, and ships a terminal shop client for it.",
}

func init() {
	// Server
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Data
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(ordersListCmd)

	// Client
	rootCmd.AddCommand(shopCmd)
}
