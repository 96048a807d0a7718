package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/HerbRun_Go/internal/report"
)

func newPriceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "price QUERY...",
		Short:   "Search items by name and show their prices",
		Example: "  herbrun price ranarr seed",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := a.upstream()
			if err != nil {
				return err
			}
			quotes, err := clients.Prices.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return report.PriceTable(cmd.OutOrStdout(), quotes)
		},
	}
}
