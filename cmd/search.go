package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pricehawk/internal/misc"
	"pricehawk/internal/tracking"
)

func (a *app) searchCmd() *cobra.Command {
	var maxResults int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search products across platforms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			resp, err := a.api.Search(cmd.Context(), query, maxResults, true)
			if err != nil {
				return err
			}
			if len(resp.Results) == 0 {
				fmt.Printf("No products found for %q. Try a different search term.\n", query)
				return nil
			}
			fmt.Printf("Search Results (%d found)\n", len(resp.Results))
			for _, r := range resp.Results {
				best := ""
				if r.IsBestPrice {
					best = "  [best price]"
				}
				fmt.Printf("\n%s\n", r.Title)
				fmt.Printf("  %s  Source: %s%s\n", misc.FormatMoney(r.Price), r.Source, best)
				if r.Recommendation != "" {
					fmt.Printf("  %s\n", r.Recommendation)
				}
				if r.URL != "" {
					fmt.Printf("  %s\n", r.URL)
				}
			}
			if len(resp.Recommendations) > 0 {
				fmt.Printf("\nSearch suggestions: %s\n", strings.Join(resp.Recommendations, ", "))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxResults, "max-results", 20, "maximum number of results")
	return cmd
}

func (a *app) forecastCmd() *cobra.Command {
	var (
		name     string
		priceStr string
		days     int
	)
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Estimate the short-horizon price trend of a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if name == "" {
				if name, err = a.ask(cmd, "Product name", ""); err != nil {
					return err
				}
			}
			if priceStr == "" {
				if priceStr, err = a.ask(cmd, "Current price", ""); err != nil {
					return err
				}
			}
			currentPrice, err := tracking.ParsePrice(priceStr)
			if err != nil {
				return err
			}
			r := a.forecast.Forecast(cmd.Context(), name, currentPrice, days)
			fmt.Printf("Price Forecast (%d days)\n", days)
			fmt.Printf("  Trend:     %s\n", r.Trend)
			fmt.Printf("  Current:   %s\n", misc.FormatMoney(r.CurrentPrice))
			fmt.Printf("  Predicted: %s\n", misc.FormatMoney(r.PredictedPrice))
			fmt.Printf("  Change:    %.1f%%\n", r.ChangePercent)
			fmt.Printf("  %s\n", r.Recommendation)
			if r.Source == "fallback" {
				fmt.Println("  (prediction service unavailable, simulated estimate)")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&priceStr, "price", "", "current price")
	cmd.Flags().IntVar(&days, "days", 7, "days ahead")
	return cmd
}

func (a *app) liveCmd() *cobra.Command {
	var (
		url      string
		priceStr string
	)
	cmd := &cobra.Command{
		Use:   "live",
		Short: "Fetch the live price of a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if url == "" {
				if url, err = a.ask(cmd, "Product URL", ""); err != nil {
					return err
				}
			}
			if priceStr == "" {
				if priceStr, err = a.ask(cmd, "Cached price", ""); err != nil {
					return err
				}
			}
			cachedPrice, err := tracking.ParsePrice(priceStr)
			if err != nil {
				return err
			}
			probe := a.prober.Probe(cmd.Context(), url, cachedPrice)
			if probe.LivePrice == nil {
				fmt.Printf("Live price unavailable. Showing cached price: %s\n", misc.FormatMoney(probe.CachedPrice))
				return nil
			}
			fmt.Printf("Live Price Update\n")
			fmt.Printf("  Live:   %s\n", misc.FormatMoney(*probe.LivePrice))
			fmt.Printf("  Cached: %s\n", misc.FormatMoney(probe.CachedPrice))
			switch {
			case probe.Delta > 0:
				fmt.Printf("  +%s since last check\n", misc.FormatMoney(probe.Delta))
			case probe.Delta < 0:
				fmt.Printf("  -%s since last check\n", misc.FormatMoney(-probe.Delta))
			default:
				fmt.Println("  No change")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "product url")
	cmd.Flags().StringVar(&priceStr, "price", "", "cached price")
	return cmd
}
