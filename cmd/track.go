package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pricehawk/internal/api"
	"pricehawk/internal/misc"
	"pricehawk/internal/tracking"
)

func (a *app) productsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List tracked products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.tracking.Refresh(cmd.Context()); err != nil {
				return err
			}
			products := a.tracking.List()
			if len(products) == 0 {
				fmt.Println("No products tracked yet")
				return nil
			}
			fmt.Printf("My Tracked Products (%d)\n", len(products))
			for _, p := range products {
				fmt.Printf("\n%s  [%s]\n", p.ProductName, p.ID)
				fmt.Printf("  Current: %s", misc.FormatMoney(p.CurrentPrice))
				if savings := p.OriginalSavings(); savings > 0 {
					fmt.Printf(" (Save %s)", misc.FormatMoney(savings))
				}
				fmt.Printf("  Target: %s\n", misc.FormatMoney(p.TargetPrice))
				if ps := tracking.StatusOf(p); ps.Status != tracking.StatusNone {
					fmt.Printf("  %s\n", ps.Message)
				}
				fmt.Printf("  Source: %s | Tracking since: %s\n", p.Platform, p.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func (a *app) trackCmd() *cobra.Command {
	var (
		name, priceStr, targetStr string
		email, url, image, source string
	)
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Start tracking a product against a target price",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			var err error
			if name == "" {
				if name, err = a.ask(cmd, "Product name", ""); err != nil {
					return err
				}
			}
			if targetStr == "" {
				title := fmt.Sprintf("Enter your target price for %s", name)
				if targetStr, err = a.ask(cmd, title, priceStr); err != nil {
					return err
				}
			}
			targetPrice, err := tracking.ParsePrice(targetStr)
			if err != nil {
				return err
			}
			if email == "" {
				if email, err = a.ask(cmd, "Enter your email for notifications", "user@example.com"); err != nil {
					return err
				}
			}
			message, err := a.tracking.Track(cmd.Context(), api.TrackRequest{
				Name:         name,
				CurrentPrice: tracking.ParsePriceOrZero(priceStr),
				TargetPrice:  targetPrice,
				UserEmail:    email,
				URL:          url,
				Image:        image,
				Platform:     source,
			})
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&priceStr, "price", "", "current price")
	cmd.Flags().StringVar(&targetStr, "target", "", "target price")
	cmd.Flags().StringVar(&email, "email", "", "email for notifications")
	cmd.Flags().StringVar(&url, "url", "", "product url")
	cmd.Flags().StringVar(&image, "image", "", "product image url")
	cmd.Flags().StringVar(&source, "platform", "", "source platform")
	return cmd
}

func (a *app) targetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target <product-id> [price]",
		Short: "Update the target price of a tracked product",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			targetStr := ""
			if len(args) == 2 {
				targetStr = args[1]
			} else {
				var err error
				if targetStr, err = a.ask(cmd, "New target price", ""); err != nil {
					return err
				}
			}
			targetPrice, err := tracking.ParsePrice(targetStr)
			if err != nil {
				return err
			}
			if err := a.tracking.UpdateTargetPrice(cmd.Context(), args[0], targetPrice); err != nil {
				return err
			}
			fmt.Println("Target price updated!")
			return nil
		},
	}
	return cmd
}

func (a *app) untrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "untrack <product-id>",
		Short: "Stop tracking a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.tracking.Untrack(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Product untracked successfully!")
			return nil
		},
	}
}
