package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pricehawk/internal/misc"
)

func (a *app) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show tracking stats and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			overview, err := a.dashboard.Overview(cmd.Context())
			if err != nil {
				return err
			}
			s := overview.Stats
			fmt.Printf("Tracked Products:  %d\n", s.TrackedProducts)
			fmt.Printf("New Notifications: %d\n", s.UnreadNotifications)
			fmt.Printf("Price Drops:       %d\n", s.PriceDrops)
			fmt.Printf("Total Savings:     %s\n", misc.FormatMoney(s.TotalSavings))

			if len(overview.RecentActivity) == 0 {
				fmt.Println("\nNo recent activity")
				return nil
			}
			fmt.Println("\nRecent Activity:")
			for _, n := range overview.RecentActivity {
				fmt.Printf("  %s  %s - Price dropped to %s (Save %s)\n",
					n.CreatedAt.Format("2006-01-02"), n.ProductName,
					misc.FormatMoney(n.NewPrice), misc.FormatMoney(n.Savings))
			}
			return nil
		},
	}
}

func (a *app) notificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "List price-drop notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.notifications.Refresh(cmd.Context()); err != nil {
				return err
			}
			notifications := a.notifications.List()
			if len(notifications) == 0 {
				fmt.Println("No notifications yet")
				return nil
			}
			fmt.Printf("Notifications (%d, %d unread)\n", len(notifications), a.notifications.UnreadCount())
			for _, n := range notifications {
				marker := " "
				if !n.IsRead {
					marker = "*"
				}
				fmt.Printf("\n%s Price Drop Alert: %s\n", marker, n.ProductName)
				fmt.Printf("  Old: %s  New: %s  Target: %s  You save: %s\n",
					misc.FormatMoney(n.OldPrice), misc.FormatMoney(n.NewPrice),
					misc.FormatMoney(n.TargetPrice), misc.FormatMoney(n.Savings))
				status := "Getting closer to your target!"
				if n.TargetReached() {
					status = "Target price reached!"
				}
				fmt.Printf("  Price dropped by %.1f%% - %s\n", n.DropPercent(), status)
				fmt.Printf("  Sent to: %s | %s\n", n.UserEmail, n.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func (a *app) testEmailCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "test-email",
		Short: "Send a test notification email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			var err error
			if email == "" {
				if email, err = a.ask(cmd, "Enter your email address for test notification", "user@example.com"); err != nil {
					return err
				}
			}
			message, err := a.notifications.SendTestEmail(cmd.Context(), email)
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "destination email address")
	return cmd
}
