package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"pricehawk/internal/api"
	"pricehawk/internal/dashboard"
	"pricehawk/internal/dialog"
	"pricehawk/internal/forecast"
	"pricehawk/internal/liveprice"
	"pricehawk/internal/logger"
	"pricehawk/internal/notification"
	"pricehawk/internal/session"
	"pricehawk/internal/tracking"
)

type app struct {
	logger        *logger.Logger
	api           *api.Client
	session       *session.Manager
	tracking      *tracking.Store
	notifications *notification.Aggregator
	dashboard     dashboard.Service
	forecast      *forecast.Estimator
	prober        liveprice.Prober
	prompt        dialog.Prompter
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pricehawk",
		Short:        "Track e-commerce product prices and get notified on drops",
		SilenceUsage: true,
		// The session is restored exactly once, before any command decides
		// what the user may do.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.session.Restore(cmd.Context())
		},
	}

	root.AddCommand(
		a.registerCmd(),
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.searchCmd(),
		a.trackCmd(),
		a.productsCmd(),
		a.targetCmd(),
		a.untrackCmd(),
		a.notificationsCmd(),
		a.testEmailCmd(),
		a.dashboardCmd(),
		a.forecastCmd(),
		a.liveCmd(),
	)
	return root
}

func (a *app) requireAuth() error {
	if !a.session.Authenticated() {
		return errors.New("not logged in, run: pricehawk login")
	}
	return nil
}

// ask runs one dialog prompt and treats cancellation or empty input as a
// refusal the caller reports.
func (a *app) ask(cmd *cobra.Command, title string, placeholder string) (string, error) {
	r, err := a.prompt.Input(cmd.Context(), title, placeholder)
	if err != nil {
		return "", err
	}
	if r.Canceled || r.Value == "" {
		return "", errors.Errorf("%s is required", title)
	}
	return r.Value, nil
}
