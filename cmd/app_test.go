package main

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricehawk/internal/api"
	"pricehawk/internal/credential"
	"pricehawk/internal/dialog"
	"pricehawk/internal/logger"
	"pricehawk/internal/session"
)

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestAsk(t *testing.T) {
	a := &app{prompt: dialog.NewScript(dialog.Result{Value: "42.50"})}

	v, err := a.ask(testCommand(), "Target price", "")
	require.NoError(t, err)
	assert.Equal(t, "42.50", v)
}

func TestAskCanceled(t *testing.T) {
	a := &app{prompt: dialog.NewScript()}

	_, err := a.ask(testCommand(), "Target price", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Target price is required")
}

func TestAskEmptyAnswer(t *testing.T) {
	a := &app{prompt: dialog.NewScript(dialog.Result{Value: ""})}

	_, err := a.ask(testCommand(), "Email", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email is required")
}

func TestRequireAuth(t *testing.T) {
	l := logger.NewLogger(logger.LevelOff, io.Discard)
	client := api.NewClient(&http.Client{}, "http://localhost:0/api", l)
	a := &app{session: session.NewManager(client, &credential.Memory{}, l)}

	err := a.requireAuth()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}
