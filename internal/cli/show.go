package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/token-studio/internal/export"
	"github.com/rcliao/token-studio/internal/model"
	"github.com/rcliao/token-studio/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show [id|name]",
		Short: "Show a token",
		Long:  "Show a token with its swatch and CSS snippet. Without an argument the selected token is shown.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	var tok model.Token
	if len(args) == 1 {
		if tok, err = resolveToken(s, args[0]); err != nil {
			exitErr("show", err)
		}
	} else {
		var ok bool
		if tok, ok = s.Selected(); !ok {
			exitErr("show", errors.New("no token selected"))
		}
	}

	if jsonOutput() {
		printJSON(tok)
		return
	}

	fmt.Println(ui.Swatch(tok, 40))
	if states := ui.States(tok); states != "" {
		fmt.Println(states)
	}
	notify.Detail("id:          %s", tok.ID)
	notify.Detail("type:        %s", tok.Type)
	notify.Detail("category:    %s", tok.Category)
	if tok.Description != "" {
		notify.Detail("description: %s", tok.Description)
	}
	notify.Detail("updated:     %s", tok.UpdatedAt.Format("2006-01-02 15:04:05"))
	fmt.Println()
	fmt.Println(export.Snippet(tok))
}
