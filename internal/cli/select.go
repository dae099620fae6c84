package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "select [id|name]",
		Short: "Select a token, or clear the selection",
		Args:  cobra.MaximumNArgs(1),
		Run:   runSelect,
	}

	RootCmd.AddCommand(cmd)
}

func runSelect(cmd *cobra.Command, args []string) {
	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if len(args) == 0 {
		if err := s.Select(cmd.Context(), ""); err != nil {
			exitErr("select", err)
		}
		notify.Info("Selection cleared")
		return
	}

	tok, err := resolveToken(s, args[0])
	if err != nil {
		exitErr("select", err)
	}
	if err := s.Select(cmd.Context(), tok.ID); err != nil {
		exitErr("select", err)
	}

	if jsonOutput() {
		printJSON(tok)
		return
	}
	notify.Success("Selected %q", tok.Name)
}
