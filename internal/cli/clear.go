package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every token, group and the selection",
		Run:   runClear,
	}

	cmd.Flags().Bool("yes", false, "Confirm (required)")

	RootCmd.AddCommand(cmd)
}

func runClear(cmd *cobra.Command, args []string) {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		exitErr("clear", errors.New("refusing to clear all tokens without --yes"))
	}

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.ClearAll(cmd.Context()); err != nil {
		exitErr("clear", err)
	}
	notify.Success("All tokens cleared")
}
