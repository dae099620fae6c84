package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm <id|name>...",
		Short: "Delete tokens",
		Long:  "Delete tokens by ID or name. Each token is also removed from its group and cleared from the selection.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runRm,
	}

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	var deleted []string
	for _, ref := range args {
		tok, err := resolveToken(s, ref)
		if err != nil {
			exitErr("rm", err)
		}
		if err := s.Delete(cmd.Context(), tok.ID); err != nil {
			exitErr("rm", err)
		}
		deleted = append(deleted, tok.ID)
	}

	if jsonOutput() {
		printJSON(map[string]any{"ok": true, "deleted": deleted})
		return
	}
	notify.Success("Token deleted successfully")
}
