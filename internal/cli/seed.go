package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/token-studio/internal/export"
	"github.com/rcliao/token-studio/internal/store"
	"github.com/rcliao/token-studio/internal/validate"
)

func init() {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add the sample palette",
		Long:  "Add the sample palette as color tokens named category/state. Names already in use are skipped.",
		Run:   runSeed,
	}

	cmd.Flags().Bool("groups", false, "Also create one group per palette category")

	RootCmd.AddCommand(cmd)
}

func runSeed(cmd *cobra.Command, args []string) {
	withGroups, _ := cmd.Flags().GetBool("groups")
	ctx := cmd.Context()

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	groupIDs := map[string]string{}
	added, skipped := 0, 0
	for _, t := range export.DemoTokens() {
		if err := s.EnsureUniqueName(t.Name, ""); err != nil {
			skipped++
			continue
		}
		tok, err := s.Add(ctx, store.AddParams{
			Name:     t.Name,
			Value:    t.Value,
			Type:     t.Type,
			Category: t.Category,
			Attrs:    validate.Derive(t.Type, t.Value),
		})
		if err != nil {
			exitErr("seed", err)
		}
		added++

		if !withGroups {
			continue
		}
		key, _, _ := strings.Cut(t.Name, "/")
		gid, ok := groupIDs[key]
		if !ok {
			g, err := s.AddGroup(ctx, key, t.Category)
			if err != nil {
				exitErr("seed", err)
			}
			gid = g.ID
			groupIDs[key] = gid
		}
		if err := s.MoveTokenToGroup(ctx, tok.ID, gid); err != nil {
			exitErr("seed", err)
		}
	}

	if jsonOutput() {
		printJSON(map[string]any{"ok": true, "added": added, "skipped": skipped, "groups": len(groupIDs)})
		return
	}
	notify.Success("Added %d sample tokens", added)
	if skipped > 0 {
		notify.Detail("%d skipped, name already in use", skipped)
	}
}
