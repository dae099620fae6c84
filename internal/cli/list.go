package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/token-studio/internal/model"
	"github.com/rcliao/token-studio/internal/store"
	"github.com/rcliao/token-studio/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tokens",
		Run:   runList,
	}

	cmd.Flags().String("category", "", "Filter by category")
	cmd.Flags().StringP("type", "t", "", "Filter by type")
	cmd.Flags().StringP("group", "g", "", "Only tokens in this group (id or name)")
	cmd.Flags().Bool("ungrouped", false, "Only tokens not in any group")
	cmd.Flags().StringP("query", "q", "", "Filter by name, value or description")
	cmd.Flags().IntP("limit", "l", 0, "Max results (0 for all)")
	cmd.Flags().Bool("names-only", false, "Only output token names")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	catStr, _ := cmd.Flags().GetString("category")
	typStr, _ := cmd.Flags().GetString("type")
	groupRef, _ := cmd.Flags().GetString("group")
	ungrouped, _ := cmd.Flags().GetBool("ungrouped")
	query, _ := cmd.Flags().GetString("query")
	limit, _ := cmd.Flags().GetInt("limit")
	namesOnly, _ := cmd.Flags().GetBool("names-only")

	p := store.ListParams{Ungrouped: ungrouped, Query: query, Limit: limit}
	var err error
	if catStr != "" {
		if p.Category, err = parseCategory(catStr); err != nil {
			exitErr("list", err)
		}
	}
	if typStr != "" {
		if p.Type, err = parseType(typStr); err != nil {
			exitErr("list", err)
		}
	}

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if groupRef != "" {
		g, err := resolveGroup(s, groupRef)
		if err != nil {
			exitErr("list", err)
		}
		p.GroupID = g.ID
	}

	printTokens(s.List(p), namesOnly)
}

func printTokens(tokens []model.Token, namesOnly bool) {
	if namesOnly {
		for _, t := range tokens {
			fmt.Println(t.Name)
		}
		return
	}
	if jsonOutput() {
		if tokens == nil {
			tokens = []model.Token{}
		}
		printJSON(tokens)
		return
	}
	if len(tokens) == 0 {
		notify.Info("No tokens")
		return
	}
	fmt.Println(ui.TokenTable(tokens))
}
