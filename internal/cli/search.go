package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/token-studio/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search tokens by keyword",
		Long:  "Case-insensitive search over token names, values and descriptions.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	printTokens(s.List(store.ListParams{Query: query, Limit: limit}), false)
}
