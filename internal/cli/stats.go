package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rcliao/token-studio/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show token and storage statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context())
	if err != nil {
		exitErr("stats", err)
	}

	if jsonOutput() {
		printJSON(stats)
		return
	}

	fmt.Printf("tokens:    %d (%d ungrouped)\n", stats.TotalTokens, stats.Ungrouped)
	fmt.Printf("groups:    %d\n", stats.TotalGroups)
	fmt.Printf("storage:   %d of %d bytes\n", stats.StorageBytes, cfg.Storage.QuotaBytes)
	if stats.Location != "" {
		fmt.Printf("database:  %s\n", stats.Location)
	}
	if stats.Selected != "" {
		fmt.Printf("selected:  %s\n", stats.Selected)
	}
	for _, t := range model.Types {
		if n := stats.ByType[t]; n > 0 {
			fmt.Printf("  %-14s %d\n", t, n)
		}
	}
	cats := make([]string, 0, len(stats.ByCategory))
	for c := range stats.ByCategory {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)
	for _, c := range cats {
		fmt.Printf("  %-14s %d\n", c, stats.ByCategory[model.Category(c)])
	}
}
