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
		Use:   "preview [id|name]...",
		Short: "Render token swatches in the terminal",
		Long:  "Render swatches for the given tokens, or for every color token when none are named.",
		Run:   runPreview,
	}

	cmd.Flags().IntP("width", "w", 32, "Swatch width")

	RootCmd.AddCommand(cmd)
}

func runPreview(cmd *cobra.Command, args []string) {
	width, _ := cmd.Flags().GetInt("width")

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	var tokens []model.Token
	if len(args) == 0 {
		tokens = s.List(store.ListParams{Type: model.TypeColor})
	}
	for _, ref := range args {
		t, err := resolveToken(s, ref)
		if err != nil {
			exitErr("preview", err)
		}
		tokens = append(tokens, t)
	}

	if len(tokens) == 0 {
		notify.Info("No tokens to preview")
		return
	}
	for _, t := range tokens {
		fmt.Println(ui.Swatch(t, width))
		if states := ui.States(t); states != "" {
			fmt.Println(states)
		}
	}
}
