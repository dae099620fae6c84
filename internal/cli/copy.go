package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/token-studio/internal/export"
)

func init() {
	cmd := &cobra.Command{
		Use:   "copy <id|name>",
		Short: "Copy a token's CSS to the clipboard",
		Args:  cobra.ExactArgs(1),
		Run:   runCopy,
	}

	cmd.Flags().Bool("snippet", false, "Copy the full snippet with a usage example")
	cmd.Flags().Bool("value", false, "Copy only the raw value")
	cmd.Flags().Bool("stdout", false, "Print instead of using the clipboard")

	RootCmd.AddCommand(cmd)
}

func runCopy(cmd *cobra.Command, args []string) {
	snippet, _ := cmd.Flags().GetBool("snippet")
	valueOnly, _ := cmd.Flags().GetBool("value")
	stdout, _ := cmd.Flags().GetBool("stdout")

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	tok, err := resolveToken(s, args[0])
	if err != nil {
		exitErr("copy", err)
	}

	text := export.CopyLine(tok)
	switch {
	case valueOnly:
		text = tok.Value
	case snippet:
		text = export.Snippet(tok)
	}

	if stdout {
		fmt.Println(text)
		return
	}

	if err := clip.Copy(text); err != nil {
		notify.Error("Failed to copy CSS")
		notify.Detail("%v", err)
		s.Close()
		os.Exit(1)
	}
	notify.Success("CSS for %q copied to clipboard!", tok.Name)
}
