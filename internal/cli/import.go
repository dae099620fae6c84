package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/token-studio/internal/export"
	"github.com/rcliao/token-studio/internal/validate"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Append tokens from a token document",
		Long:  "Import a token document (stdin or file), appending its tokens as written. Expects the format produced by export.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	var r io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			exitErr("open file", err)
		}
		defer f.Close()
		r = f
	}

	tokens, err := export.ParseImport(r)
	if err != nil {
		if errors.Is(err, export.ErrImportFormat) {
			notify.Error("Invalid token file format")
			notify.Detail("%v", err)
			os.Exit(1)
		}
		exitErr("import", err)
	}

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Import(cmd.Context(), tokens); err != nil {
		exitErr("import", err)
	}

	if jsonOutput() {
		printJSON(map[string]any{"ok": true, "imported": len(tokens)})
		return
	}
	notify.Success("Tokens imported successfully")
	// Imported tokens are kept as written; flag the ones that would not
	// pass the editor's checks.
	for _, t := range tokens {
		if r := validate.Token(t); !r.Valid {
			notify.Detail("%s: %s", t.Name, r.Err())
		}
	}
}
