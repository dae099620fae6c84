package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/token-studio/internal/export"
	"github.com/rcliao/token-studio/internal/log"
	"github.com/rcliao/token-studio/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export [format]",
		Short: "Export tokens",
		Long: "Export tokens as a palette file (css, scss, less, json, js, ts, figma, sketch).\n" +
			"Without a format the full token document is written, which import reads back.",
		Args: cobra.MaximumNArgs(1),
		Run:  runExport,
	}

	cmd.Flags().StringP("out", "o", "", "Output file, - for stdout (default: design-tokens.<ext> in export.dir)")
	cmd.Flags().String("prefix", "", "Variable name prefix for css, scss and less")
	cmd.Flags().Bool("minify", false, "Compact JSON output")
	cmd.Flags().Bool("metadata", false, "Include metadata in the token document")
	cmd.Flags().Bool("copy", false, "Copy the output to the clipboard instead of writing a file")
	cmd.Flags().StringP("group", "g", "", "Only export tokens in this group (id or name)")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()
	out, _ := flags.GetString("out")
	copyOut, _ := flags.GetBool("copy")
	groupRef, _ := flags.GetString("group")

	prefix := cfg.Export.Prefix
	if flags.Changed("prefix") {
		prefix, _ = flags.GetString("prefix")
	}
	minify := cfg.Export.Minify
	if flags.Changed("minify") {
		minify, _ = flags.GetBool("minify")
	}
	withMeta := cfg.Export.Metadata
	if flags.Changed("metadata") {
		withMeta, _ = flags.GetBool("metadata")
	}

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	var tokens []model.Token
	if groupRef != "" {
		g, err := resolveGroup(s, groupRef)
		if err != nil {
			exitErr("export", err)
		}
		tokens = g.Tokens
	} else {
		tokens = s.Tokens()
	}

	var body, fileName string
	if len(args) == 0 {
		body, err = export.NewDocument(tokens, time.Now(), withMeta).Encode(minify)
		fileName = export.DocumentFileName
	} else {
		f, perr := export.ParseFormat(args[0])
		if perr != nil {
			exitErr("export", perr)
		}
		palette := export.BuildPalette(cfg.Export.PaletteName, tokens)
		body, err = export.Render(f, palette, export.Options{Prefix: prefix, Minify: minify})
		fileName = f.FileName()
	}
	if err != nil {
		exitErr("export", err)
	}
	logger.Debug(log.CatExport, "rendered export", "file", fileName, "tokens", len(tokens), "bytes", len(body))

	if copyOut {
		if err := clip.Copy(body); err != nil {
			exitErr("export", err)
		}
		notify.Success("Copied to clipboard!")
		return
	}

	if out == "-" {
		fmt.Println(body)
		return
	}
	if out == "" {
		out = filepath.Join(cfg.Export.Dir, fileName)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		exitErr("export", err)
	}
	if err := os.WriteFile(out, []byte(body), 0o644); err != nil {
		exitErr("export", err)
	}
	notify.Success("Exported %d tokens to %s", len(tokens), out)
}
