// Package cli implements the token-studio CLI commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rcliao/token-studio/internal/config"
	"github.com/rcliao/token-studio/internal/log"
	"github.com/rcliao/token-studio/internal/model"
	"github.com/rcliao/token-studio/internal/storage"
	"github.com/rcliao/token-studio/internal/store"
	"github.com/rcliao/token-studio/internal/ui"
)

// Version is set at build time with -ldflags.
var Version = "dev"

var (
	cfgFile    string
	formatFlag string

	cfg    config.Config
	logger *log.Logger
	notify = ui.Notifier{Out: os.Stdout, Err: os.Stderr}

	clip ui.Clipboard = ui.SystemClipboard{}
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:     "token-studio",
	Short:   "Design token studio",
	Long:    "Create, validate, group and export design tokens. State lives in a single SQLite file.",
	Version: Version,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := RootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "Config file (default: .token-studio/config.yaml or ~/.config/token-studio/config.yaml)")
	pf.StringP("db", "d", "", "Database path (default: $TOKEN_STUDIO_DB or ~/.token-studio/tokens.db)")
	pf.Bool("debug", false, "Log debug output to stderr")
	pf.StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")

	_ = viper.BindPFlag("db", pf.Lookup("db"))
	_ = viper.BindPFlag("debug", pf.Lookup("debug"))
}

func initConfig() {
	c, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		exitErr("load config", err)
	}
	if err := c.Validate(); err != nil {
		exitErr("config", err)
	}
	cfg = c

	logger = newLogger(cfg, os.Stderr)
	logger.Debug(log.CatConfig, "config loaded", "db", cfg.DB, "file", viper.ConfigFileUsed())
}

// newLogger writes at c's level, warn and above by default.
func newLogger(c config.Config, w io.Writer) *log.Logger {
	return log.New(w, c.LogLevel())
}

func openStore(ctx context.Context) (*store.Store, error) {
	backend, err := storage.NewSQLite(cfg.DB, cfg.Storage.QuotaBytes)
	if err != nil {
		return nil, err
	}
	s, err := store.New(ctx, store.Options{
		Storage: backend,
		Key:     cfg.Storage.Key,
		Logger:  logger,
	})
	if err != nil {
		backend.Close()
		return nil, err
	}
	return s, nil
}

func exitErr(msg string, err error) {
	notify.Error("%s: %v", msg, err)
	os.Exit(1)
}

func jsonOutput() bool {
	return strings.EqualFold(formatFlag, "json")
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitErr("encode json", err)
	}
	fmt.Println(string(b))
}

// resolveToken finds a token by ID, then by exact name.
func resolveToken(s *store.Store, ref string) (model.Token, error) {
	if t, ok := s.Token(ref); ok {
		return t, nil
	}
	if t, ok := s.FindByName(ref); ok {
		return t, nil
	}
	return model.Token{}, fmt.Errorf("token %q not found", ref)
}

// resolveGroup finds a group by ID, then by name.
func resolveGroup(s *store.Store, ref string) (model.TokenGroup, error) {
	if g, ok := s.Group(ref); ok {
		return g, nil
	}
	for _, g := range s.Groups() {
		if g.Name == ref {
			return g, nil
		}
	}
	return model.TokenGroup{}, fmt.Errorf("group %q not found", ref)
}
