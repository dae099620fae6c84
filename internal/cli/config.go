package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rcliao/token-studio/internal/config"
)

func init() {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Run:   runConfigInit,
	}
	initCmd.Flags().Bool("local", false, "Write "+config.LocalPath+" instead of the user config")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Run:   runConfigShow,
	}

	configCmd.AddCommand(initCmd, showCmd)
	RootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	local, _ := cmd.Flags().GetBool("local")
	path := config.UserPath()
	if local {
		path = config.LocalPath
	}
	if cfgFile != "" {
		path = cfgFile
	}

	if err := config.WriteDefault(path); err != nil {
		exitErr("config init", err)
	}
	notify.Success("Wrote %s", path)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	if jsonOutput() {
		printJSON(cfg)
		return
	}
	data, err := config.Encode(cfg)
	if err != nil {
		exitErr("config show", err)
	}
	if used := viper.ConfigFileUsed(); used != "" {
		notify.Detail("# %s", used)
	}
	fmt.Print(string(data))
}
