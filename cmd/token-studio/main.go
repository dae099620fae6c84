package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rcliao/token-studio/internal/cli"
)

func main() {
	// A missing .env is fine; TOKEN_STUDIO_* can come from the real environment.
	_ = godotenv.Load()

	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
