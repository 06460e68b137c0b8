package main

import (
	"fmt"
	"os"

	"interviewmate/internal/cli"

	"github.com/joho/godotenv"
)

// loadEnv loads the given env files (.env when none). A missing file is
// not an error.
func loadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func main() {
	if err := loadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to load .env file:", err)
	}

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
