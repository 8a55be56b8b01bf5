// Package main is the entry point for the velac CLI.
package main

import (
	"fmt"
	"os"

	"github.com/velalang/velac/internal/cmd"
	oerrors "github.com/velalang/velac/internal/errors"

	// Register the bundled toolchains.
	_ "github.com/velalang/velac/internal/target/c99"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
