/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package main

import (
	"fmt"
	"os"

	"github.com/radondb/shardcore/cli/cmd"

	"github.com/spf13/cobra"
)

const (
	cliName        = "shardcli"
	cliDescription = "A command line client for the shardcore rules and optimizers"
)

var (
	rootCmd = &cobra.Command{
		Use:        cliName,
		Short:      cliDescription,
		SuggestFor: []string{"shardcli"},
	}
)

func init() {
	rootCmd.AddCommand(cmd.NewVersionCommand())
	rootCmd.AddCommand(cmd.NewLexCommand())
	rootCmd.AddCommand(cmd.NewRouteCommand())
	rootCmd.AddCommand(cmd.NewOptimizeCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
