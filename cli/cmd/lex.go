/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package cmd

import (
	"fmt"

	"github.com/radondb/shardcore/lexer"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewLexCommand creates the lex command.
func NewLexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lex",
		Short: "print the tokens of the sql",
		RunE:  lexCommandFn,
	}
	cmd.Flags().StringVar(&localFlags.dialect, "dialect", "", "--dialect=[default|mysql|sqlserver], the config dialect if empty")
	cmd.Flags().StringVar(&localFlags.config, "config", "", "--config=[path]")
	cmd.Flags().StringVar(&localFlags.sql, "sql", "", "--sql=[query]")
	return cmd
}

func lexCommandFn(cmd *cobra.Command, args []string) error {
	if localFlags.sql == "" {
		return errors.New("lex.sql.can.not.be.empty")
	}

	name := localFlags.dialect
	if name == "" {
		name = "mysql"
		if localFlags.config != "" {
			conf, err := loadConfig(localFlags.config)
			if err != nil {
				return err
			}
			name = conf.Lexer.Dialect
		}
	}
	dialect, err := lexer.DialectByName(name)
	if err != nil {
		return err
	}

	tokens, err := lexer.NewLexer(localFlags.sql, dialect).Tokens()
	for _, token := range tokens {
		fmt.Fprintln(cmd.OutOrStdout(), token.String())
	}
	return err
}
