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
	"strings"

	"github.com/radondb/shardcore/router"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewRouteCommand creates the route command.
func NewRouteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "print the data nodes of the logic table",
		RunE:  routeCommandFn,
	}
	cmd.Flags().StringVar(&localFlags.config, "config", "", "--config=[path]")
	cmd.Flags().StringVar(&localFlags.table, "table", "", "--table=[logic table]")
	cmd.Flags().StringSliceVar(&localFlags.databaseValues, "database-values", nil, "--database-values=[v1,v2]")
	cmd.Flags().StringSliceVar(&localFlags.tableValues, "table-values", nil, "--table-values=[v1,v2]")
	cmd.Flags().BoolVar(&localFlags.generateKey, "generate-key", false, "--generate-key, print a generated key of the table")
	return cmd
}

func routeCommandFn(cmd *cobra.Command, args []string) error {
	if localFlags.table == "" {
		return errors.New("route.table.can.not.be.empty")
	}
	conf, err := loadConfig(localFlags.config)
	if err != nil {
		return err
	}
	rule, err := router.NewShardingRule(log, conf.Sharding, conf.DataSources)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if localFlags.generateKey {
		column, ok := rule.FindGenerateKeyColumn(localFlags.table)
		if !ok {
			return errors.Errorf("route.table[%s].has.no.generate.key.column", localFlags.table)
		}
		key, err := rule.GenerateKey(localFlags.table)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s=%s\n", column, key)
		return nil
	}

	if len(localFlags.databaseValues) > 0 || len(localFlags.tableValues) > 0 {
		nodes, err := rule.RouteTable(localFlags.table, localFlags.databaseValues, localFlags.tableValues)
		if err != nil {
			return err
		}
		for _, node := range nodes {
			fmt.Fprintln(out, node.String())
		}
		return nil
	}

	tr, err := rule.GetTableRule(localFlags.table)
	if err != nil {
		return err
	}
	for _, group := range tr.DataNodeGroups() {
		tables := make([]string, 0, len(group.DataNodes))
		for _, node := range group.DataNodes {
			tables = append(tables, node.TableName)
		}
		fmt.Fprintf(out, "%s: %s\n", group.DataSourceName, strings.Join(tables, ", "))
	}
	return nil
}
