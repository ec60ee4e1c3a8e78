/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/radondb/shardcore/encrypt"
	"github.com/radondb/shardcore/metadata"
	"github.com/radondb/shardcore/optimizer"
	"github.com/radondb/shardcore/statement"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type conditionResult struct {
	Table         string   `json:"table"`
	Column        string   `json:"column"`
	Operator      string   `json:"operator"`
	StartIndex    int      `json:"start-index"`
	StopIndex     int      `json:"stop-index"`
	RewriteColumn string   `json:"rewrite-column,omitempty"`
	RewriteValues []string `json:"rewrite-values,omitempty"`
}

type optimizeResult struct {
	Statement  string            `json:"statement"`
	Tables     []string          `json:"tables,omitempty"`
	TableName  string            `json:"table-name,omitempty"`
	Columns    []string          `json:"columns,omitempty"`
	Conditions []conditionResult `json:"conditions,omitempty"`
}

// NewOptimizeCommand creates the optimize command.
func NewOptimizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "print the optimized statement of the sql as json",
		RunE:  optimizeCommandFn,
	}
	cmd.Flags().StringVar(&localFlags.config, "config", "", "--config=[path]")
	cmd.Flags().StringVar(&localFlags.sql, "sql", "", "--sql=[query]")
	cmd.Flags().StringSliceVar(&localFlags.params, "params", nil, "--params=[v1,v2], the values of the '?' markers")
	return cmd
}

func statementKind(stmt statement.Statement) string {
	switch stmt.(type) {
	case *statement.SelectStatement:
		return "select"
	case *statement.UpdateStatement:
		return "update"
	case *statement.DeleteStatement:
		return "delete"
	case *statement.InsertStatement:
		return "insert"
	case *statement.DropIndexStatement:
		return "drop-index"
	}
	return "general"
}

func optimizeCommandFn(cmd *cobra.Command, args []string) error {
	if localFlags.sql == "" {
		return errors.New("optimize.sql.can.not.be.empty")
	}
	conf, err := loadConfig(localFlags.config)
	if err != nil {
		return err
	}
	rule, err := encrypt.NewRule(log, conf.Encrypt)
	if err != nil {
		return err
	}
	metaData, err := metadata.NewShardingTableMetaData(log, conf.MetaData)
	if err != nil {
		return err
	}

	stmt, err := statement.Parse(localFlags.sql)
	if err != nil {
		return err
	}
	optimized, err := optimizer.NewOptimizeEngine(log, stmt, rule, metaData).Optimize()
	if err != nil {
		return err
	}

	params := make([]interface{}, 0, len(localFlags.params))
	for _, p := range localFlags.params {
		params = append(params, p)
	}
	result := &optimizeResult{
		Statement: statementKind(stmt),
		Tables:    stmt.Tables().TableNames(),
	}
	switch optimized := optimized.(type) {
	case *optimizer.DropIndexOptimizedStatement:
		result.TableName = optimized.TableName
	case *optimizer.InsertOptimizedStatement:
		result.Columns = optimized.Columns.AllColumnNames()
	case *optimizer.EncryptConditionOptimizedStatement:
		for _, c := range optimized.AndCondition.Conditions {
			cr := conditionResult{
				Table:      c.Table,
				Column:     c.Column,
				Operator:   c.Operator,
				StartIndex: c.StartIndex,
				StopIndex:  c.StopIndex,
			}
			if column, values, err := c.Rewrite(rule, params); err == nil {
				cr.RewriteColumn, cr.RewriteValues = column, values
			} else {
				log.Warning("optimize.condition[%s.%s].rewrite.error:%+v", c.Table, c.Column, err)
			}
			result.Conditions = append(result.Conditions, cr)
		}
	}

	out, err := json.MarshalIndent(result, "", "\t")
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
