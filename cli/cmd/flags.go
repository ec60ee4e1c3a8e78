/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package cmd

import (
	"bytes"

	"github.com/radondb/shardcore/config"

	"github.com/spf13/cobra"
	"github.com/xelabs/go-mysqlstack/xlog"
)

var (
	log        = xlog.NewStdLog(xlog.Level(xlog.ERROR))
	localFlags = LocalFlags{}
)

// LocalFlags are flags that defined for local.
type LocalFlags struct {
	config         string
	dialect        string
	sql            string
	table          string
	databaseValues []string
	tableValues    []string
	params         []string
	generateKey    bool
}

// loadConfig loads the config and applies its log level.
func loadConfig(path string) (*config.Config, error) {
	conf, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	log.SetLevel(conf.Log.Level)
	return conf, nil
}

func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	_, err = root.ExecuteC()
	return buf.String(), err
}
