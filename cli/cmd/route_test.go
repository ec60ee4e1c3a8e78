/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCmdRoute(t *testing.T) {
	path := mockConfigFile(t, "shardcore.yaml")

	// Data node groups.
	{
		output, err := executeCommand(NewRouteCommand(), "--config", path, "--table", "t_order")
		assert.Nil(t, err)
		assert.Equal(t, "ds0: t_order_0, t_order_1\nds1: t_order_0, t_order_1\n", output)
	}

	// Broadcast table.
	{
		output, err := executeCommand(NewRouteCommand(), "--config", path, "--table", "t_config")
		assert.Nil(t, err)
		assert.Equal(t, "ds0: t_config\nds1: t_config\n", output)
	}

	// Routed by the values.
	{
		output, err := executeCommand(NewRouteCommand(), "--config", path, "--table", "t_order", "--database-values", "1", "--table-values", "2")
		assert.Nil(t, err)
		assert.Equal(t, "ds1.t_order_0\n", output)
	}

	// Generated key.
	{
		output, err := executeCommand(NewRouteCommand(), "--config", path, "--table", "t_order", "--generate-key")
		assert.Nil(t, err)
		assert.True(t, strings.HasPrefix(output, "order_id="))
	}
}

func TestCmdRouteError(t *testing.T) {
	path := mockConfigFile(t, "shardcore.json")

	{
		_, err := executeCommand(NewRouteCommand(), "--config", path)
		assert.NotNil(t, err)
	}

	{
		_, err := executeCommand(NewRouteCommand(), "--config", "/shardcore/not/exists.json", "--table", "t_order")
		assert.NotNil(t, err)
	}

	{
		_, err := executeCommand(NewRouteCommand(), "--config", path, "--table", "t_order", "--database-values", "x")
		assert.NotNil(t, err)
	}
}
