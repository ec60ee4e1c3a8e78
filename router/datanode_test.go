/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataNode(t *testing.T) {
	{
		node, err := NewDataNode("ds0.t_order_0")
		assert.Nil(t, err)
		assert.Equal(t, DataNode{DataSourceName: "ds0", TableName: "t_order_0"}, node)
		assert.Equal(t, "ds0.t_order_0", node.String())
	}

	// Value type, usable as a key.
	{
		m := map[DataNode]int{{DataSourceName: "ds0", TableName: "t"}: 1}
		assert.Equal(t, 1, m[DataNode{DataSourceName: "ds0", TableName: "t"}])
	}

	// Errors.
	{
		for _, bad := range []string{"ds0", "ds0.t.x", ".t", "ds0.", ""} {
			_, err := NewDataNode(bad)
			assert.NotNil(t, err, bad)
		}
	}
}

func TestInvalidDataNodeError(t *testing.T) {
	err := &InvalidDataNodeError{DataNode: "ds9.t"}
	assert.Equal(t, "router.can.not.find.datasource.of.actual.datanode[ds9.t]", err.Error())
}
