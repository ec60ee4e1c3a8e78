/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package router

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// DataNode is one physical table on one datasource.
// It is a value type and can be used as a map key.
type DataNode struct {
	DataSourceName string `json:"datasource"`
	TableName      string `json:"table"`
}

// NewDataNode parses the 'datasource.table' form.
func NewDataNode(node string) (DataNode, error) {
	segments := strings.Split(node, ".")
	if len(segments) != 2 || segments[0] == "" || segments[1] == "" {
		return DataNode{}, errors.Errorf("router.datanode[%s].format.must.be.datasource.table", node)
	}
	return DataNode{DataSourceName: segments[0], TableName: segments[1]}, nil
}

// String returns 'datasource.table'.
func (n DataNode) String() string {
	return fmt.Sprintf("%s.%s", n.DataSourceName, n.TableName)
}

// InvalidDataNodeError is returned when a data node names an unconfigured datasource.
type InvalidDataNodeError struct {
	DataNode string
}

// Error implements error.
func (e *InvalidDataNodeError) Error() string {
	return fmt.Sprintf("router.can.not.find.datasource.of.actual.datanode[%s]", e.DataNode)
}
