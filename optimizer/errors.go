/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package optimizer

import (
	"fmt"
)

// UnresolvedIndexTableError is returned when the table of a dropped index is unknown.
type UnresolvedIndexTableError struct {
	IndexName string
}

func (e *UnresolvedIndexTableError) Error() string {
	return fmt.Sprintf("optimizer.can.not.find.table.of.index[%s]", e.IndexName)
}

// UnsupportedPredicateShapeError is returned when an encrypted column is used
// in a predicate that can not be rewritten.
type UnsupportedPredicateShapeError struct {
	Table  string
	Column string
	Shape  string
}

func (e *UnsupportedPredicateShapeError) Error() string {
	return fmt.Sprintf("optimizer.encrypt.column[%s.%s].unsupported.predicate[%s]", e.Table, e.Column, e.Shape)
}
