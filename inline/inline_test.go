/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package inline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	{
		got := Split("ds0.t_order, ds${0..1}.t_${[0, 1]}")
		assert.Equal(t, []string{"ds0.t_order", "ds${0..1}.t_${[0, 1]}"}, got)
	}
	{
		got := Split("ds_${0, 1}.t_${2,3}, x")
		assert.Equal(t, []string{"ds_${0, 1}.t_${2,3}", "x"}, got)
	}
	{
		assert.Empty(t, Split(" , "))
	}
}

func TestEvaluate(t *testing.T) {
	{
		got, err := Evaluate("ds${0..1}.t_order_${0..1}")
		assert.Nil(t, err)
		want := []string{"ds0.t_order_0", "ds0.t_order_1", "ds1.t_order_0", "ds1.t_order_1"}
		assert.Equal(t, want, got)
	}
	{
		got, err := Evaluate("t_${3..1}")
		assert.Nil(t, err)
		assert.Equal(t, []string{"t_3", "t_2", "t_1"}, got)
	}
	{
		got, err := Evaluate("ds_$->{['a', 'b']}.t")
		assert.Nil(t, err)
		assert.Equal(t, []string{"ds_a.t", "ds_b.t"}, got)
	}
	{
		got, err := Evaluate("plain")
		assert.Nil(t, err)
		assert.Equal(t, []string{"plain"}, got)
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []string{
		"ds${0..1",
		"ds${}",
		"ds${a..1}",
		"ds${0..b}",
		"ds${a,,b}",
	}
	for _, test := range tests {
		_, err := Evaluate(test)
		assert.NotNil(t, err, test)
	}
}

func TestSplitAndEvaluate(t *testing.T) {
	got, err := SplitAndEvaluate("ds0.t_config, ds${1..2}.t_${0, 1}")
	assert.Nil(t, err)
	want := []string{"ds0.t_config", "ds1.t_0", "ds1.t_1", "ds2.t_0", "ds2.t_1"}
	assert.Equal(t, want, got)
}
