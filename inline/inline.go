/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

// Package inline expands the data node templates such as "ds${0..1}.t_order_${0..1}".
//
// A template is a comma separated list of expressions. Each expression may hold
// placeholders written as ${...} or $->{...}:
//   ${0..3}       integer range, inclusive, ascending or descending
//   ${a, b, c}    list, optionally bracketed and quoted as ${['a', 'b']}
// An expression expands to the cartesian product of its placeholders, in textual order.
package inline

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type part struct {
	values []string
}

// Split splits the template by the commas outside of placeholders, items are trimmed.
func Split(template string) []string {
	var result []string
	var item strings.Builder
	depth := 0
	for i := 0; i < len(template); i++ {
		ch := template[i]
		switch {
		case ch == '{' && depth == 0 && isPlaceholderOpen(template, i):
			depth++
		case ch == '{' && depth > 0:
			depth++
		case ch == '}' && depth > 0:
			depth--
		case ch == ',' && depth == 0:
			if s := strings.TrimSpace(item.String()); s != "" {
				result = append(result, s)
			}
			item.Reset()
			continue
		}
		item.WriteByte(ch)
	}
	if s := strings.TrimSpace(item.String()); s != "" {
		result = append(result, s)
	}
	return result
}

func isPlaceholderOpen(s string, brace int) bool {
	return (brace >= 1 && s[brace-1] == '$') || (brace >= 3 && s[brace-3:brace] == "$->")
}

// Evaluate expands one expression.
func Evaluate(expression string) ([]string, error) {
	parts, err := parse(expression)
	if err != nil {
		return nil, err
	}
	result := []string{""}
	for _, p := range parts {
		next := make([]string, 0, len(result)*len(p.values))
		for _, prefix := range result {
			for _, v := range p.values {
				next = append(next, prefix+v)
			}
		}
		result = next
	}
	return result, nil
}

// SplitAndEvaluate expands every expression of the template, in order.
func SplitAndEvaluate(template string) ([]string, error) {
	var result []string
	for _, expression := range Split(template) {
		values, err := Evaluate(expression)
		if err != nil {
			return nil, err
		}
		result = append(result, values...)
	}
	return result, nil
}

func parse(expression string) ([]part, error) {
	var parts []part
	rest := expression
	for {
		begin, width := findPlaceholder(rest)
		if begin < 0 {
			if rest != "" {
				parts = append(parts, part{values: []string{rest}})
			}
			return parts, nil
		}
		if begin > 0 {
			parts = append(parts, part{values: []string{rest[:begin]}})
		}
		end := strings.IndexByte(rest[begin+width:], '}')
		if end < 0 {
			return nil, errors.Errorf("inline.expression[%s].placeholder.not.closed", expression)
		}
		body := rest[begin+width : begin+width+end]
		values, err := expand(body)
		if err != nil {
			return nil, errors.Wrapf(err, "inline.expression[%s]", expression)
		}
		parts = append(parts, part{values: values})
		rest = rest[begin+width+end+1:]
	}
}

// findPlaceholder returns the index and the opener width of the first placeholder.
func findPlaceholder(s string) (int, int) {
	dollar := strings.Index(s, "${")
	arrow := strings.Index(s, "$->{")
	switch {
	case dollar < 0 && arrow < 0:
		return -1, 0
	case arrow < 0 || (dollar >= 0 && dollar < arrow):
		return dollar, 2
	default:
		return arrow, 4
	}
}

func expand(body string) ([]string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, errors.New("placeholder.is.empty")
	}
	if idx := strings.Index(body, ".."); idx >= 0 {
		from, err := strconv.Atoi(strings.TrimSpace(body[:idx]))
		if err != nil {
			return nil, errors.Errorf("placeholder.range[%s].start.is.not.integer", body)
		}
		to, err := strconv.Atoi(strings.TrimSpace(body[idx+2:]))
		if err != nil {
			return nil, errors.Errorf("placeholder.range[%s].end.is.not.integer", body)
		}
		step := 1
		if to < from {
			step = -1
		}
		var values []string
		for i := from; ; i += step {
			values = append(values, strconv.Itoa(i))
			if i == to {
				break
			}
		}
		return values, nil
	}
	if strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]") {
		body = body[1 : len(body)-1]
	}
	var values []string
	for _, item := range strings.Split(body, ",") {
		item = strings.Trim(strings.TrimSpace(item), `'"`)
		if item == "" {
			return nil, errors.Errorf("placeholder.list[%s].has.empty.item", body)
		}
		values = append(values, item)
	}
	return values, nil
}
