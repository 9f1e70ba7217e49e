package db

import (
	"strings"
)

// Changes is the ordered SET list of a partial update, built from the fields
// present in a request body.
type Changes struct {
	columns []string
	args    []any
}

func (c *Changes) Set(column string, value any) *Changes {
	c.columns = append(c.columns, column)
	c.args = append(c.args, value)
	return c
}

// SetIf adds the column only when the field was sent.
func (c *Changes) SetIf(present bool, column string, value any) *Changes {
	if present {
		c.Set(column, value)
	}
	return c
}

func (c *Changes) Empty() bool {
	return c == nil || len(c.columns) == 0
}

func (c *Changes) Columns() []string {
	if c == nil {
		return nil
	}
	return c.columns
}

// UpdateStatement renders "UPDATE table SET a = ?, b = ? WHERE <where>" and its args.
func UpdateStatement(table string, c *Changes, where string, whereArgs ...any) (string, []any) {
	sets := make([]string, 0, len(c.columns))
	for _, col := range c.columns {
		sets = append(sets, col+" = ?")
	}

	args := make([]any, 0, len(c.args)+len(whereArgs))
	args = append(args, c.args...)
	args = append(args, whereArgs...)

	return "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE " + where, args
}
