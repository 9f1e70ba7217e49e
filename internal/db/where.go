package db

import "strings"

// Filter collects optional AND-ed conditions of a list query.
type Filter struct {
	conds []string
	args  []any
}

func (f *Filter) Add(cond string, args ...any) *Filter {
	f.conds = append(f.conds, cond)
	f.args = append(f.args, args...)
	return f
}

// Clause renders " WHERE a AND b", or "" when there are no conditions.
func (f *Filter) Clause() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// And renders " AND a AND b" for queries that already carry a WHERE.
func (f *Filter) And() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " AND " + strings.Join(f.conds, " AND ")
}

func (f *Filter) Args(leading ...any) []any {
	return append(leading, f.args...)
}
