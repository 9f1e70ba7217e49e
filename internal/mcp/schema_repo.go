package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/gymmanager/internal/db"
)

// SchemaRepo provides the gym tables' column metadata (information_schema).
type SchemaRepo interface {
	GymColumns(ctx context.Context) ([]SchemaColumn, error)
}

// SchemaColumn represents one row from information_schema.columns.
type SchemaColumn struct {
	TableName  string
	ColumnName string
	DataType   string
	IsNullable string
	ColumnDef  *string
}

var gymTables = []string{
	"trainer", "nutritionist", "gym_member", "goal", "workout_log", "workout_plan", "progress",
	"meal_plan", "food_log", "message", "invoice", "class_session", "class_attendance",
}

type dbSchemaRepo struct {
	db *db.DB
}

func NewDBSchemaRepo(d *db.DB) SchemaRepo {
	return &dbSchemaRepo{db: d}
}

func (r *dbSchemaRepo) GymColumns(ctx context.Context) ([]SchemaColumn, error) {
	currentSchema := "DATABASE()"
	if r.db.Dialect() == db.Postgres {
		currentSchema = "current_schema()"
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(gymTables)), ", ")
	args := make([]any, len(gymTables))
	for i, t := range gymTables {
		args[i] = t
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT table_name, column_name, data_type, is_nullable, column_default
			FROM information_schema.columns
			WHERE table_schema = `+currentSchema+`
				AND table_name IN (`+placeholders+`)
			ORDER BY table_name, ordinal_position`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query information_schema: %w", err)
	}

	return db.CollectRows(rows, func(s db.Scanner) (SchemaColumn, error) {
		var c SchemaColumn
		err := s.Scan(&c.TableName, &c.ColumnName, &c.DataType, &c.IsNullable, &c.ColumnDef)
		return c, err
	})
}
