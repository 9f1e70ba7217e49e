package db

import (
	"context"
	"embed"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// SchemaStatements returns the DDL of the dialect split into single statements.
func SchemaStatements(dialect Dialect) ([]string, error) {
	raw, err := schemaFS.ReadFile("schema/" + string(dialect) + ".sql")
	if err != nil {
		return nil, fmt.Errorf("read %s schema: %w", dialect, err)
	}

	var statements []string
	for _, stmt := range strings.Split(string(raw), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements, nil
}

// ApplySchema creates the missing tables. Existing tables are left untouched.
func ApplySchema(ctx context.Context, d *DB) error {
	statements, err := SchemaStatements(d.dialect)
	if err != nil {
		return err
	}

	for i, stmt := range statements {
		if _, err := d.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}

	log.Debugf("schema applied, %d statements", len(statements))
	return nil
}
