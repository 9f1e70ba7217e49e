package pkg

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
// https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html

const (
	mysqlErrNoReferencedRow2    = 1216
	mysqlErrRowIsReferenced2    = 1217
	mysqlErrRowIsReferenced     = 1451
	mysqlErrNoReferencedRow     = 1452
	mysqlErrDupEntry            = 1062
	mysqlErrTruncatedWrongValue = 1292
	mysqlErrBadNull             = 1048
	mysqlErrNoDefaultForField   = 1364
	mysqlErrIncorrectValue      = 1366
	mysqlErrDataTruncated       = 1265

	pgErrUniqueViolation       = "23505"
	pgErrForeignKeyViolation   = "23503"
	pgErrInvalidTextRepresent  = "22P02"
	pgErrInvalidDatetimeFormat = "22007"
	pgErrDatetimeOverflow      = "22008"
	pgErrNotNullViolation      = "23502"
	pgErrCheckViolation        = "23514"
)

// IsUniqueViolationError checks if the error is a unique violation error
func IsUniqueViolationError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrUniqueViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrDupEntry
	}
	return false
}

// IsForeignKeyViolationError checks if the error is a foreign key violation error
func IsForeignKeyViolationError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrForeignKeyViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrNoReferencedRow, mysqlErrNoReferencedRow2,
			mysqlErrRowIsReferenced, mysqlErrRowIsReferenced2:
			return true
		}
	}
	return false
}

// IsInvalidValueError checks if the database rejected a value for its column,
// e.g. a malformed date string or a NULL in a NOT NULL column.
func IsInvalidValueError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrInvalidTextRepresent, pgErrInvalidDatetimeFormat, pgErrDatetimeOverflow,
			pgErrNotNullViolation, pgErrCheckViolation:
			return true
		}
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrTruncatedWrongValue, mysqlErrBadNull, mysqlErrNoDefaultForField,
			mysqlErrIncorrectValue, mysqlErrDataTruncated:
			return true
		}
	}
	return false
}
