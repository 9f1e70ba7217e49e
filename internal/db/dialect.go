package db

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/pkg"
)

// Rebind converts ? placeholders to $N for postgres. Quoted literals are left alone.
func Rebind(dialect Dialect, query string) string {
	if dialect != Postgres || !strings.Contains(query, "?") {
		return query
	}

	var (
		sb       strings.Builder
		n        int
		inQuotes bool
	)
	sb.Grow(len(query) + 8)
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuotes = !inQuotes
			sb.WriteByte(c)
		case c == '?' && !inQuotes:
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// classify maps driver errors of both dialects onto the gym sentinel errors.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case pkg.IsForeignKeyViolationError(err):
		return fmt.Errorf("%w: %w", gym.ErrInvalidReference, err)
	case pkg.IsUniqueViolationError(err):
		return fmt.Errorf("%w: %w", gym.ErrDuplicate, err)
	case pkg.IsInvalidValueError(err):
		return fmt.Errorf("%w: %w", gym.ErrInvalidValue, err)
	default:
		return err
	}
}
