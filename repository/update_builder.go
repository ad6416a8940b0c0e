package repository

import (
	"strings"

	"TaskBoardService/models"
)

// BuildUpdate assembles a partial UPDATE for one row.
//
// columns fixes the order in which assignments are emitted; a column gets an
// assignment only when it is a key of changes, and keys of changes that are
// not in columns are ignored. Values are always bound, never spliced into
// the statement. When no assignment results, BuildUpdate returns
// models.ErrNoUpdates and no statement.
//
// updated_at is refreshed alongside the supplied columns, and the single
// predicate is on id.
func BuildUpdate(d Dialect, table string, columns []string, changes map[string]any, id int64) (string, []any, error) {
	var (
		sets []string
		args []any
	)
	for _, col := range columns {
		v, ok := changes[col]
		if !ok {
			continue
		}
		args = append(args, v)
		sets = append(sets, col+" = "+d.Placeholder(len(args)))
	}
	if len(sets) == 0 {
		return "", nil, models.ErrNoUpdates
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(table)
	b.WriteString(" SET ")
	b.WriteString(strings.Join(sets, ", "))
	b.WriteString(" WHERE id = ")
	b.WriteString(d.Placeholder(len(args)))
	return b.String(), args, nil
}
