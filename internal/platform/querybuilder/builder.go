// Package querybuilder assembles parameterized Postgres statements for the
// repository layer. Builders collect clauses fluently and render a single SQL
// string with $n placeholders via ToSQL.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// stmt accumulates SQL text together with its bound arguments. Placeholders
// are numbered in the order values are bound.
type stmt struct {
	buf  strings.Builder
	args []any
	next int
}

func newStmt() *stmt {
	return &stmt{next: 1}
}

func (s *stmt) raw(text string) {
	s.buf.WriteString(text)
}

// bind appends a value and writes its $n placeholder.
func (s *stmt) bind(value any) {
	s.buf.WriteString("$" + strconv.Itoa(s.next))
	s.args = append(s.args, value)
	s.next++
}

// expand writes expr, replacing each '?' with the next placeholder bound to
// the matching value. Surplus '?' runes are kept verbatim.
func (s *stmt) expand(expr string, values []any) {
	if len(values) == 0 {
		s.buf.WriteString(expr)
		return
	}
	used := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] != '?' || used >= len(values) {
			s.buf.WriteByte(expr[i])
			continue
		}
		s.bind(values[used])
		used++
	}
}

// Condition is a single WHERE predicate. Conditions are combined with AND.
type Condition interface {
	write(s *stmt)
}

type eqCondition struct {
	column string
	value  any
}

// Eq matches rows where column equals value.
func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) write(s *stmt) {
	s.raw(c.column)
	s.raw(" = ")
	s.bind(c.value)
}

type isNullCondition struct {
	column string
}

// IsNull matches rows where column is NULL. Repositories use it to keep
// soft-deleted rows out of reads.
func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func (c isNullCondition) write(s *stmt) {
	s.raw(c.column)
	s.raw(" IS NULL")
}

func writeWhere(s *stmt, conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	s.raw(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			s.raw(" AND ")
		}
		c.write(s)
	}
}

// SelectBuilder renders a SELECT statement.
type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

// Select starts a SELECT over the given columns.
func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

// Limit caps the row count. Values <= 0 leave the statement unbounded.
func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	s := newStmt()
	s.raw("SELECT ")
	s.raw(strings.Join(b.columns, ", "))
	s.raw(" FROM ")
	s.raw(b.table)
	writeWhere(s, b.where)
	if len(b.orderBy) > 0 {
		s.raw(" ORDER BY ")
		s.raw(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		s.raw(" LIMIT ")
		s.raw(strconv.Itoa(b.limit))
	}

	return s.buf.String(), s.args, nil
}

// InsertBuilder renders a multi-row INSERT statement.
type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

// Values adds one row. Call it once per row; each call must supply as many
// values as there are columns.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends trailing SQL such as a RETURNING clause.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	s := newStmt()
	s.raw("INSERT INTO ")
	s.raw(b.table)
	s.raw(" (")
	s.raw(strings.Join(b.columns, ", "))
	s.raw(") VALUES ")

	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			s.raw(", ")
		}
		s.raw("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				s.raw(", ")
			}
			s.bind(value)
		}
		s.raw(")")
	}

	if b.suffix != "" {
		s.raw(" ")
		s.expand(b.suffix, nil)
	}

	return s.buf.String(), s.args, nil
}

type setClause struct {
	column   string
	value    any
	expr     string
	exprArgs []any
	isExpr   bool
}

// UpdateBuilder renders an UPDATE statement.
type UpdateBuilder struct {
	table string
	sets  []setClause
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// Set assigns column to a bound value.
func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

// SetExpr assigns column to a raw SQL expression, with '?' placeholders in
// the expression bound to args in order.
func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{
		column:   column,
		expr:     expr,
		exprArgs: args,
		isExpr:   true,
	})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	s := newStmt()
	s.raw("UPDATE ")
	s.raw(b.table)
	s.raw(" SET ")

	for i, set := range b.sets {
		if i > 0 {
			s.raw(", ")
		}
		s.raw(set.column)
		s.raw(" = ")
		if set.isExpr {
			s.expand(set.expr, set.exprArgs)
			continue
		}
		s.bind(set.value)
	}

	writeWhere(s, b.where)

	return s.buf.String(), s.args, nil
}

// DeleteBuilder renders a DELETE statement. ToSQL refuses to render without
// at least one condition.
type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("delete conditions are required")
	}

	s := newStmt()
	s.raw("DELETE FROM ")
	s.raw(b.table)
	writeWhere(s, b.where)

	return s.buf.String(), s.args, nil
}
