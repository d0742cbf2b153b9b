// Package filter builds composable WHERE predicates for list queries. The
// artists and contents endpoints share the same search/filter/paginate read
// pattern, so the clause construction lives here once instead of as ad hoc
// per-entity SQL. Predicates always bind values as query parameters.
package filter

import (
	"strings"

	"gorm.io/gorm"
)

// Predicate narrows a GORM query. An empty predicate leaves the query
// untouched and therefore matches all rows.
type Predicate interface {
	Apply(tx *gorm.DB) *gorm.DB
}

type noFilter struct{}

func (noFilter) Apply(tx *gorm.DB) *gorm.DB { return tx }

// NoFilter matches all rows.
func NoFilter() Predicate { return noFilter{} }

type textMatch struct {
	term    string
	columns []string
}

func (p textMatch) Apply(tx *gorm.DB) *gorm.DB {
	pattern := "%" + strings.ToLower(p.term) + "%"
	clauses := make([]string, len(p.columns))
	args := make([]interface{}, len(p.columns))
	for i, col := range p.columns {
		clauses[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	return tx.Where(strings.Join(clauses, " OR "), args...)
}

// TextMatch matches rows whose listed columns contain term, case-insensitive.
// An empty term degrades to NoFilter.
func TextMatch(term string, columns ...string) Predicate {
	if strings.TrimSpace(term) == "" || len(columns) == 0 {
		return NoFilter()
	}
	return textMatch{term: term, columns: columns}
}

type exactMatch struct {
	column string
	value  string
}

func (p exactMatch) Apply(tx *gorm.DB) *gorm.DB {
	return tx.Where(p.column+" = ?", p.value)
}

// ExactMatch matches rows whose column equals value. An empty value degrades
// to NoFilter.
func ExactMatch(column, value string) Predicate {
	if value == "" {
		return NoFilter()
	}
	return exactMatch{column: column, value: value}
}

type and struct {
	preds []Predicate
}

func (p and) Apply(tx *gorm.DB) *gorm.DB {
	for _, pred := range p.preds {
		tx = pred.Apply(tx)
	}
	return tx
}

// And combines predicates; each one further narrows the query.
func And(preds ...Predicate) Predicate { return and{preds: preds} }
