package backend

import (
	"net/url"
	"strings"
)

// Filter operators understood by the hosted store's query DSL.
const (
	OpEq  = "eq"
	OpGte = "gte"
	OpLte = "lte"
)

// Filter is a single column constraint. Filters on a query are ANDed.
type Filter struct {
	Column string
	Op     string
	Value  string
}

// Order is a single ordering term.
type Order struct {
	Column    string
	Ascending bool
}

// Query describes a structured request against one table: equality and
// range constraints plus ordering, mirroring the hosted store's filter DSL
// (e.g. ?type=eq.income&order=transaction_date.desc).
type Query struct {
	filters []Filter
	orders  []Order
}

// NewQuery returns an empty query.
func NewQuery() Query {
	return Query{}
}

// Eq adds an equality constraint.
func (q Query) Eq(column, value string) Query {
	q.filters = append(q.filters, Filter{Column: column, Op: OpEq, Value: value})
	return q
}

// Gte adds an inclusive lower bound.
func (q Query) Gte(column, value string) Query {
	q.filters = append(q.filters, Filter{Column: column, Op: OpGte, Value: value})
	return q
}

// Lte adds an inclusive upper bound.
func (q Query) Lte(column, value string) Query {
	q.filters = append(q.filters, Filter{Column: column, Op: OpLte, Value: value})
	return q
}

// OrderBy adds an ordering term. Terms are applied in the order given.
func (q Query) OrderBy(column string, ascending bool) Query {
	q.orders = append(q.orders, Order{Column: column, Ascending: ascending})
	return q
}

// Encode renders the query as URL parameters.
func (q Query) Encode() url.Values {
	values := url.Values{}
	values.Set("select", "*")
	// Add, not Set: a range filter puts two constraints on one column.
	for _, f := range q.filters {
		values.Add(f.Column, f.Op+"."+f.Value)
	}
	if len(q.orders) > 0 {
		terms := make([]string, 0, len(q.orders))
		for _, o := range q.orders {
			direction := "desc"
			if o.Ascending {
				direction = "asc"
			}
			terms = append(terms, o.Column+"."+direction)
		}
		values.Set("order", strings.Join(terms, ","))
	}
	return values
}
