// Package query builds the search conditions of a class query and turns
// them into request query-string parameters.
//
//	q := query.New("Post").
//		EqualTo("author", "alice").
//		GreaterThan("score", 10).
//		LessThan("score", 100).
//		OrderByDesc("createDate").
//		Limit(20)
//
// produces the where clause {"author":"alice","score":{"$gt":10,"$lt":100}}.
package query

import (
	"fmt"
	"strings"

	"github.com/ncmb/ncmb.go/pkg/constants"
	"github.com/ncmb/ncmb.go/pkg/models"
)

// Query-string parameter names.
const (
	ParamWhere   = "where"
	ParamOrder   = "order"
	ParamSkip    = "skip"
	ParamLimit   = "limit"
	ParamInclude = "include"
	ParamCount   = "count"
)

// Query represents a search over one class.
type Query struct {
	className string
	where     map[string]any
	order     []string
	skipVal   *int
	limitVal  *int
	include   []string
	isCount   bool
}

// New creates an empty query over className.
func New(className string) *Query {
	return &Query{
		className: className,
		where:     make(map[string]any),
	}
}

// Or creates a query matching any of the given queries. The result searches
// the class of the first query.
func Or(queries ...*Query) *Query {
	className := ""
	conditions := make([]any, 0, len(queries))
	for _, q := range queries {
		if q == nil {
			continue
		}
		if className == "" {
			className = q.className
		}
		conditions = append(conditions, q.Where())
	}

	q := New(className)
	q.where[OpOr] = conditions
	return q
}

func (q *Query) ClassName() string {
	return q.className
}

// Where returns a deep copy of the where clause.
func (q *Query) Where() map[string]any {
	return deepCopy(q.where).(map[string]any)
}

// OrderBy sorts ascending by field. Repeated calls add secondary keys.
func (q *Query) OrderBy(field string) *Query {
	q.order = append(q.order, field)
	return q
}

// OrderByDesc sorts descending by field.
func (q *Query) OrderByDesc(field string) *Query {
	q.order = append(q.order, "-"+field)
	return q
}

// Order returns the sort keys, descending ones prefixed with "-".
func (q *Query) Order() []string {
	return append([]string(nil), q.order...)
}

func (q *Query) Skip(n int) *Query {
	q.skipVal = &n
	return q
}

func (q *Query) Limit(n int) *Query {
	q.limitVal = &n
	return q
}

// Include asks the server to expand the pointer stored in field.
func (q *Query) Include(field string) *Query {
	q.include = append(q.include, field)
	return q
}

// CountQuery derives the query used to count matches: same conditions,
// limit 0, no order and no skip.
func (q *Query) CountQuery() *Query {
	zero := 0
	return &Query{
		className: q.className,
		where:     q.Where(),
		limitVal:  &zero,
		isCount:   true,
	}
}

func (q *Query) IsCount() bool {
	return q.isCount
}

// Params returns the request query parameters for the query. The where
// clause is JSON text; it is omitted when empty.
func (q *Query) Params() (map[string]any, error) {
	params := make(map[string]any)
	if len(q.where) > 0 {
		data, err := models.JSONMarshaler{}.Marshal(q.where)
		if err != nil {
			return nil, fmt.Errorf("%w: where: %w", constants.ErrEncodeQuery, err)
		}
		params[ParamWhere] = string(data)
	}
	if len(q.order) > 0 {
		params[ParamOrder] = strings.Join(q.order, ",")
	}
	if q.skipVal != nil {
		params[ParamSkip] = *q.skipVal
	}
	if q.limitVal != nil {
		params[ParamLimit] = *q.limitVal
	}
	if len(q.include) > 0 {
		params[ParamInclude] = strings.Join(q.include, ",")
	}
	if q.isCount {
		params[ParamCount] = 1
	}
	return params, nil
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = deepCopy(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopy(e)
		}
		return out
	}
	return v
}
