package query

import (
	"strings"

	"github.com/ncmb/ncmb.go/pkg/models"
)

// Comparison operators understood by the where clause.
const (
	OpNotEqual            = "$ne"
	OpLessThan            = "$lt"
	OpGreaterThan         = "$gt"
	OpLessThanOrEqual     = "$lte"
	OpGreaterThanOrEqual  = "$gte"
	OpIn                  = "$in"
	OpNotIn               = "$nin"
	OpExists              = "$exists"
	OpRegex               = "$regex"
	OpInArray             = "$inArray"
	OpNotInArray          = "$ninArray"
	OpAll                 = "$all"
	OpOr                  = "$or"
	OpNearSphere          = "$nearSphere"
	OpMaxDistanceInKM     = "$maxDistanceInKilometers"
	OpMaxDistanceInMiles  = "$maxDistanceInMiles"
	OpMaxDistanceInRadian = "$maxDistanceInRadians"
	OpWithin              = "$within"
	OpBox                 = "$box"
	OpInQuery             = "$inQuery"
	OpRelatedTo           = "$relatedTo"
)

// EqualTo matches objects whose field equals value. It replaces any
// condition previously set on field.
func (q *Query) EqualTo(field string, value any) *Query {
	q.where[field] = models.Normalize(value)
	return q
}

func (q *Query) NotEqualTo(field string, value any) *Query {
	return q.addCondition(field, OpNotEqual, value)
}

func (q *Query) LessThan(field string, value any) *Query {
	return q.addCondition(field, OpLessThan, value)
}

func (q *Query) GreaterThan(field string, value any) *Query {
	return q.addCondition(field, OpGreaterThan, value)
}

func (q *Query) LessThanOrEqualTo(field string, value any) *Query {
	return q.addCondition(field, OpLessThanOrEqual, value)
}

func (q *Query) GreaterThanOrEqualTo(field string, value any) *Query {
	return q.addCondition(field, OpGreaterThanOrEqual, value)
}

// ContainedIn matches objects whose field equals one of values.
func (q *Query) ContainedIn(field string, values ...any) *Query {
	return q.addCondition(field, OpIn, values)
}

// NotContainedIn matches objects whose field equals none of values.
func (q *Query) NotContainedIn(field string, values ...any) *Query {
	return q.addCondition(field, OpNotIn, values)
}

// Exists matches objects that have (or, with false, lack) field.
func (q *Query) Exists(field string, exists bool) *Query {
	return q.addCondition(field, OpExists, exists)
}

// MatchesPattern matches string fields against a regular expression.
func (q *Query) MatchesPattern(field, pattern string) *Query {
	return q.addCondition(field, OpRegex, pattern)
}

// ContainedInArray matches array fields holding any of values.
func (q *Query) ContainedInArray(field string, values ...any) *Query {
	return q.addCondition(field, OpInArray, values)
}

// NotContainedInArray matches array fields holding none of values.
func (q *Query) NotContainedInArray(field string, values ...any) *Query {
	return q.addCondition(field, OpNotInArray, values)
}

// ContainsAllInArray matches array fields holding every one of values.
func (q *Query) ContainsAllInArray(field string, values ...any) *Query {
	return q.addCondition(field, OpAll, values)
}

// InQuery matches objects whose pointer field references an object
// matched by sub.
func (q *Query) InQuery(field string, sub *Query) *Query {
	return q.addCondition(field, OpInQuery, map[string]any{
		ParamWhere:          sub.Where(),
		models.KeyClassName: sub.className,
	})
}

// RelatedTo matches the objects held in the relation field key of owner.
func (q *Query) RelatedTo(owner models.Pointer, key string) *Query {
	q.where[OpRelatedTo] = map[string]any{
		"object": owner.Encode(),
		"key":    key,
	}
	return q
}

// addCondition merges op into the operator object of field so that several
// operators on one field compose. A bare value left by EqualTo is replaced.
func (q *Query) addCondition(field, op string, value any) *Query {
	cond, ok := q.where[field].(map[string]any)
	if !ok || !isOperatorMap(cond) {
		cond = make(map[string]any)
	}
	cond[op] = models.Normalize(value)
	q.where[field] = cond
	return q
}

func isOperatorMap(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for k := range m {
		if !strings.HasPrefix(k, "$") {
			return false
		}
	}
	return true
}
