package query

import (
	"github.com/ncmb/ncmb.go/pkg/models"
)

// Near orders results by distance from point.
func (q *Query) Near(field string, point models.GeoPoint) *Query {
	return q.addCondition(field, OpNearSphere, point)
}

// WithinKilometers matches points at most maxDistance km from center.
func (q *Query) WithinKilometers(field string, center models.GeoPoint, maxDistance float64) *Query {
	q.addCondition(field, OpNearSphere, center)
	return q.addCondition(field, OpMaxDistanceInKM, maxDistance)
}

// WithinMiles matches points at most maxDistance miles from center.
func (q *Query) WithinMiles(field string, center models.GeoPoint, maxDistance float64) *Query {
	q.addCondition(field, OpNearSphere, center)
	return q.addCondition(field, OpMaxDistanceInMiles, maxDistance)
}

// WithinRadians matches points at most maxDistance radians from center.
func (q *Query) WithinRadians(field string, center models.GeoPoint, maxDistance float64) *Query {
	q.addCondition(field, OpNearSphere, center)
	return q.addCondition(field, OpMaxDistanceInRadian, maxDistance)
}

// WithinGeoBox matches points inside the box spanned by southwest and northeast.
func (q *Query) WithinGeoBox(field string, southwest, northeast models.GeoPoint) *Query {
	return q.addCondition(field, OpWithin, map[string]any{
		OpBox: []any{southwest, northeast},
	})
}
