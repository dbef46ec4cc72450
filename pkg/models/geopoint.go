package models

import (
	"github.com/goccy/go-json"
)

type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

func NewGeoPoint(latitude, longitude float64) GeoPoint {
	return GeoPoint{
		Latitude: latitude, Longitude: longitude,
	}
}

func (gp GeoPoint) GetCoordinates() [2]float64 {
	return [2]float64{gp.Latitude, gp.Longitude}
}

func (gp GeoPoint) Tag() Tag {
	return TagGeoPoint
}

func (gp GeoPoint) Encode() map[string]any {
	return map[string]any{
		KeyType:      string(TagGeoPoint),
		KeyLatitude:  gp.Latitude,
		KeyLongitude: gp.Longitude,
	}
}

func (gp GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(gp.Encode())
}

func (gp *GeoPoint) UnmarshalJSON(data []byte) error {
	v, err := unmarshalTagged(data, TagGeoPoint)
	if err != nil {
		return err
	}
	*gp = v.(GeoPoint)
	return nil
}

// Coordinates may arrive as integers when they have no fractional part.
func decodeGeoPoint(m map[string]any) (any, bool) {
	if !hasDiscriminator(m, KeyType, TagGeoPoint) {
		return nil, false
	}
	lat, ok := toFloat64(m[KeyLatitude])
	if !ok {
		return nil, false
	}
	lon, ok := toFloat64(m[KeyLongitude])
	if !ok {
		return nil, false
	}
	return GeoPoint{Latitude: lat, Longitude: lon}, true
}
