package fields

import (
	"github.com/ncmb/ncmb.go/pkg/models"
)

func (s *Store) String(field string) (string, bool) {
	v, ok := s.fields[field].(string)
	return v, ok
}

func (s *Store) Bool(field string) (bool, bool) {
	v, ok := s.fields[field].(bool)
	return v, ok
}

// Int returns an integer field. Floats are truncated.
func (s *Store) Int(field string) (int64, bool) {
	v, ok := s.fields[field]
	if !ok {
		return 0, false
	}
	return models.ToInt64(v)
}

func (s *Store) Float(field string) (float64, bool) {
	v, ok := s.fields[field]
	if !ok {
		return 0, false
	}
	return models.ToFloat64(v)
}

// List returns an array field with its elements decoded.
func (s *Store) List(field string) ([]any, bool) {
	v, ok := s.Value(field).([]any)
	return v, ok
}

// Map returns an object field that is not a tagged value, decoded.
func (s *Store) Map(field string) (map[string]any, bool) {
	v, ok := s.Value(field).(map[string]any)
	return v, ok
}

func (s *Store) Date(field string) (models.Date, bool) {
	v, ok := s.Value(field).(models.Date)
	return v, ok
}

func (s *Store) GeoPoint(field string) (models.GeoPoint, bool) {
	v, ok := s.Value(field).(models.GeoPoint)
	return v, ok
}

func (s *Store) Pointer(field string) (models.Pointer, bool) {
	v, ok := s.Value(field).(models.Pointer)
	return v, ok
}

func (s *Store) Relation(field string) (models.Relation, bool) {
	v, ok := s.Value(field).(models.Relation)
	return v, ok
}

// Increment queues a server-side increment of field.
func (s *Store) Increment(field string, amount int64) {
	s.Set(field, models.NewIncrement(amount))
}

// AddToList queues appending objects to an array field.
func (s *Store) AddToList(field string, objects ...any) {
	s.Set(field, models.NewAdd(objects...))
}

// AddUniqueToList queues appending objects not already in an array field.
func (s *Store) AddUniqueToList(field string, objects ...any) {
	s.Set(field, models.NewAddUnique(objects...))
}

// RemoveFromList queues removing objects from an array field.
func (s *Store) RemoveFromList(field string, objects ...any) {
	s.Set(field, models.NewRemove(objects...))
}

// AddRelation queues adding pointers to a relation field.
func (s *Store) AddRelation(field string, pointers ...models.Pointer) {
	s.Set(field, models.NewAddRelation(pointers...))
}

// RemoveRelation queues removing pointers from a relation field.
func (s *Store) RemoveRelation(field string, pointers ...models.Pointer) {
	s.Set(field, models.NewRemoveRelation(pointers...))
}
