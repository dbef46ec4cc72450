// Package fields holds the per-object field map and the set of fields
// modified since the last server response, which together drive partial
// updates.
//
// A Store is owned by a single object and is not safe for concurrent
// mutation; callers serialize access to one Store. Distinct stores are
// independent.
package fields

import (
	"sort"
	"time"

	"github.com/ncmb/ncmb.go/pkg/constants"
	"github.com/ncmb/ncmb.go/pkg/models"
)

var protectedFields = map[string]struct{}{
	constants.FieldObjectID:   {},
	constants.FieldACL:        {},
	constants.FieldCreateDate: {},
	constants.FieldUpdateDate: {},
}

// IsProtected reports whether name is managed by the server. Protected
// fields are never written through Set or Remove.
func IsProtected(name string) bool {
	_, ok := protectedFields[name]
	return ok
}

// Store keeps fields in their normalized wire form (see models.Normalize).
type Store struct {
	className    string
	fields       map[string]any
	modifiedKeys map[string]struct{}
	aclModified  bool
}

// New returns an empty store for a new, not yet saved object.
func New(className string) *Store {
	return &Store{
		className:    className,
		fields:       make(map[string]any),
		modifiedKeys: make(map[string]struct{}),
	}
}

// FromResponse returns a store for an existing object, seeded from a
// decoded server response. Nothing is dirty.
func FromResponse(className string, response map[string]any) *Store {
	s := New(className)
	s.MergeResponse(response)
	return s
}

func (s *Store) ClassName() string {
	return s.className
}

// Get returns the stored form of a field: tagged values come back as their
// tagged maps. A missing field reports false.
func (s *Store) Get(field string) (any, bool) {
	v, ok := s.fields[field]
	return v, ok
}

// Value returns a field decoded through the tagged-value codec, so a stored
// GeoPoint comes back as models.GeoPoint. A missing field yields nil.
func (s *Store) Value(field string) any {
	v, ok := s.fields[field]
	if !ok {
		return nil
	}
	return models.Denormalize(v)
}

// Set stores value under field and marks it dirty. Setting nil removes the
// field; it stays dirty so the next update sends an explicit null.
//
// Set on a protected field (objectId, acl, createDate, updateDate) does
// nothing and reports no error. Use SetACL for the ACL.
func (s *Store) Set(field string, value any) {
	if IsProtected(field) {
		return
	}
	normalized := models.Normalize(value)
	if normalized == nil {
		delete(s.fields, field)
	} else {
		s.fields[field] = normalized
	}
	s.modifiedKeys[field] = struct{}{}
}

// Remove deletes field and marks it dirty. Protected fields are left as is.
func (s *Store) Remove(field string) {
	if IsProtected(field) {
		return
	}
	delete(s.fields, field)
	s.modifiedKeys[field] = struct{}{}
}

// Fields returns a shallow copy of the field map.
func (s *Store) Fields() map[string]any {
	out := make(map[string]any, len(s.fields))
	for k, v := range s.fields {
		out[k] = v
	}
	return out
}

// DirtyKeys returns the modified field names in sorted order. An ACL
// replaced through SetACL is not listed here, since acl is protected, but
// ToPatchJSON still sends it and HasChanges reports it.
func (s *Store) DirtyKeys() []string {
	keys := make([]string, 0, len(s.modifiedKeys))
	for k := range s.modifiedKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) IsDirty(field string) bool {
	_, ok := s.modifiedKeys[field]
	return ok
}

// HasChanges reports whether a patch would carry anything.
func (s *Store) HasChanges() bool {
	return len(s.modifiedKeys) > 0 || s.aclModified
}

// MergeResponse overwrites the keys present in response, protected ones
// included, and clears all dirty state: merged values are server truth.
// Keys absent from response are left untouched.
func (s *Store) MergeResponse(response map[string]any) {
	for k, v := range response {
		normalized := models.Normalize(v)
		if normalized == nil {
			delete(s.fields, k)
			continue
		}
		s.fields[k] = normalized
	}
	s.clearDirty()
}

func (s *Store) clearDirty() {
	s.modifiedKeys = make(map[string]struct{})
	s.aclModified = false
}

// ObjectID returns the server-assigned identifier, or "" for a new object.
func (s *Store) ObjectID() string {
	id, _ := s.fields[constants.FieldObjectID].(string)
	return id
}

// CreateDate returns the server-side creation time.
func (s *Store) CreateDate() (time.Time, bool) {
	return s.serverDate(constants.FieldCreateDate)
}

// UpdateDate returns the server-side time of the last update.
func (s *Store) UpdateDate() (time.Time, bool) {
	return s.serverDate(constants.FieldUpdateDate)
}

// Server timestamps come back either as bare ISO strings or as Date objects.
func (s *Store) serverDate(field string) (time.Time, bool) {
	switch v := s.fields[field].(type) {
	case string:
		d, err := models.ParseDate(v)
		if err != nil {
			return time.Time{}, false
		}
		return d.Time, true
	case map[string]any:
		decoded, ok := models.DecodeAs(v, models.TagDate)
		if !ok {
			return time.Time{}, false
		}
		return decoded.(models.Date).Time, true
	}
	return time.Time{}, false
}

// ACL returns the object's ACL, or nil when none is stored.
func (s *Store) ACL() models.ACL {
	m, ok := s.fields[constants.FieldACL].(map[string]any)
	if !ok {
		return nil
	}
	return models.ACLFromMap(m)
}

// SetACL replaces the ACL. The change is not a dirty key but is carried by
// ToPatchJSON until the next MergeResponse. A nil ACL removes it.
func (s *Store) SetACL(acl models.ACL) {
	if acl == nil {
		delete(s.fields, constants.FieldACL)
	} else {
		s.fields[constants.FieldACL] = acl.ToMap()
	}
	s.aclModified = true
}

// ACLModified reports whether SetACL was called since the last merge.
func (s *Store) ACLModified() bool {
	return s.aclModified
}
