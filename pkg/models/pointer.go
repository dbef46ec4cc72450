package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Pointer references another stored object.
type Pointer struct {
	ClassName string
	ObjectID  string
}

func NewPointer(className, objectID string) Pointer {
	return Pointer{ClassName: className, ObjectID: objectID}
}

func (p Pointer) Tag() Tag {
	return TagPointer
}

func (p Pointer) Encode() map[string]any {
	return map[string]any{
		KeyType:      string(TagPointer),
		KeyClassName: p.ClassName,
		KeyObjectID:  p.ObjectID,
	}
}

func (p Pointer) String() string {
	return fmt.Sprintf("%s:%s", p.ClassName, p.ObjectID)
}

func (p Pointer) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Encode())
}

func (p *Pointer) UnmarshalJSON(data []byte) error {
	v, err := unmarshalTagged(data, TagPointer)
	if err != nil {
		return err
	}
	*p = v.(Pointer)
	return nil
}

func decodePointer(m map[string]any) (any, bool) {
	if !hasDiscriminator(m, KeyType, TagPointer) {
		return nil, false
	}
	className, ok := m[KeyClassName].(string)
	if !ok {
		return nil, false
	}
	objectID, ok := m[KeyObjectID].(string)
	if !ok {
		return nil, false
	}
	return Pointer{ClassName: className, ObjectID: objectID}, true
}

// Relation marks a field as a to-many relation to objects of ClassName.
type Relation struct {
	ClassName string
}

func NewRelation(className string) Relation {
	return Relation{ClassName: className}
}

func (r Relation) Tag() Tag {
	return TagRelation
}

func (r Relation) Encode() map[string]any {
	return map[string]any{
		KeyType:      string(TagRelation),
		KeyClassName: r.ClassName,
	}
}

func (r Relation) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Encode())
}

func (r *Relation) UnmarshalJSON(data []byte) error {
	v, err := unmarshalTagged(data, TagRelation)
	if err != nil {
		return err
	}
	*r = v.(Relation)
	return nil
}

func decodeRelation(m map[string]any) (any, bool) {
	if !hasDiscriminator(m, KeyType, TagRelation) {
		return nil, false
	}
	className, ok := m[KeyClassName].(string)
	if !ok {
		return nil, false
	}
	return Relation{ClassName: className}, true
}
