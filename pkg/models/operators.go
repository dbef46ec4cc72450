package models

import (
	"fmt"

	"github.com/ncmb/ncmb.go/pkg/constants"
)

// Increment adds Amount to a numeric field on the server. Amount is either
// an int64 or a float64. A non-numeric Amount is encoded as given and
// rejected by CheckOperations.
type Increment struct {
	Amount any
}

func NewIncrement(amount int64) Increment {
	return Increment{Amount: amount}
}

func NewIncrementFloat(amount float64) Increment {
	return Increment{Amount: amount}
}

func (i Increment) Tag() Tag {
	return TagIncrement
}

func (i Increment) Encode() map[string]any {
	amount, ok := normalizeNumber(i.Amount)
	if !ok {
		amount = i.Amount
	}
	return map[string]any{
		KeyOp:     string(TagIncrement),
		KeyAmount: amount,
	}
}

func decodeIncrement(m map[string]any) (any, bool) {
	if !hasDiscriminator(m, KeyOp, TagIncrement) {
		return nil, false
	}
	amount, ok := normalizeNumber(m[KeyAmount])
	if !ok {
		return nil, false
	}
	return Increment{Amount: amount}, true
}

// CheckOperations walks a normalized value and reports the first Increment
// whose amount is not a number.
func CheckOperations(v any) error {
	switch t := v.(type) {
	case map[string]any:
		if hasDiscriminator(t, KeyOp, TagIncrement) {
			if _, ok := normalizeNumber(t[KeyAmount]); !ok {
				return fmt.Errorf("%w: increment amount %v (%T) is not a number",
					constants.ErrInvalidOperation, t[KeyAmount], t[KeyAmount])
			}
			return nil
		}
		for k, e := range t {
			if err := CheckOperations(e); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
	case []any:
		for _, e := range t {
			if err := CheckOperations(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// Add appends Objects to an array field.
type Add struct {
	Objects []any
}

func NewAdd(objects ...any) Add {
	return Add{Objects: objects}
}

func (a Add) Tag() Tag {
	return TagAdd
}

func (a Add) Encode() map[string]any {
	return encodeObjects(TagAdd, a.Objects)
}

// AddUnique appends the Objects not already present in an array field.
type AddUnique struct {
	Objects []any
}

func NewAddUnique(objects ...any) AddUnique {
	return AddUnique{Objects: objects}
}

func (a AddUnique) Tag() Tag {
	return TagAddUnique
}

func (a AddUnique) Encode() map[string]any {
	return encodeObjects(TagAddUnique, a.Objects)
}

// Remove deletes every occurrence of Objects from an array field.
type Remove struct {
	Objects []any
}

func NewRemove(objects ...any) Remove {
	return Remove{Objects: objects}
}

func (r Remove) Tag() Tag {
	return TagRemove
}

func (r Remove) Encode() map[string]any {
	return encodeObjects(TagRemove, r.Objects)
}

func encodeObjects(tag Tag, objects []any) map[string]any {
	encoded := make([]any, 0, len(objects))
	for _, o := range objects {
		encoded = append(encoded, Normalize(o))
	}
	return map[string]any{
		KeyOp:      string(tag),
		KeyObjects: encoded,
	}
}

// Elements may be null and may themselves be tagged values.
func decodeObjects(m map[string]any, tag Tag) ([]any, bool) {
	if !hasDiscriminator(m, KeyOp, tag) {
		return nil, false
	}
	raw, ok := m[KeyObjects].([]any)
	if !ok {
		return nil, false
	}
	objects := make([]any, 0, len(raw))
	for _, o := range raw {
		objects = append(objects, Denormalize(o))
	}
	return objects, true
}

func decodeAdd(m map[string]any) (any, bool) {
	objects, ok := decodeObjects(m, TagAdd)
	if !ok {
		return nil, false
	}
	return Add{Objects: objects}, true
}

func decodeAddUnique(m map[string]any) (any, bool) {
	objects, ok := decodeObjects(m, TagAddUnique)
	if !ok {
		return nil, false
	}
	return AddUnique{Objects: objects}, true
}

func decodeRemove(m map[string]any) (any, bool) {
	objects, ok := decodeObjects(m, TagRemove)
	if !ok {
		return nil, false
	}
	return Remove{Objects: objects}, true
}

// AddRelation adds the referenced objects to a relation field.
type AddRelation struct {
	Objects []Pointer
}

func NewAddRelation(objects ...Pointer) AddRelation {
	return AddRelation{Objects: objects}
}

func (a AddRelation) Tag() Tag {
	return TagAddRelation
}

func (a AddRelation) Encode() map[string]any {
	return encodePointers(TagAddRelation, a.Objects)
}

// RemoveRelation removes the referenced objects from a relation field.
type RemoveRelation struct {
	Objects []Pointer
}

func NewRemoveRelation(objects ...Pointer) RemoveRelation {
	return RemoveRelation{Objects: objects}
}

func (r RemoveRelation) Tag() Tag {
	return TagRemoveRelation
}

func (r RemoveRelation) Encode() map[string]any {
	return encodePointers(TagRemoveRelation, r.Objects)
}

func encodePointers(tag Tag, pointers []Pointer) map[string]any {
	encoded := make([]any, 0, len(pointers))
	for _, p := range pointers {
		encoded = append(encoded, p.Encode())
	}
	return map[string]any{
		KeyOp:      string(tag),
		KeyObjects: encoded,
	}
}

// Every element has to be a well formed pointer, otherwise the shape does not match.
func decodePointers(m map[string]any, tag Tag) ([]Pointer, bool) {
	if !hasDiscriminator(m, KeyOp, tag) {
		return nil, false
	}
	raw, ok := m[KeyObjects].([]any)
	if !ok {
		return nil, false
	}
	pointers := make([]Pointer, 0, len(raw))
	for _, o := range raw {
		om, ok := o.(map[string]any)
		if !ok {
			return nil, false
		}
		p, ok := decodePointer(om)
		if !ok {
			return nil, false
		}
		pointers = append(pointers, p.(Pointer))
	}
	return pointers, true
}

func decodeAddRelation(m map[string]any) (any, bool) {
	pointers, ok := decodePointers(m, TagAddRelation)
	if !ok {
		return nil, false
	}
	return AddRelation{Objects: pointers}, true
}

func decodeRemoveRelation(m map[string]any) (any, bool) {
	pointers, ok := decodePointers(m, TagRemoveRelation)
	if !ok {
		return nil, false
	}
	return RemoveRelation{Objects: pointers}, true
}
