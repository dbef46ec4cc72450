package models

// Tag names a tagged wire shape. Type tags are carried in "__type", operator
// tags in "__op".
type Tag string

const (
	TagIncrement      Tag = "Increment"
	TagAdd            Tag = "Add"
	TagAddUnique      Tag = "AddUnique"
	TagRemove         Tag = "Remove"
	TagAddRelation    Tag = "AddRelation"
	TagRemoveRelation Tag = "RemoveRelation"
	TagDate           Tag = "Date"
	TagPointer        Tag = "Pointer"
	TagRelation       Tag = "Relation"
	TagGeoPoint       Tag = "GeoPoint"
)

// Discriminator and payload keys.
const (
	KeyType      = "__type"
	KeyOp        = "__op"
	KeyISO       = "iso"
	KeyClassName = "className"
	KeyObjectID  = "objectId"
	KeyLatitude  = "latitude"
	KeyLongitude = "longitude"
	KeyAmount    = "amount"
	KeyObjects   = "objects"
)

// TagPrecedence is the order in which DecodeTagged tries the tagged shapes.
// A JSON object that satisfies more than one shape decodes as the earliest.
var TagPrecedence = [...]Tag{
	TagIncrement,
	TagAdd,
	TagAddUnique,
	TagRemove,
	TagAddRelation,
	TagRemoveRelation,
	TagDate,
	TagPointer,
	TagRelation,
	TagGeoPoint,
}

// IsOperator reports whether the tag is carried in "__op".
func (t Tag) IsOperator() bool {
	switch t {
	case TagIncrement, TagAdd, TagAddUnique, TagRemove, TagAddRelation, TagRemoveRelation:
		return true
	}
	return false
}

// Tagged is implemented by every value that has a tagged wire form.
type Tagged interface {
	Tag() Tag
	// Encode returns the tagged JSON object for the value.
	Encode() map[string]any
}
