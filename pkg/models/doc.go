// Package models defines the values that travel on the NCMB wire and the
// codec that maps them to and from tagged JSON objects.
//
// # Tagged values
//
// Plain JSON primitives, arrays and objects pass through unchanged. Richer
// values are carried as JSON objects with a discriminator field:
//
//	{"__type":"Date","iso":"2013-12-02T02:44:35.452Z"}
//	{"__type":"Pointer","className":"Post","objectId":"abc"}
//	{"__type":"Relation","className":"Post"}
//	{"__type":"GeoPoint","latitude":35.6,"longitude":139.7}
//	{"__op":"Increment","amount":1}
//	{"__op":"Add","objects":[...]}
//
// [EncodeTagged] produces these shapes from [Date], [Pointer], [Relation],
// [GeoPoint] and the operator types. [DecodeTagged] goes the other way and
// tries the shapes in the order listed by [TagPrecedence]; the first shape
// whose discriminator and required fields match wins.
//
// Operators ([Increment], [Add], [AddUnique], [Remove], [AddRelation],
// [RemoveRelation]) describe mutations applied by the server and are only
// ever sent, never stored.
//
// # Numbers
//
// The wire distinguishes integers from floating point numbers. Inside this
// SDK integers are int64 and floats are float64; [Normalize] converts other
// Go numeric kinds and json.Number to one of the two.
package models
