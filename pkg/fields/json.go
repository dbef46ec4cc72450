package fields

import (
	"fmt"

	"github.com/ncmb/ncmb.go/internal/codec"
	"github.com/ncmb/ncmb.go/pkg/constants"
	"github.com/ncmb/ncmb.go/pkg/models"
)

var marshaler codec.Marshaler = models.JSONMarshaler{}

// ToWireJSON encodes every non-protected field.
func (s *Store) ToWireJSON() ([]byte, error) {
	body := make(map[string]any, len(s.fields))
	for k, v := range s.fields {
		if IsProtected(k) {
			continue
		}
		body[k] = v
	}
	return encodeBody(body)
}

// ToCreateJSON encodes the body of a create (POST): every field except the
// server-assigned objectId, createDate and updateDate. The ACL is kept.
func (s *Store) ToCreateJSON() ([]byte, error) {
	body := make(map[string]any, len(s.fields))
	for k, v := range s.fields {
		switch k {
		case constants.FieldObjectID, constants.FieldCreateDate, constants.FieldUpdateDate:
			continue
		}
		body[k] = v
	}
	return encodeBody(body)
}

// ToPatchJSON encodes the body of an update (PUT): exactly the dirty keys,
// with values read from the current field map. A dirty key with no value is
// sent as null. An ACL replaced through SetACL is included as well.
func (s *Store) ToPatchJSON() ([]byte, error) {
	body := make(map[string]any, len(s.modifiedKeys)+1)
	for k := range s.modifiedKeys {
		body[k] = s.fields[k]
	}
	if s.aclModified {
		acl, ok := s.fields[constants.FieldACL]
		if !ok {
			acl = map[string]any{}
		}
		body[constants.FieldACL] = acl
	}
	return encodeBody(body)
}

func encodeBody(body map[string]any) ([]byte, error) {
	if err := models.CheckOperations(body); err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrEncodeBody, err)
	}
	data, err := marshaler.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrEncodeBody, err)
	}
	return data, nil
}
