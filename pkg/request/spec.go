package request

import (
	"net/http"

	"github.com/ncmb/ncmb.go/pkg/constants"
	"github.com/ncmb/ncmb.go/pkg/query"
)

// ObjectSpec returns the spec for a single-object operation on the
// classes endpoint. POST creates and needs no objectID; every other method
// addresses an existing object and fails with constants.ErrNoObjectID
// without one.
func ObjectSpec(method, className, objectID string, body []byte) (Spec, error) {
	if className == "" {
		return Spec{}, constants.ErrEmptyClassName
	}

	spec := Spec{
		Method:  method,
		APIType: constants.APITypeClasses,
		Subpath: []string{className},
	}
	if method != http.MethodPost {
		if objectID == "" {
			return Spec{}, constants.ErrNoObjectID
		}
		spec.Subpath = append(spec.Subpath, objectID)
	}
	if len(body) > 0 {
		spec.Body = body
		spec.ContentType = constants.ContentTypeJSON
	}
	return spec, nil
}

// SearchSpec returns the GET spec that runs q.
func SearchSpec(q *query.Query) (Spec, error) {
	if q.ClassName() == "" {
		return Spec{}, constants.ErrEmptyClassName
	}
	params, err := q.Params()
	if err != nil {
		return Spec{}, err
	}
	return Spec{
		Method:  http.MethodGet,
		APIType: constants.APITypeClasses,
		Subpath: []string{q.ClassName()},
		Queries: params,
	}, nil
}
