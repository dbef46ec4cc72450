package fields

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncmb/ncmb.go/pkg/constants"
	"github.com/ncmb/ncmb.go/pkg/models"
)

func decodeKeys(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func existingPost() *Store {
	return FromResponse("Post", map[string]any{
		"objectId":   "p1",
		"createDate": "2013-12-02T02:44:35.452Z",
		"updateDate": "2013-12-03T02:44:35.452Z",
		"acl":        map[string]any{"*": map[string]any{"read": true}},
		"title":      "hello",
		"body":       "world",
	})
}

func TestStore_ToCreateJSON(t *testing.T) {
	s := existingPost()
	s.Set("draft", true)

	m := decodeKeys(t, mustJSON(t, s.ToCreateJSON))
	assert.NotContains(t, m, "objectId")
	assert.NotContains(t, m, "createDate")
	assert.NotContains(t, m, "updateDate")
	assert.Contains(t, m, "acl")
	assert.Equal(t, "hello", m["title"])
	assert.Equal(t, true, m["draft"])
}

func TestStore_ToWireJSON(t *testing.T) {
	s := existingPost()

	m := decodeKeys(t, mustJSON(t, s.ToWireJSON))
	assert.Equal(t, map[string]any{"title": "hello", "body": "world"}, m)
}

func TestStore_ToPatchJSON_exactlyDirtyKeys(t *testing.T) {
	s := existingPost()
	s.Set("title", "bye")
	s.Remove("body")
	s.Set("added", 3)
	s.Remove("neverExisted")

	m := decodeKeys(t, mustJSON(t, s.ToPatchJSON))

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, s.DirtyKeys(), keys)
	assert.Equal(t, "bye", m["title"])
	assert.Nil(t, m["body"])
	assert.Contains(t, m, "body")
	assert.Nil(t, m["neverExisted"])
	assert.EqualValues(t, 3, m["added"])
}

func TestStore_ToPatchJSON_removeThenSet(t *testing.T) {
	s := existingPost()
	s.Remove("title")
	s.Set("title", "again")

	data, err := s.ToPatchJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"again"}`, string(data))
}

func TestStore_ToPatchJSON_clean(t *testing.T) {
	data, err := existingPost().ToPatchJSON()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestStore_unencodableValue(t *testing.T) {
	s := New("Post")
	s.Set("ch", make(chan int))

	_, err := s.ToCreateJSON()
	require.Error(t, err)
}

func TestStore_nonNumericIncrement(t *testing.T) {
	s := existingPost()
	s.Set("views", models.Increment{Amount: "5"})

	_, err := s.ToPatchJSON()
	assert.ErrorIs(t, err, constants.ErrEncodeBody)
	assert.ErrorIs(t, err, constants.ErrInvalidOperation)

	s.Increment("views", 5)
	m := decodeKeys(t, mustJSON(t, s.ToPatchJSON))
	assert.Equal(t, map[string]any{"__op": "Increment", "amount": 5.0}, m["views"])
}

func mustJSON(t *testing.T, fn func() ([]byte, error)) []byte {
	t.Helper()
	data, err := fn()
	require.NoError(t, err)
	return data
}
