package fields

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncmb/ncmb.go/pkg/models"
)

func TestStore_GetMissing(t *testing.T) {
	s := New("TestClass")

	v, ok := s.Get("nope")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Nil(t, s.Value("nope"))

	_, ok = s.GeoPoint("nope")
	assert.False(t, ok)
}

func TestStore_SetMarksDirty(t *testing.T) {
	s := New("TestClass")
	s.Set("name", "alice")
	s.Set("age", 20)

	assert.Equal(t, []string{"age", "name"}, s.DirtyKeys())
	assert.True(t, s.IsDirty("name"))

	age, ok := s.Int("age")
	require.True(t, ok)
	assert.Equal(t, int64(20), age)
}

func TestStore_SetNilRemovesButStaysDirty(t *testing.T) {
	s := FromResponse("TestClass", map[string]any{"objectId": "o1", "name": "alice"})
	require.Empty(t, s.DirtyKeys())

	s.Set("name", nil)

	_, ok := s.Get("name")
	assert.False(t, ok)
	assert.Equal(t, []string{"name"}, s.DirtyKeys())

	data, err := s.ToPatchJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":null}`, string(data))
}

func TestStore_ProtectedFieldsAreNoOp(t *testing.T) {
	s := FromResponse("TestClass", map[string]any{
		"objectId":   "o1",
		"createDate": "2013-12-02T02:44:35.452Z",
		"acl":        map[string]any{"*": map[string]any{"read": true}},
	})
	before := s.Fields()

	for _, name := range []string{"objectId", "acl", "createDate", "updateDate"} {
		s.Set(name, "hijack")
		s.Remove(name)
	}

	assert.Equal(t, before, s.Fields())
	assert.Empty(t, s.DirtyKeys())
	assert.Equal(t, "o1", s.ObjectID())
}

func TestStore_MergeResponseClearsDirty(t *testing.T) {
	s := New("TestClass")
	s.Set("name", "alice")
	s.Set("score", 10)
	s.SetACL(models.NewPublicACL())
	require.True(t, s.HasChanges())

	s.MergeResponse(map[string]any{
		"objectId":   "abc",
		"createDate": "2013-12-02T02:44:35.452Z",
		"score":      int64(11),
	})

	assert.Empty(t, s.DirtyKeys())
	assert.False(t, s.ACLModified())
	assert.False(t, s.HasChanges())
	assert.Equal(t, "abc", s.ObjectID())

	name, _ := s.String("name")
	assert.Equal(t, "alice", name, "keys missing from the response stay")
	score, _ := s.Int("score")
	assert.Equal(t, int64(11), score)

	created, ok := s.CreateDate()
	require.True(t, ok)
	assert.Equal(t, time.Date(2013, 12, 2, 2, 44, 35, 452000000, time.UTC), created)
}

func TestStore_TypedRoundTrip(t *testing.T) {
	s := New("Spot")
	gp := models.NewGeoPoint(35.6895, 139.6917)
	when := models.NewDate(time.Date(2020, 5, 6, 7, 8, 9, 10000000, time.UTC))

	s.Set("location", gp)
	s.Set("visited", when)
	s.Set("owner", models.NewPointer("User", "u1"))
	s.Set("likes", models.NewRelation("User"))

	raw, ok := s.Get("location")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"__type": "GeoPoint", "latitude": 35.6895, "longitude": 139.6917}, raw)

	got, ok := s.GeoPoint("location")
	require.True(t, ok)
	assert.Equal(t, gp, got)

	d, ok := s.Date("visited")
	require.True(t, ok)
	assert.Equal(t, when, d)

	p, ok := s.Pointer("owner")
	require.True(t, ok)
	assert.Equal(t, models.NewPointer("User", "u1"), p)

	r, ok := s.Relation("likes")
	require.True(t, ok)
	assert.Equal(t, "User", r.ClassName)

	_, ok = s.Map("location")
	assert.False(t, ok, "tagged values are not plain maps")
}

func TestStore_Operators(t *testing.T) {
	s := FromResponse("Post", map[string]any{"objectId": "p1"})
	s.Increment("views", 1)
	s.AddUniqueToList("tags", "go", "json")
	s.AddRelation("authors", models.NewPointer("User", "u1"))

	data, err := s.ToPatchJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"views": {"__op":"Increment","amount":1},
		"tags": {"__op":"AddUnique","objects":["go","json"]},
		"authors": {"__op":"AddRelation","objects":[{"__type":"Pointer","className":"User","objectId":"u1"}]}
	}`, string(data))
}

func TestStore_ACL(t *testing.T) {
	s := FromResponse("Post", map[string]any{
		"objectId": "p1",
		"acl":      map[string]any{"*": map[string]any{"read": true, "write": true}},
	})
	assert.True(t, s.ACL().PublicWriteAccess())

	acl := models.NewACL()
	acl.SetPublicReadAccess(true)
	acl.SetWriteAccess("u1", true)
	s.SetACL(acl)

	assert.Empty(t, s.DirtyKeys())
	assert.True(t, s.ACLModified())
	assert.False(t, s.ACL().PublicWriteAccess())

	data, err := s.ToPatchJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"acl":{"*":{"read":true},"u1":{"write":true}}}`, string(data))
}

func TestStore_List(t *testing.T) {
	s := New("Post")
	s.Set("items", []any{"a", models.NewPointer("X", "1"), 2})

	list, ok := s.List("items")
	require.True(t, ok)
	assert.Equal(t, []any{"a", models.NewPointer("X", "1"), int64(2)}, list)
}
