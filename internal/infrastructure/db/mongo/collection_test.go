package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
)

func TestObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, err := objectID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	for _, bad := range []string{"", "nope", "123", oid.Hex() + "00"} {
		_, err := objectID(bad)
		assert.True(t, domain.IsValidation(err), "id %q", bad)
	}
}

func TestToM_ProfileUpdateOnlySetFields(t *testing.T) {
	name, bio := "Ada", ""
	m, err := toM(domain.ProfileUpdate{Name: &name, Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"name": "Ada", "bio": ""}, m)

	empty, err := toM(domain.ProfileUpdate{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDocument_InlineRoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	raw, err := bson.Marshal(document[domain.Post]{
		ID:   oid,
		Body: domain.Post{ID: "ignored", Type: "image", Title: "Sunset", File: "AAAA", CreatedAt: created},
	})
	require.NoError(t, err)

	var flat bson.M
	require.NoError(t, bson.Unmarshal(raw, &flat))
	assert.Equal(t, oid, flat["_id"])
	assert.Equal(t, "Sunset", flat["title"])
	assert.NotContains(t, flat, "id")
	assert.NotContains(t, flat, "description", "empty optional fields are omitted")

	var d document[domain.Post]
	require.NoError(t, bson.Unmarshal(raw, &d))

	c := collection[domain.Post]{setID: func(p *domain.Post, id string) { p.ID = id }}
	post := c.unwrap(d)
	assert.Equal(t, oid.Hex(), post.ID)
	assert.Equal(t, "Sunset", post.Title)
	assert.True(t, post.CreatedAt.Equal(created))
}

func TestMongoUser_PasswordHashOmittedWhenProjectedOut(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"_id": primitive.NewObjectID(), "username": "alice", "email": "alice@x.com"})
	require.NoError(t, err)

	var mu mongoUser
	require.NoError(t, bson.Unmarshal(raw, &mu))
	u := mu.toDomain()
	assert.Equal(t, "alice", u.Username)
	assert.Empty(t, u.PasswordHash)
	assert.Equal(t, mu.ID.Hex(), u.ID)
}
