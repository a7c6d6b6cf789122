package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldUnmarshalTriState(t *testing.T) {
	var u ResponseUpdate
	require.NoError(t, json.Unmarshal([]byte(`{}`), &u))
	assert.False(t, u.ReviewStatusID.Set)
	assert.False(t, u.ArchivedAt.Set)
	assert.True(t, u.Empty())

	u = ResponseUpdate{}
	require.NoError(t, json.Unmarshal([]byte(`{"reviewStatusId":null}`), &u))
	assert.True(t, u.ReviewStatusID.Set)
	assert.Nil(t, u.ReviewStatusID.Value)
	assert.False(t, u.ArchivedAt.Set)

	u = ResponseUpdate{}
	require.NoError(t, json.Unmarshal([]byte(`{"reviewStatusId":"rs-2","archivedAt":"2025-07-01T00:00:00Z"}`), &u))
	require.NotNil(t, u.ReviewStatusID.Value)
	assert.Equal(t, "rs-2", *u.ReviewStatusID.Value)
	require.NotNil(t, u.ArchivedAt.Value)
	assert.Equal(t, "2025-07-01T00:00:00Z", *u.ArchivedAt.Value)
	assert.False(t, u.Empty())
}

func TestFieldUnmarshalRejectsNonString(t *testing.T) {
	var u ResponseUpdate
	assert.Error(t, json.Unmarshal([]byte(`{"reviewStatusId":42}`), &u))
}

func TestFieldConstructors(t *testing.T) {
	f := String("rs-1")
	assert.True(t, f.Set)
	require.NotNil(t, f.Value)
	assert.Equal(t, "rs-1", *f.Value)

	n := Null()
	assert.True(t, n.Set)
	assert.Nil(t, n.Value)
}

func TestCloneIsDeep(t *testing.T) {
	city := "Austin"
	score := 88
	rec := &CandidateResponse{
		ID:           "response-1",
		User:         Candidate{Name: "Ava", City: &city},
		ReviewStatus: &StatusRef{ID: "rs-1", Name: "New", Position: 1},
		AIScore:      &score,
	}

	cp := rec.Clone()
	*rec.User.City = "Dallas"
	rec.ReviewStatus.ID = "rs-9"
	*rec.AIScore = 1

	assert.Equal(t, "Austin", *cp.User.City)
	assert.Equal(t, "rs-1", cp.ReviewStatus.ID)
	assert.Equal(t, 88, *cp.AIScore)
}
