package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		require.False(t, id.IsEmpty(), "empty ID at iteration %d", i)
		require.False(t, ids[id], "duplicate ID %s", id)
		ids[id] = true
	}
	assert.Len(t, ids, numIDs)
}

func TestParseRunID(t *testing.T) {
	id := NewRunID()
	parsed, err := ParseRunID(" " + id.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseRunID("")
	assert.Error(t, err)

	_, err = ParseRunID("not-a-uuid")
	assert.Error(t, err)
}

func TestHashRecords(t *testing.T) {
	a := HashRecords([][]string{{"organization", "rating"}, {"OrgA", "4.5"}})
	b := HashRecords([][]string{{"organization", "rating"}, {"OrgA", "4.5"}})
	c := HashRecords([][]string{{"organization", "rating"}, {"OrgA4", ".5"}})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a.String(), 64)
	assert.Equal(t, a.String()[:12], a.Short())
	assert.Equal(t, NewHash(nil), HashRecords(nil))
}
