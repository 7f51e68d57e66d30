package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	want := primitive.NewObjectID()

	got, err := ParseID(want.Hex())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseIDMalformed(t *testing.T) {
	for _, id := range []string{"", "zzz", "123", "653aa0f1e2d3c4b5a697889"} {
		_, err := ParseID(id)
		assert.Error(t, err, "id %q", id)
	}
}
