package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalID_RoundTrip(t *testing.T) {
	for _, id := range []ServerID{0, 1, 3, 42, 9007199254740993, -7} {
		l := LocalIDOf(id)
		got, err := l.ServerID()
		require.NoError(t, err)
		assert.Equal(t, id, got)
		assert.Equal(t, l, LocalIDOf(got))
	}
}

func TestLocalID_Deterministic(t *testing.T) {
	assert.Equal(t, LocalIDOf(5), LocalIDOf(5))
	assert.Equal(t, LocalID("award-5"), LocalIDOf(5))
}

func TestLocalID_Untranslatable(t *testing.T) {
	for _, l := range []LocalID{NewAwardID, "", "5", "award-", "award-x", "award-05", "prize-5"} {
		_, err := l.ServerID()
		require.ErrorIs(t, err, ErrUntranslatableID, "id %q", l)
	}
}

func TestLocalID_MustServerIDPanics(t *testing.T) {
	require.Equal(t, ServerID(3), LocalIDOf(3).MustServerID())
	require.Panics(t, func() { NewAwardID.MustServerID() })
}

func TestParseLocalID(t *testing.T) {
	l, err := ParseLocalID(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, LocalIDOf(3), l)

	l, err = ParseLocalID("award-12")
	require.NoError(t, err)
	assert.Equal(t, LocalIDOf(12), l)

	_, err = ParseLocalID("gold")
	require.ErrorIs(t, err, ErrUntranslatableID)
}

func TestRemoteConfig_Get(t *testing.T) {
	c := NewRemoteConfig([]byte(`{"upload":{"maxSize":1024,"types":["png","jpg"]},"title":"ACP"}`))

	assert.False(t, c.IsZero())
	assert.Equal(t, int64(1024), c.Get("upload.maxSize").Int())
	assert.Equal(t, "jpg", c.Get("upload.types.1").String())
	assert.False(t, c.Get("missing").Exists())
	assert.True(t, RemoteConfig{}.IsZero())
}

func TestEditFrom(t *testing.T) {
	a := Award{ID: 7, LocalID: LocalIDOf(7), Name: "Gold", Description: "Top tier", PreviewRef: "awards/award-7/x.png"}
	e := EditFrom(a)
	assert.Equal(t, EditAward{ID: 7, Name: "Gold", Description: "Top tier", PreviewRef: "awards/award-7/x.png"}, e)
}
