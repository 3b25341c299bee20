package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

func withMiniredis(t *testing.T) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	old := client
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(old) })
}

func TestAsidePopulatesAndCaches(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var got cachedUser
	fetch := func() error {
		fetches++
		got = cachedUser{ID: "u1", FullName: "Asha Rao"}
		return nil
	}

	require.NoError(t, Aside(ctx, UserKey("u1"), &got, UserTTL, fetch))
	assert.Equal(t, 1, fetches)

	var again cachedUser
	require.NoError(t, Aside(ctx, UserKey("u1"), &again, UserTTL, fetch))
	assert.Equal(t, 1, fetches, "second read must come from cache")
	assert.Equal(t, "Asha Rao", again.FullName)
}

func TestInvalidateUserForcesRefetch(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	var dest cachedUser
	require.NoError(t, SetJSON(ctx, UserKey("u2"), cachedUser{ID: "u2"}, time.Minute))

	InvalidateUser(ctx, "u2")

	found, err := GetJSON(ctx, UserKey("u2"), &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAsideWithoutRedisFallsThrough(t *testing.T) {
	old := client
	SetClient(nil)
	t.Cleanup(func() { SetClient(old) })

	var dest cachedUser
	err := Aside(context.Background(), UserKey("u3"), &dest, UserTTL, func() error {
		dest = cachedUser{ID: "u3"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "u3", dest.ID)
}
