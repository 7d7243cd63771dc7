package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

func newTestStore(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *redisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisStore(client, ttl).(*redisStore)
}

func testUser() *entity.User {
	return entity.NewUser("Ana Silva", "ana@example.com", "hash", entity.SexFemale, 30)
}

func TestRedisStore_SaveAndFind(t *testing.T) {
	mr, store := newTestStore(t, time.Hour)
	ctx := context.Background()
	sess := entity.NewSession(testUser())

	require.NoError(t, store.Save(ctx, sess))
	assert.True(t, mr.Exists("session:"+sess.ID))
	assert.Equal(t, time.Hour, mr.TTL("session:"+sess.ID))

	found, err := store.Find(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, found.UserID)
	assert.Equal(t, "ana@example.com", found.Email)
	assert.Equal(t, "Ana Silva", found.FullName)
}

func TestRedisStore_Expiry(t *testing.T) {
	mr, store := newTestStore(t, time.Minute)
	ctx := context.Background()
	sess := entity.NewSession(testUser())
	require.NoError(t, store.Save(ctx, sess))

	mr.FastForward(2 * time.Minute)

	_, err := store.Find(ctx, sess.ID)
	assert.ErrorIs(t, err, domainerror.ErrSessionNotFound)
}

func TestRedisStore_SaveSlidesExpiry(t *testing.T) {
	mr, store := newTestStore(t, time.Minute)
	ctx := context.Background()
	sess := entity.NewSession(testUser())
	require.NoError(t, store.Save(ctx, sess))

	mr.FastForward(45 * time.Second)
	require.NoError(t, store.Save(ctx, sess))
	mr.FastForward(45 * time.Second)

	_, err := store.Find(ctx, sess.ID)
	assert.NoError(t, err)
}

func TestRedisStore_RefreshSlidesExpiry(t *testing.T) {
	mr, store := newTestStore(t, time.Minute)
	ctx := context.Background()
	sess := entity.NewSession(testUser())
	require.NoError(t, store.Save(ctx, sess))

	mr.FastForward(45 * time.Second)
	require.NoError(t, store.Refresh(ctx, sess))

	assert.Equal(t, time.Minute, mr.TTL("session:"+sess.ID))
}

func TestRedisStore_RefreshDoesNotRecreateDeletedSession(t *testing.T) {
	mr, store := newTestStore(t, time.Hour)
	ctx := context.Background()
	sess := entity.NewSession(testUser())
	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.Delete(ctx, sess.ID))

	err := store.Refresh(ctx, sess)

	assert.ErrorIs(t, err, domainerror.ErrSessionNotFound)
	assert.False(t, mr.Exists("session:"+sess.ID))
}

func TestRedisStore_Delete(t *testing.T) {
	_, store := newTestStore(t, time.Hour)
	ctx := context.Background()
	sess := entity.NewSession(testUser())
	require.NoError(t, store.Save(ctx, sess))

	require.NoError(t, store.Delete(ctx, sess.ID))
	_, err := store.Find(ctx, sess.ID)
	assert.ErrorIs(t, err, domainerror.ErrSessionNotFound)

	// deleting again is not an error
	assert.NoError(t, store.Delete(ctx, sess.ID))
}

func TestRedisStore_FindUnknown(t *testing.T) {
	_, store := newTestStore(t, time.Hour)
	_, err := store.Find(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domainerror.ErrSessionNotFound)
}

func TestRedisStore_Ping(t *testing.T) {
	mr, store := newTestStore(t, time.Hour)
	assert.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}

func TestNewRedisClient(t *testing.T) {
	client, err := NewRedisClient("redis://localhost:6379/2", "pw", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, client.Options().DB)
	assert.Equal(t, "pw", client.Options().Password)

	_, err = NewRedisClient("://bad", "", 0)
	assert.Error(t, err)
}
