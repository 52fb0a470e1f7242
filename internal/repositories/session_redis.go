package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/mundo-divertido/internal/logger"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// RedisSessionStore keeps sessions in Redis; each key expires with its session
type RedisSessionStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisSessionStore creates a session store on top of a Redis client
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		now:    time.Now,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// Save stores the session as JSON with a TTL matching its expiry.
// An already expired session is removed instead.
func (r *RedisSessionStore) Save(ctx context.Context, sess *models.Session) error {
	key := sessionKey(sess.ID)

	ttl := sess.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return r.Delete(ctx, sess.ID)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, ttl).Err()

	logger.Log.Debugw("session saved",
		"kind", sess.Kind,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// Get returns the session with id, or nil when absent or expired.
func (r *RedisSessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	key := sessionKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Log.Debug("session not found")
			return nil, nil
		}
		logger.Log.Errorw("session lookup failed", "error", err)
		return nil, err
	}

	var sess models.Session
	if err := json.Unmarshal(val, &sess); err != nil {
		logger.Log.Errorw("session record unreadable", "error", err)
		return nil, err
	}

	if sess.Expired(r.now()) {
		return nil, nil
	}

	logger.Log.Debugw("session loaded", "kind", sess.Kind)

	return &sess, nil
}

// Delete removes the session with id.
func (r *RedisSessionStore) Delete(ctx context.Context, id string) error {
	key := sessionKey(id)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw("session deleted", "error", err)

	return err
}
