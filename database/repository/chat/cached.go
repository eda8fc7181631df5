package chat

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"avion/models"
	"avion/utils"
)

const cacheKeyPrefix = "chat:"

// CachedRepository fronts another Repository with a Redis TTL cache so
// an active conversation doesn't hit Mongo on every turn. Cache failures
// fall through to the backing store.
type CachedRepository struct {
	inner  Repository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedRepository(inner Repository, client *redis.Client, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: utils.GetLogger().Named("chat-cache"),
	}
}

func (r *CachedRepository) GetByID(ctx context.Context, id string) (*models.Chat, error) {
	if data, err := r.client.Get(ctx, cacheKeyPrefix+id).Bytes(); err == nil {
		var chat models.Chat
		if err := json.Unmarshal(data, &chat); err == nil {
			return &chat, nil
		}
	}

	chat, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, chat)
	return chat, nil
}

func (r *CachedRepository) Save(ctx context.Context, chat *models.Chat) error {
	if err := r.inner.Save(ctx, chat); err != nil {
		return err
	}
	r.store(ctx, chat)
	return nil
}

func (r *CachedRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	if err := r.client.Del(ctx, cacheKeyPrefix+id).Err(); err != nil {
		r.logger.Warn("Failed to drop cached chat", zap.String("chatID", id), zap.Error(err))
	}
	return nil
}

func (r *CachedRepository) store(ctx context.Context, chat *models.Chat) {
	data, err := json.Marshal(chat)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, cacheKeyPrefix+chat.ID, data, r.ttl).Err(); err != nil {
		r.logger.Warn("Failed to cache chat", zap.String("chatID", chat.ID), zap.Error(err))
	}
}
