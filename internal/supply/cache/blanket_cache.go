package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"github.com/cozycomfort/supply-api/internal/supply/repository"
)

const (
	catalogListKey  = "blankets:active"
	catalogKeyFmt   = "blanket:%s"
	catalogCacheTTL = 5 * time.Minute
)

// BlanketCache 产品目录读穿缓存。Redis 未配置时直接透传数据库。
type BlanketCache struct {
	repo   *repository.BlanketRepository
	client *redis.Client
	logger *zap.Logger
}

func NewBlanketCache(repo *repository.BlanketRepository, client *redis.Client, logger *zap.Logger) *BlanketCache {
	return &BlanketCache{repo: repo, client: client, logger: logger}
}

func (c *BlanketCache) ListActive(ctx context.Context) ([]entity.BlanketModel, error) {
	if c.client == nil {
		return c.repo.ListActive()
	}

	data, err := c.client.Get(ctx, catalogListKey).Bytes()
	if err == nil {
		var models []entity.BlanketModel
		if jsonErr := json.Unmarshal(data, &models); jsonErr == nil {
			return models, nil
		}
		c.logger.Warn("缓存数据解析失败，回退数据库", zap.String("key", catalogListKey))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("Redis 读取失败，回退数据库", zap.Error(err))
	}

	models, err := c.repo.ListActive()
	if err != nil {
		return nil, err
	}

	if jsonData, jsonErr := json.Marshal(models); jsonErr == nil {
		if setErr := c.client.Set(ctx, catalogListKey, jsonData, catalogCacheTTL).Err(); setErr != nil {
			c.logger.Warn("写入缓存失败", zap.String("key", catalogListKey), zap.Error(setErr))
		}
	}
	return models, nil
}

func (c *BlanketCache) GetByID(ctx context.Context, id string) (*entity.BlanketModel, error) {
	if c.client == nil {
		return c.repo.GetByID(id)
	}

	key := fmt.Sprintf(catalogKeyFmt, id)
	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var bm entity.BlanketModel
		if jsonErr := json.Unmarshal(data, &bm); jsonErr == nil {
			return &bm, nil
		}
		c.logger.Warn("缓存数据解析失败，回退数据库", zap.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("Redis 读取失败，回退数据库", zap.Error(err))
	}

	bm, err := c.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if jsonData, jsonErr := json.Marshal(bm); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, jsonData, catalogCacheTTL).Err(); setErr != nil {
			c.logger.Warn("写入缓存失败", zap.String("key", key), zap.Error(setErr))
		}
	}
	return bm, nil
}

// Invalidate 在产品写操作后清除相关缓存键
func (c *BlanketCache) Invalidate(ctx context.Context, id string) {
	if c.client == nil {
		return
	}
	keys := []string{catalogListKey}
	if id != "" {
		keys = append(keys, fmt.Sprintf(catalogKeyFmt, id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("清除缓存失败", zap.Strings("keys", keys), zap.Error(err))
	}
}
