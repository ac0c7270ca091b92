package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"portfolio-cms/app/server/constants"
)

// cacheGet 命中时返回 true ；没有 Redis 或者缓存损坏都按未命中处理
func (a *App) cacheGet(ctx context.Context, key string, dst any) bool {
	if a.rdb == nil {
		return false
	}

	data, err := a.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to get cache", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err = json.Unmarshal(data, dst); err != nil {
		a.l.Error("failed to parse cache", zap.String("key", key), zap.Error(err))
		a.cacheClear(ctx, key)
		return false
	}

	return true
}

func (a *App) cacheSet(ctx context.Context, key string, value any) {
	if a.rdb == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		a.l.Error("failed to marshal cache", zap.String("key", key), zap.Error(err))
		return
	}

	if err = a.rdb.Set(ctx, key, data, constants.CacheExpireContent).Err(); err != nil {
		a.l.Error("failed to set cache", zap.String("key", key), zap.Error(err))
	}
}

func (a *App) cacheClear(ctx context.Context, keys ...string) {
	if a.rdb == nil || len(keys) == 0 {
		return
	}

	if err := a.rdb.Del(ctx, keys...).Err(); err != nil {
		a.l.Error("failed to clear cache", zap.Strings("keys", keys), zap.Error(err))
	}
}

// projectCacheKeys 任何项目写操作之后都要清理的缓存
func projectCacheKeys(id uint) []string {
	return []string{
		fmt.Sprintf(constants.CacheKeyProjects, "all"),
		fmt.Sprintf(constants.CacheKeyProjects, "visible"),
		fmt.Sprintf(constants.CacheKeyProject, id),
	}
}
