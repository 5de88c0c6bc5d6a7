package repository

import (
	"context"
	"time"

	"github.com/JrMarcco/easy-kit/retry"
	"github.com/JrMarcco/shipsync/internal/pkg/gla"
)

// fetchWithRetry 读取后端数据，可重试的错误按重试策略重试。
//
// 只用于读请求，写请求失败直接返回给调用方。
func fetchWithRetry[T any](ctx context.Context, strategy retry.Strategy, fetch func(ctx context.Context) (T, error)) (T, error) {
	var retried int32
	for {
		res, err := fetch(ctx)
		if err == nil || strategy == nil || !gla.IsRetryable(err) {
			return res, err
		}

		interval, ok := strategy.NextWithRetried(retried)
		if !ok {
			return res, err
		}
		retried++

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			var zero T
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}
