package vote

import (
	"context"
	"fmt"
	"sync"
	"team-retro-system/internal/global/database"
	"time"
)

// voterLocks 同一 (retro, user) 的配额检查与写入必须串行，
// 否则并发请求可能同时观察到 "额度未用完"
var voterLocks sync.Map

func lockVoter(retroID, userID uint) func() {
	key := fmt.Sprintf("%d:%d", retroID, userID)
	mu, _ := voterLocks.LoadOrStore(key, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()

	release := func() { m.Unlock() }

	// 多副本部署时再加一层 Redis 锁
	if database.RDB != nil {
		redisKey := "retro:votelock:" + key
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		for {
			ok, err := database.RDB.SetNX(ctx, redisKey, 1, 5*time.Second).Result()
			if err != nil || ok {
				break
			}
			select {
			case <-ctx.Done():
				// 拿不到锁也不阻塞请求，本进程互斥仍然有效
				return release
			case <-time.After(20 * time.Millisecond):
			}
		}
		return func() {
			bg, bgCancel := context.WithTimeout(context.Background(), time.Second)
			defer bgCancel()
			database.RDB.Del(bg, redisKey)
			m.Unlock()
		}
	}
	return release
}
