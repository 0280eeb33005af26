package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	helperAuth "attendance_backend/internals/helpers/auth"
	"attendance_backend/internals/metrics"
)

const cleanupTimeout = 30 * time.Second

// CleanupExpiredTokens removes blacklist rows whose token has expired anyway.
func CleanupExpiredTokens(ctx context.Context, db *gorm.DB) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, cleanupTimeout)
	defer cancel()

	n, err := helperAuth.PurgeExpired(ctx, db)
	if err != nil {
		return 0, err
	}
	metrics.BlacklistPurgedTotal.Add(float64(n))
	return n, nil
}

// StartBlacklistCleanupScheduler runs the cleanup on spec (robfig syntax, e.g. "@daily").
// Stop the returned cron on shutdown.
func StartBlacklistCleanupScheduler(db *gorm.DB, spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	_, err := c.AddFunc(spec, func() {
		log.Println("[CLEANUP] purging expired token_blacklist rows...")
		n, err := CleanupExpiredTokens(context.Background(), db)
		if err != nil {
			log.Printf("[CLEANUP ERROR] %v", err)
			return
		}
		log.Printf("[CLEANUP] %d expired tokens removed", n)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
