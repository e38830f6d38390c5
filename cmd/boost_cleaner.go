package main

import (
	"context"
	"log"
	"time"

	"beresinBack/internal/repositories"
)

const boostCleanerTimeout = 1 * time.Minute

// startBoostCleaner runs once at startup and then daily, marking active
// boosts whose computed expiry (updated_at + duration days) has passed.
func startBoostCleaner(ctx context.Context, repo *repositories.SubscriptionRepository, infoLog, errorLog *log.Logger) {
	if repo == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		runOnce := func() {
			runCtx, cancel := context.WithTimeout(ctx, boostCleanerTimeout)
			processed, err := repo.ExpireOverdue(runCtx, time.Now())
			cancel()
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("boost cleaner: failed to expire overdue boosts: %v", err)
				}
			} else if processed > 0 && infoLog != nil {
				infoLog.Printf("boost cleaner: expired %d overdue boosts", processed)
			}
		}

		runOnce()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()
}
