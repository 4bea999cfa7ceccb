package scheduler

import (
	"github.com/platewise/platewise-backend/internal/app/service"
	"github.com/platewise/platewise-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// SubscriptionScheduler marks lapsed subscriptions as expired once a day
type SubscriptionScheduler struct {
	cron                *cron.Cron
	subscriptionService service.SubscriptionService
}

func NewSubscriptionScheduler(subscriptionService service.SubscriptionService) *SubscriptionScheduler {
	return &SubscriptionScheduler{
		cron:                cron.New(),
		subscriptionService: subscriptionService,
	}
}

// Start registers the daily sweep. The gate never trusts the status column,
// so this job is bookkeeping only; access is decided by end_date either way.
func (s *SubscriptionScheduler) Start() error {
	// Daily at midnight: "0 0 * * *"
	_, err := s.cron.AddFunc("0 0 * * *", func() {
		logger.Info("Starting scheduled subscription expiry sweep", nil)

		expired, err := s.subscriptionService.ExpireLapsed()
		if err != nil {
			logger.Error("Failed to expire lapsed subscriptions from scheduler", err)
			return
		}

		logger.Info("Subscription expiry sweep completed", map[string]interface{}{
			"expired_count": expired,
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for subscription expiry", err)
		return err
	}

	s.cron.Start()
	logger.Info("Subscription scheduler started successfully (daily at midnight)", nil)

	return nil
}

func (s *SubscriptionScheduler) Stop() {
	logger.Info("Stopping subscription scheduler...", nil)
	s.cron.Stop()
	logger.Info("Subscription scheduler stopped", nil)
}
