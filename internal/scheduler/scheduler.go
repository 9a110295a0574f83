package scheduler

import (
	"context"
	"time"

	"synthex-backend/internal/repository"
	"synthex-backend/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// webhookRetention is how long processed webhook event rows are kept
// before the nightly prune removes them.
const webhookRetention = 90 * 24 * time.Hour

// Scheduler runs the background jobs: campaign dispatch every minute
// and housekeeping once a day.
type Scheduler struct {
	cron      *cron.Cron
	campaigns service.CampaignServiceInterface
	states    repository.OAuthStateRepositoryInterface
	events    repository.WebhookEventRepositoryInterface
}

// New creates a scheduler with all jobs registered but not started
func New(
	campaigns service.CampaignServiceInterface,
	states repository.OAuthStateRepositoryInterface,
	events repository.WebhookEventRepositoryInterface,
) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(),
		campaigns: campaigns,
		states:    states,
		events:    events,
	}

	if _, err := s.cron.AddFunc("* * * * *", s.dispatchCampaigns); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc("30 3 * * *", s.housekeeping); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running jobs on their schedules
func (s *Scheduler) Start() {
	s.cron.Start()
	logrus.Info("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logrus.Info("Scheduler stopped")
}

func (s *Scheduler) dispatchCampaigns() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := s.campaigns.DispatchDue(ctx); err != nil {
		logrus.WithError(err).Error("Campaign dispatch run failed")
	}
}

func (s *Scheduler) housekeeping() {
	now := time.Now()

	if n, err := s.states.DeleteExpired(now); err != nil {
		logrus.WithError(err).Error("Failed to prune expired oauth states")
	} else if n > 0 {
		logrus.WithField("deleted", n).Info("Pruned expired oauth states")
	}

	if n, err := s.events.DeleteOlderThan(now.Add(-webhookRetention)); err != nil {
		logrus.WithError(err).Error("Failed to prune old webhook events")
	} else if n > 0 {
		logrus.WithField("deleted", n).Info("Pruned old webhook events")
	}
}
