package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/dealgrind/underwriting-service/internal/config"
	"github.com/dealgrind/underwriting-service/internal/repository"
	"github.com/dealgrind/underwriting-service/internal/utils/email"
)

// Scheduler runs the daily balloon-due scan: stored deals whose balloon
// refinance falls inside the notice window get a reminder email with the
// payment delta from their stored metrics.
type Scheduler struct {
	repo   *repository.Repository
	sender *email.Sender
	cfg    *config.Config
	log    *logrus.Logger
	cron   *cron.Cron
}

// NewScheduler creates a scheduler with its jobs registered but not started
func NewScheduler(repo *repository.Repository, sender *email.Sender, cfg *config.Config, log *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		repo:   repo,
		sender: sender,
		cfg:    cfg,
		log:    log,
		cron:   cron.New(),
	}
	// Daily at 09:00 server time
	if _, err := s.cron.AddFunc("0 9 * * *", s.sendBalloonReminders); err != nil {
		return nil, err
	}
	return s, nil
}

// Start launches the cron loop in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Infof("Scheduler started: balloon reminders with %d-day notice window", s.cfg.BalloonNoticeDays)
}

// Stop halts the cron loop and waits for running jobs
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) sendBalloonReminders() {
	cutoff := time.Now().AddDate(0, 0, s.cfg.BalloonNoticeDays)
	due, err := s.repo.ListBalloonDueBefore(cutoff)
	if err != nil {
		s.log.Errorf("Failed to scan balloon deals: %v", err)
		return
	}

	for _, d := range due {
		var current, next float64
		if d.Metrics != nil && d.Metrics.Balloon != nil {
			current = d.Metrics.Balloon.PreBalloonPayment
			next = d.Metrics.Balloon.PostBalloonPayment
		}
		if err := s.sender.SendBalloonReminder(d.Email, d.Username, d.DealName, d.DueDate, current, next); err != nil {
			s.log.Errorf("Failed to remind %s about %s: %v", d.Email, d.DealName, err)
			continue
		}
	}

	s.log.Infof("Balloon reminder run complete: %d deals due before %s", len(due), cutoff.Format("2006-01-02"))
}
