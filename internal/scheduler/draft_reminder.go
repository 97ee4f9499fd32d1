package scheduler

import (
	"time"

	"github.com/Circulx/Profile-management/internal/app/service"
	"github.com/Circulx/Profile-management/pkg/logger"
	"github.com/robfig/cron/v3"
)

// staleDraftAge is how long a profile may sit in draft before the ops
// team gets a reminder about it
const staleDraftAge = 7 * 24 * time.Hour

// DraftReminderScheduler surfaces onboarding attempts that stalled in
// draft. It only reports; nothing in the workflow deletes or mutates
// abandoned drafts.
type DraftReminderScheduler struct {
	cron           *cron.Cron
	profileService service.ProfileService
}

func NewDraftReminderScheduler(profileService service.ProfileService) *DraftReminderScheduler {
	return &DraftReminderScheduler{
		cron:           cron.New(),
		profileService: profileService,
	}
}

// Start schedules the daily stale-draft scan
func (s *DraftReminderScheduler) Start() error {
	// Daily at 09:00
	_, err := s.cron.AddFunc("0 9 * * *", s.runScan)
	if err != nil {
		logger.Error("Failed to add cron job for stale draft scan", err)
		return err
	}

	s.cron.Start()
	logger.Info("Draft reminder scheduler started successfully (daily at 9:00 AM)", nil)
	return nil
}

// Stop stops the scheduler
func (s *DraftReminderScheduler) Stop() {
	logger.Info("Stopping draft reminder scheduler...")
	s.cron.Stop()
}

func (s *DraftReminderScheduler) runScan() {
	logger.Info("Starting scheduled stale draft scan", nil)

	drafts, err := s.profileService.FindStaleDrafts(staleDraftAge)
	if err != nil {
		logger.Error("Failed to scan for stale draft profiles", err)
		return
	}

	if len(drafts) == 0 {
		logger.Info("No stale draft profiles found", nil)
		return
	}

	ids := make([]string, 0, len(drafts))
	for _, draft := range drafts {
		ids = append(ids, draft.BusinessID)
	}

	logger.Warn("Stale draft profiles awaiting completion", map[string]interface{}{
		"count":        len(drafts),
		"business_ids": ids,
		"older_than":   staleDraftAge.String(),
	})
}
