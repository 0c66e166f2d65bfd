package jobs

import (
	"context"
	"log"
	"time"

	"nautica-prime/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// pendenteThreshold is how long a proposal may sit PENDENTE before
// the daily reminder counts it as stale
const pendenteThreshold = 48 * time.Hour

// ReminderService runs scheduled jobs for proposal moderation
type ReminderService struct {
	propostaRepo *repositories.PropostaRepository
	cron         *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(propostaRepo *repositories.PropostaRepository) *ReminderService {
	return &ReminderService{
		propostaRepo: propostaRepo,
		cron:         cron.New(),
	}
}

// Start schedules and launches the jobs
func (s *ReminderService) Start() {
	// Daily at 08:30: remind about stale PENDENTE proposals
	s.cron.AddFunc("30 8 * * *", s.remindPendentes)

	s.cron.Start()
	log.Println("🚀 ReminderService started")
}

// Stop gracefully stops the scheduler
func (s *ReminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 ReminderService stopped")
}

func (s *ReminderService) remindPendentes() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-pendenteThreshold)
	count, err := s.propostaRepo.CountPendentesAntesDe(ctx, cutoff)
	if err != nil {
		log.Printf("❌ Reminder query error: %v", err)
		return
	}

	if count > 0 {
		log.Printf("⏰ %d propostas aguardando resposta há mais de %s", count, pendenteThreshold)
	}
}
