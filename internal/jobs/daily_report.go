package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/report"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// DashboardSource produces the summary logged by the daily report.
type DashboardSource interface {
	Execute(ctx context.Context) (report.Dashboard, error)
}

type Scheduler struct {
	sched  *cron.Cron
	source DashboardSource
	logger *zap.Logger
}

// NewScheduler registers the daily summary under the cron expression
// expr. An empty expr disables the job.
func NewScheduler(expr string, loc *time.Location, source DashboardSource, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = timezone.Location(timezone.DefaultTimezone)
	}

	s := &Scheduler{
		sched:  cron.New(cron.WithLocation(loc), cron.WithParser(cronParser)),
		source: source,
		logger: logger,
	}

	if expr != "" {
		if _, err := s.sched.AddFunc(expr, s.DailyReport); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.sched.Start()
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.sched.Stop().Done()
}

// DailyReport logs the cash balance, low-stock products and today's
// appointments.
func (s *Scheduler) DailyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	d, err := s.source.Execute(ctx)
	if err != nil {
		s.logger.Error("daily report failed", zap.Error(err))
		return
	}

	lowStock := make([]string, 0, len(d.LowStock))
	for _, p := range d.LowStock {
		lowStock = append(lowStock, p.Name)
	}

	s.logger.Info("daily report",
		zap.Float64("saldo", d.CashFlow.Balance),
		zap.Float64("faturamento_total", d.Sales.Revenue),
		zap.Int("clientes", d.Clients),
		zap.Strings("estoque_baixo", lowStock),
		zap.Int("agendamentos_hoje", len(d.Upcoming)),
	)
}
