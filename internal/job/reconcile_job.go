package job

import (
	"context"
	"sync"
	"time"

	"freelance-hub/internal/metrics"
	"freelance-hub/internal/store"
	"freelance-hub/internal/worker"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Recomputer 是 reconcile 需要的 service 方法
type Recomputer interface {
	ListProjectIDs(ctx context.Context) ([]int, error)
	RecomputeVacancies(ctx context.Context, projectID int) (store.VacancyState, error)
}

// ReconcileResult 統計一次 reconcile 的結果
type ReconcileResult struct {
	Checked int
	Fixed   int
	Failed  int
}

// VacancyReconciler 定期重算所有案件的 has_vacancies，修正漂移
type VacancyReconciler struct {
	base    context.Context
	svc     Recomputer
	pool    worker.Pool
	metrics *metrics.Metrics
	logger  *zap.Logger
	timeout time.Duration
}

// NewVacancyReconciler 的 ctx 是排程執行的上層 context，結束後不再啟動新的 run，
// 執行中的 run 也會跟著取消
func NewVacancyReconciler(ctx context.Context, svc Recomputer, pool worker.Pool, m *metrics.Metrics, logger *zap.Logger) *VacancyReconciler {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VacancyReconciler{
		base:    ctx,
		svc:     svc,
		pool:    pool,
		metrics: m,
		logger:  logger,
		timeout: 5 * time.Minute,
	}
}

// Run 實作 cron.Job
func (j *VacancyReconciler) Run() {
	if err := j.base.Err(); err != nil {
		j.logger.Info("Skipping vacancy reconcile job", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(j.base, j.timeout)
	defer cancel()
	_, _ = j.RunContext(ctx)
}

func (j *VacancyReconciler) RunContext(ctx context.Context) (ReconcileResult, error) {
	j.logger.Info("Starting vacancy reconcile job")

	ids, err := j.svc.ListProjectIDs(ctx)
	if err != nil {
		j.logger.Error("Failed to list projects", zap.Error(err))
		j.metrics.ReconcileRun("error")
		return ReconcileResult{}, err
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		res = ReconcileResult{Checked: len(ids)}
	)
	for i, id := range ids {
		id := id
		wg.Add(1)
		err := j.pool.Submit(ctx, func() {
			defer wg.Done()
			st, err := j.svc.RecomputeVacancies(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				res.Failed++
				j.logger.Warn("Failed to recompute vacancies", zap.Int("project_id", id), zap.Error(err))
			case st.Changed:
				res.Fixed++
				j.logger.Info("Corrected vacancy flag",
					zap.Int("project_id", id),
					zap.Bool("has_vacancies", st.HasVacancies),
					zap.Int("participants", st.Count),
				)
			}
		})
		if err != nil {
			wg.Done()
			// ctx 結束後剩下的案件都不再送出
			if ctxErr := ctx.Err(); ctxErr != nil {
				mu.Lock()
				res.Failed += len(ids) - i
				mu.Unlock()
				j.logger.Warn("Vacancy reconcile interrupted", zap.Int("remaining", len(ids)-i), zap.Error(ctxErr))
				break
			}
			mu.Lock()
			res.Failed++
			mu.Unlock()
			j.logger.Warn("Failed to submit reconcile task", zap.Int("project_id", id), zap.Error(err))
		}
	}
	wg.Wait()

	j.metrics.DriftFixed(res.Fixed)
	switch {
	case ctx.Err() != nil:
		j.metrics.ReconcileRun("canceled")
	case res.Failed > 0:
		j.metrics.ReconcileRun("partial")
	default:
		j.metrics.ReconcileRun("ok")
	}
	j.logger.Info("Vacancy reconcile job completed",
		zap.Int("checked", res.Checked),
		zap.Int("fixed", res.Fixed),
		zap.Int("failed", res.Failed),
	)
	return res, nil
}

// cronLogger 把 cron 的 log 轉給 zap；cron 的 Info 很頻繁，降為 Debug
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}

// skipIfRunning 讓上一輪還沒結束時直接略過這一輪
func skipIfRunning(job cron.Job, logger *zap.Logger) cron.Job {
	return cron.NewChain(cron.SkipIfStillRunning(cronLogger{logger.Sugar()})).Then(job)
}

// Schedule 依 cron spec 排程 job 並啟動；呼叫端負責 Stop
func Schedule(spec string, job cron.Job, logger *zap.Logger) (*cron.Cron, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := cron.New(cron.WithLogger(cronLogger{logger.Sugar()}))
	if _, err := c.AddJob(spec, skipIfRunning(job, logger)); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
