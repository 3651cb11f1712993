package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	achievementinadapter "hunttrack/internal/modules/achievement/adapter/in"
	achievementoutadapter "hunttrack/internal/modules/achievement/adapter/out"
	achievementdomain "hunttrack/internal/modules/achievement/domain"
	achievementservice "hunttrack/internal/modules/achievement/service"
	achievementusecase "hunttrack/internal/modules/achievement/usecase"
	applicationinadapter "hunttrack/internal/modules/application/adapter/in"
	applicationoutadapter "hunttrack/internal/modules/application/adapter/out"
	applicationdomain "hunttrack/internal/modules/application/domain"
	applicationservice "hunttrack/internal/modules/application/service"
	applicationusecase "hunttrack/internal/modules/application/usecase"
	attachmentinadapter "hunttrack/internal/modules/attachment/adapter/in"
	attachmentoutadapter "hunttrack/internal/modules/attachment/adapter/out"
	attachmentservice "hunttrack/internal/modules/attachment/service"
	attachmentusecase "hunttrack/internal/modules/attachment/usecase"
	feedbackoutadapter "hunttrack/internal/modules/feedback/adapter/out"
	feedbackservice "hunttrack/internal/modules/feedback/service"
	feedbackusecase "hunttrack/internal/modules/feedback/usecase"
	metricsinadapter "hunttrack/internal/modules/metrics/adapter/in"
	metricsoutadapter "hunttrack/internal/modules/metrics/adapter/out"
	metricsdomain "hunttrack/internal/modules/metrics/domain"
	metricsout "hunttrack/internal/modules/metrics/port/out"
	metricsservice "hunttrack/internal/modules/metrics/service"
	metricsusecase "hunttrack/internal/modules/metrics/usecase"
	reportinadapter "hunttrack/internal/modules/report/adapter/in"
	reportoutadapter "hunttrack/internal/modules/report/adapter/out"
	reportservice "hunttrack/internal/modules/report/service"
	reportusecase "hunttrack/internal/modules/report/usecase"
	studyinadapter "hunttrack/internal/modules/study/adapter/in"
	studyoutadapter "hunttrack/internal/modules/study/adapter/out"
	studyservice "hunttrack/internal/modules/study/service"
	studyusecase "hunttrack/internal/modules/study/usecase"
	"hunttrack/internal/platform/clock"
	"hunttrack/internal/platform/config"
	"hunttrack/internal/platform/id"
	"hunttrack/internal/platform/sqlstore"
	"hunttrack/internal/platform/tx"
	"hunttrack/internal/server"
	uiapp "hunttrack/internal/ui/app"
)

type App struct {
	ApplicationCLI applicationinadapter.CLIHandler
	StudyCLI       studyinadapter.CLIHandler
	MetricsCLI     metricsinadapter.CLIHandler
	AchievementCLI achievementinadapter.CLIHandler
	AttachmentCLI  attachmentinadapter.CLIHandler
	ReportCLI      reportinadapter.CLIHandler
	Server         *server.Server

	tui     uiapp.Ports
	logger  *zap.Logger
	closers []func() error
}

// New wires every module against one store. The caller owns the returned App
// and must Close it.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := &App{logger: logger}

	store, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver: cfg.Storage.Driver,
		Path:   cfg.Storage.Path,
		DSN:    cfg.Storage.DSN,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	app.closers = append(app.closers, store.Close)

	clk := clock.SystemClock{}
	ids := id.UUID{}
	writes := tx.NewSerialManager()
	hooks := &changeHooks{logger: logger.Named("hooks")}

	statuses, err := applicationdomain.NewStatusSet(cfg.StatusOptions)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("status options: %w", err)
	}
	applicationUC := applicationusecase.NewInteractor(
		applicationservice.NewApplicationService(clk, ids, writes, applicationoutadapter.NewDBRRepository(store.Session(), logger), statuses),
		hooks,
	)
	studyUC := studyusecase.NewInteractor(
		studyservice.NewStudyService(clk, ids, writes, studyoutadapter.NewDBRRepository(store.Session(), logger)),
		hooks,
	)

	rules, err := feedbackservice.RulesFromConfig(cfg.Feedback)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("feedback rules: %w", err)
	}
	feedbackUC := feedbackusecase.NewInteractor(feedbackservice.NewFeedbackService(rules, cfg.Feedback.Messages, feedbackoutadapter.NewRandomPicker()))

	var publisher metricsout.SnapshotPublisher = metricsoutadapter.NoopPublisher{}
	if cfg.Redis.Addr != "" {
		redisPublisher, err := metricsoutadapter.NewRedisPublisher(ctx, metricsoutadapter.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Redis.Key,
			Channel:  cfg.Redis.Channel,
		}, logger)
		if err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		app.closers = append(app.closers, redisPublisher.Close)
		publisher = redisPublisher
		hooks.publish = true
	}
	metricsUC := metricsusecase.NewInteractor(
		metricsservice.NewMetricsService(clk, metricsParams(cfg),
			metricsoutadapter.NewApplicationSourceAdapter(applicationUC),
			metricsoutadapter.NewStudySourceAdapter(studyUC),
		),
		feedbackUC,
		publisher,
	)

	achievementUC := achievementusecase.NewInteractor(achievementservice.NewAchievementService(
		clk,
		writes,
		achievementdomain.Milestones(cfg.Achievements.StudyHours, cfg.Achievements.StreakDays),
		achievementoutadapter.NewDBRUnlockStore(store.Session(), logger),
		achievementoutadapter.NewMetricsProgressAdapter(metricsUC),
	))
	hooks.achievements = achievementUC
	hooks.metrics = metricsUC

	attachmentUC := attachmentusecase.NewInteractor(attachmentservice.NewAttachmentService(
		clk,
		attachmentoutadapter.NewLocalFileStore(cfg.UploadDirectory),
		attachmentoutadapter.NewPDFPageCounter(),
		cfg.AllowedExtensions,
		logger,
	))

	reportUC := reportusecase.NewInteractor(reportservice.NewReportService(
		clk,
		reportoutadapter.NewApplicationSourceAdapter(applicationUC),
		reportoutadapter.NewStudySourceAdapter(studyUC),
		reportoutadapter.NewHighlightSourceAdapter(metricsUC),
		reportoutadapter.NewFileDocumentStore(),
		logger,
	), clk, filepath.Join(cfg.DataDir, "reports"))

	app.ApplicationCLI = applicationinadapter.NewCLIHandler(applicationUC)
	app.StudyCLI = studyinadapter.NewCLIHandler(studyUC)
	app.MetricsCLI = metricsinadapter.NewCLIHandler(metricsUC)
	app.AchievementCLI = achievementinadapter.NewCLIHandler(achievementUC)
	app.AttachmentCLI = attachmentinadapter.NewCLIHandler(attachmentUC)
	app.ReportCLI = reportinadapter.NewCLIHandler(reportUC)
	app.Server = server.New(server.Options{
		Addr:         cfg.HTTPAddr,
		Logger:       logger,
		Applications: applicationUC,
		Study:        studyUC,
		Metrics:      metricsUC,
		Achievements: achievementUC,
	})
	app.tui = uiapp.Ports{
		Applications: applicationUC,
		Study:        studyUC,
		Metrics:      metricsUC,
		Achievements: achievementUC,
	}
	return app, nil
}

func metricsParams(cfg config.Config) metricsdomain.Params {
	return metricsdomain.Params{
		Statuses:          cfg.StatusOptions,
		InterviewStatuses: cfg.InterviewStatuses,
		ClosedStatuses:    cfg.ClosedStatuses,
		DailyTarget:       cfg.DailyStudyTargetMinutes,
		WeeklyGoal:        cfg.WeeklyApplicationGoal,
		StreakMinimum:     cfg.StreakMinimumMinutes,
		StreakGraceDays:   cfg.StreakGraceDays,
	}
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	if err := a.logger.Sync(); err != nil {
		a.logger.Debug("sync logger", zap.Error(err))
	}
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	program := tea.NewProgram(uiapp.NewModel(app.tui), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
