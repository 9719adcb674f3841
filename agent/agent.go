package agent

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"linkedin-agent/analytics"
	"linkedin-agent/config"
	"linkedin-agent/content"
	"linkedin-agent/journal"
	"linkedin-agent/linkedin"
	"linkedin-agent/notify"
)

// Agent owns the daily posting pipeline: template store, composer, publisher,
// journals and the cron trigger. It is built once from the startup
// configuration and runs until the process is signalled.
type Agent struct {
	cfg       config.Config
	store     *content.Store
	composer  *content.Composer
	client    *linkedin.Client
	publisher *linkedin.Publisher
	postLog   *journal.PostLog
	errorLog  *journal.ErrorLog
	recorder  *analytics.Recorder
	tracker   *analytics.Tracker
	notifier  *notify.Notifier
	logger    *logrus.Logger
	loc       *time.Location
	now       func() time.Time
	db        *sql.DB
	cron      *cron.Cron
}

// New wires the agent's components from the configuration. Optional
// collaborators (analytics, notifications) degrade to disabled rather than
// failing construction.
func New(cfg config.Config, logger *logrus.Logger) (*Agent, error) {
	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		logger.WithError(err).Warnf("Could not load timezone %q, falling back to UTC", cfg.Scheduler.Timezone)
		loc = time.UTC
	}

	client := linkedin.NewClient(cfg.AccessToken, cfg.PersonID, logger)

	a := &Agent{
		cfg:       cfg,
		store:     content.NewStore(cfg.TemplatesDir, logger),
		composer:  content.NewComposer(content.NewRandPicker()),
		client:    client,
		publisher: linkedin.NewPublisher(client, cfg.PostingEnabled, logger),
		postLog:   journal.NewPostLog(cfg.LogsDir),
		errorLog:  journal.NewErrorLog(cfg.LogsDir),
		logger:    logger,
		loc:       loc,
		now:       time.Now,
	}

	dbPath := filepath.Join(cfg.DataDir, "analytics", "performance.db")
	if db, err := analytics.InitDB(dbPath); err != nil {
		logger.WithError(err).Warn("Analytics database unavailable, engagement tracking disabled")
	} else {
		a.db = db
		a.recorder = analytics.NewRecorder(db, logger)
	}
	if cfg.AnalyticsBaseURL != "" {
		a.tracker = analytics.NewTracker(cfg.AnalyticsBaseURL)
	}

	notifier, err := notify.New(cfg.DiscordToken, cfg.AdminChannelID, logger)
	if err != nil {
		logger.WithError(err).Warn("Admin notifications disabled")
	} else {
		a.notifier = notifier
	}

	return a, nil
}

// Initialize prepares directories, warms the template store and verifies API
// connectivity. The connectivity probe is fatal only when posting is enabled;
// in dry-run mode the network is never needed.
func (a *Agent) Initialize(ctx context.Context) error {
	a.logger.Info("Initializing daily post scheduler...")

	for _, dir := range []string{a.cfg.LogsDir, a.cfg.TemplatesDir, a.cfg.DataDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if _, err := a.store.LoadTemplates(); err != nil {
		return err
	}

	if a.cfg.PostingEnabled {
		if err := a.client.TestConnection(ctx); err != nil {
			return fmt.Errorf("linkedin connection check failed: %w", err)
		}
	} else {
		a.logger.Info("Dry-run mode detected (POSTING_ENABLED != true). Skipping API connectivity test.")
	}

	a.logger.Info("Scheduler initialized successfully")
	return nil
}

// Start registers the daily cron trigger. The job fires once per calendar day
// at the configured wall-clock time in the configured timezone.
func (a *Agent) Start() error {
	if a.cron != nil {
		a.logger.Warn("Scheduler is already running")
		return nil
	}
	if !a.cfg.Scheduler.Enabled {
		a.logger.Warn("Scheduler is disabled in configuration; no daily trigger registered")
		return nil
	}

	spec := fmt.Sprintf("CRON_TZ=%s %d %d * * *", a.loc.String(), a.cfg.Minute, a.cfg.Hour)
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		a.RunCycle(context.Background())
	}); err != nil {
		return fmt.Errorf("could not set up cron job: %w", err)
	}
	c.Start()
	a.cron = c

	a.logger.Infof("Scheduler started: daily at %s (%s)", a.cfg.Scheduler.ScheduleTime, a.loc)
	return nil
}

// Stop halts the cron trigger and releases the analytics database. A cycle
// already in flight runs to its terminal state.
func (a *Agent) Stop() {
	if a.cron != nil {
		a.cron.Stop()
		a.cron = nil
		a.logger.Info("Scheduler stopped.")
	}
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
}

// Run is the main entry point: build, initialize, start and block until
// SIGINT or SIGTERM.
func Run(cfg config.Config, logger *logrus.Logger) {
	a, err := New(cfg, logger)
	if err != nil {
		logger.Fatalf("Error initializing agent: %v", err)
	}

	if err := a.Initialize(context.Background()); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}
	if err := a.Start(); err != nil {
		logger.Fatalf("Error starting scheduler: %v", err)
	}

	fmt.Println("Agent is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	a.Stop()
	fmt.Println("Agent stopped gracefully.")
}
