package agent

import (
	"context"
	"time"

	"linkedin-agent/analytics"
	"linkedin-agent/content"
	"linkedin-agent/journal"
	"linkedin-agent/models"
)

// CycleOutcome identifies the terminal state of one scheduled cycle.
type CycleOutcome string

const (
	OutcomeSkipped CycleOutcome = "skipped"
	OutcomePosted  CycleOutcome = "posted"
	OutcomeDryRun  CycleOutcome = "dry-run"
	OutcomeError   CycleOutcome = "error"
)

// CycleResult reports how a cycle ended. Err is set only for OutcomeError.
type CycleResult struct {
	Outcome CycleOutcome
	PostID  string
	Content string
	Err     error
}

// RunCycle executes one scheduled posting cycle: idempotency check, template
// selection, composition, publish, journaling. Every failure is caught here
// and recorded; a failed cycle never crashes the process, and because no post
// log entry is written on failure, the next day's trigger retries naturally.
func (a *Agent) RunCycle(ctx context.Context) CycleResult {
	now := a.now()
	a.logger.Info("Running scheduled post...")

	if journal.HasPostedToday(a.postLog, now, a.loc) {
		a.logger.Info("Already posted today. Skipping.")
		return CycleResult{Outcome: OutcomeSkipped}
	}

	result, err := a.composeAndPublish(ctx, now)
	if err != nil {
		a.logger.WithError(err).Error("Scheduled post failed")
		entry := models.ErrorLogEntry{
			Timestamp: now.UTC().Format(time.RFC3339),
			Error:     err.Error(),
		}
		if logErr := a.errorLog.Append(entry); logErr != nil {
			a.logger.WithError(logErr).Error("Could not record error log entry")
		}
		a.notifier.CycleFailed(err)
		return CycleResult{Outcome: OutcomeError, Err: err}
	}

	a.logger.Info("Scheduled post completed successfully!")
	return result
}

// RunOnce is the manual trigger. It passes through the same idempotency guard
// as the scheduled path, so firing it on a day that already posted is a
// skipped cycle, not a duplicate post.
func (a *Agent) RunOnce(ctx context.Context) CycleResult {
	return a.RunCycle(ctx)
}

func (a *Agent) composeAndPublish(ctx context.Context, now time.Time) (CycleResult, error) {
	local := now.In(a.loc)

	templates, err := a.store.LoadTemplates()
	if err != nil {
		return CycleResult{}, err
	}
	eligible := content.OrderByNames(templates, a.cfg.Scheduler.Templates)

	tpl, err := content.SelectTemplate(eligible, local)
	if err != nil {
		return CycleResult{}, err
	}
	a.logger.Infof("Selected template %q for day %d", tpl.Name, local.YearDay())

	composition := a.composer.Compose(tpl, local)
	a.logger.Infof("Generated content:\n%s", composition.Text)

	result, err := a.publisher.Publish(ctx, composition.Text)
	if err != nil {
		return CycleResult{}, err
	}

	status := models.StatusPublished
	outcome := OutcomePosted
	if result.DryRun {
		status = models.StatusDryRun
		outcome = OutcomeDryRun
	}

	entry := models.PostLogEntry{
		Timestamp: now.UTC().Format(time.RFC3339),
		PostID:    result.ID,
		Content:   composition.Text,
		Status:    status,
	}
	if err := a.postLog.Append(entry); err != nil {
		// The publish already happened; the record is lost but the side
		// effect is not rolled back.
		a.logger.WithError(err).Error("Publish succeeded but journaling failed")
	}

	if !result.DryRun {
		a.trackEngagement(ctx, result.ID, tpl.Name, composition.Hook, now)
	}
	a.notifier.PostPublished(result.ID, status)

	return CycleResult{Outcome: outcome, PostID: result.ID, Content: composition.Text}, nil
}

// trackEngagement records the publish and, when the analytics endpoint is
// configured, fetches engagement and scores the hook. Failures here are
// logged and never fail the cycle.
func (a *Agent) trackEngagement(ctx context.Context, postID, template, hook string, now time.Time) {
	if a.recorder == nil {
		return
	}
	if err := a.recorder.RecordPublish(postID, template, hook, now); err != nil {
		a.logger.WithError(err).Warn("Could not record publish in analytics store")
		return
	}
	if a.tracker == nil {
		return
	}

	engagement, err := a.tracker.Fetch(ctx, postID)
	if err != nil {
		a.logger.WithError(err).Warn("Could not fetch engagement metrics")
		return
	}

	score := analytics.Score(engagement)
	if err := a.recorder.SaveEngagement(postID, engagement, score, now); err != nil {
		a.logger.WithError(err).Warn("Could not save engagement metrics")
		return
	}
	if score > analytics.TopHookThreshold && hook != "" {
		if err := a.recorder.MarkTopHook(hook, score, now); err != nil {
			a.logger.WithError(err).Warn("Could not mark top hook")
		}
	}
}
