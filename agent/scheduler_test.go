package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedin-agent/config"
	"linkedin-agent/content"
	"linkedin-agent/journal"
	"linkedin-agent/linkedin"
	"linkedin-agent/models"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func writeTemplate(t *testing.T, dir string, tpl models.Template) {
	t.Helper()
	data, err := json.Marshal(tpl)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, tpl.Name+".json"), data, 0644))
}

// newTestAgent builds an agent against temp dirs with two templates "a" and
// "b" and a fixed clock at 09:00 on day-of-year 10 in Los Angeles.
func newTestAgent(t *testing.T, postingEnabled bool, serverURL string) *Agent {
	t.Helper()

	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	base := t.TempDir()
	templatesDir := filepath.Join(base, "templates")
	logsDir := filepath.Join(base, "logs")
	require.NoError(t, os.MkdirAll(templatesDir, 0755))

	writeTemplate(t, templatesDir, models.Template{
		Name:      "a",
		Structure: map[string]string{"insight": "{insights}"},
		Hashtags:  []string{"#TemplateA"},
		Hooks:     []string{"hook a"},
	})
	writeTemplate(t, templatesDir, models.Template{
		Name:      "b",
		Structure: map[string]string{"insight": "{insights}"},
		Hashtags:  []string{"#TemplateB"},
		Hooks:     []string{"hook b"},
	})

	logger := quietLogger()
	client := linkedin.NewClient("test-token", "person-123", logger)
	if serverURL != "" {
		client.BaseURL = serverURL
	}

	cfg := config.Config{
		Scheduler: config.SchedulerConfig{
			ScheduleTime: "09:00",
			Timezone:     "America/Los_Angeles",
			Enabled:      true,
			Templates:    []string{"a", "b"},
			Rotation:     config.DefaultRotation,
		},
		Hour:           9,
		PostingEnabled: postingEnabled,
		TemplatesDir:   templatesDir,
		LogsDir:        logsDir,
		DataDir:        filepath.Join(base, "data"),
	}

	return &Agent{
		cfg:       cfg,
		store:     content.NewStore(templatesDir, logger),
		composer:  content.NewComposer(content.NewRandPicker()),
		client:    client,
		publisher: linkedin.NewPublisher(client, postingEnabled, logger),
		postLog:   journal.NewPostLog(logsDir),
		errorLog:  journal.NewErrorLog(logsDir),
		logger:    logger,
		loc:       la,
		now: func() time.Time {
			return time.Date(2026, 1, 10, 9, 0, 0, 0, la)
		},
	}
}

func TestDryRunCycleEndToEnd(t *testing.T) {
	a := newTestAgent(t, false, "")

	result := a.RunCycle(context.Background())
	assert.Equal(t, OutcomeDryRun, result.Outcome)
	assert.Equal(t, linkedin.DryRunPostID, result.PostID)

	// Day-of-year 10 with two templates selects templates[10 % 2] = "a".
	assert.Contains(t, result.Content, "#TemplateA")
	assert.Contains(t, result.Content, "Day 10")

	entries, err := a.postLog.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.StatusDryRun, entries[0].Status)
	assert.Equal(t, linkedin.DryRunPostID, entries[0].PostID)
	assert.Equal(t, result.Content, entries[0].Content)

	errs, err := a.errorLog.Entries()
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestSecondTriggerSameDayIsSkipped(t *testing.T) {
	a := newTestAgent(t, false, "")

	first := a.RunCycle(context.Background())
	require.Equal(t, OutcomeDryRun, first.Outcome)

	second := a.RunCycle(context.Background())
	assert.Equal(t, OutcomeSkipped, second.Outcome)

	entries, err := a.postLog.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNextDayTriggerPostsAgain(t *testing.T) {
	a := newTestAgent(t, false, "")
	la := a.loc

	require.Equal(t, OutcomeDryRun, a.RunCycle(context.Background()).Outcome)

	a.now = func() time.Time {
		return time.Date(2026, 1, 11, 9, 0, 0, 0, la)
	}
	next := a.RunCycle(context.Background())
	assert.Equal(t, OutcomeDryRun, next.Outcome)
	// Day 11 rotates to the second template.
	assert.Contains(t, next.Content, "#TemplateB")

	entries, err := a.postLog.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestPublishFailureIsolatedAndRetriedNextTrigger(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 2 {
			http.Error(w, "upstream down", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "urn:li:share:99"})
	}))
	defer server.Close()

	a := newTestAgent(t, true, server.URL)

	failed := a.RunCycle(context.Background())
	assert.Equal(t, OutcomeError, failed.Outcome)
	require.Error(t, failed.Err)

	errs, err := a.errorLog.Entries()
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error, "500")

	posts, err := a.postLog.Entries()
	require.NoError(t, err)
	assert.Empty(t, posts)

	// With no post log entry for today, the guard lets the next trigger
	// through and the cycle retries composing and publishing.
	retried := a.RunCycle(context.Background())
	assert.Equal(t, OutcomePosted, retried.Outcome)
	assert.Equal(t, "urn:li:share:99", retried.PostID)
	assert.Equal(t, 2, calls)

	posts, err = a.postLog.Entries()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, models.StatusPublished, posts[0].Status)
}

func TestRunOncePassesThroughGuard(t *testing.T) {
	a := newTestAgent(t, false, "")

	require.Equal(t, OutcomeDryRun, a.RunOnce(context.Background()).Outcome)
	assert.Equal(t, OutcomeSkipped, a.RunOnce(context.Background()).Outcome)
}

func TestRotationFallsBackWhenConfiguredNamesUnknown(t *testing.T) {
	a := newTestAgent(t, false, "")
	// Point the store at an empty directory: defaults get synthesized there
	// and none of them match the configured names "a"/"b".
	emptyDir := filepath.Join(t.TempDir(), "none")
	a.store = content.NewStore(emptyDir, quietLogger())

	result := a.RunCycle(context.Background())
	assert.Equal(t, OutcomeDryRun, result.Outcome)
	assert.Contains(t, result.Content, fmt.Sprintf("Day %d", 10))
}
