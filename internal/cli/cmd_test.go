package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/questlog/internal/cli/formatter"
	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/alexanderramin/questlog/internal/intelligence"
	"github.com/alexanderramin/questlog/internal/oracle"
	"github.com/alexanderramin/questlog/internal/store"
	"github.com/alexanderramin/questlog/internal/testutil"
	"github.com/alexanderramin/questlog/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToday = "2026-09-01"

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// stubOracle returns canned text per task, or an error for all tasks.
type stubOracle struct {
	replies map[oracle.TaskType]string
	err     error
	calls   int
}

func (s *stubOracle) Generate(ctx context.Context, req oracle.GenerateRequest) (*oracle.GenerateResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &oracle.GenerateResponse{Text: s.replies[req.Task]}, nil
}

func (s *stubOracle) Available(ctx context.Context) bool {
	return s.err == nil
}

// newTestApp wires an App against an in-memory store and the given
// oracle stub. Non-interactive by default so no forms block.
func newTestApp(t *testing.T, client oracle.Client) *App {
	t.Helper()
	if client == nil {
		client = &stubOracle{}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(testutil.NewTestDB(t), logger)
	tr := tracker.New(st.Load(context.Background()), st, logger)

	// Commands apply the persisted theme; reset the package styles so
	// tests do not leak palettes into each other.
	t.Cleanup(func() { formatter.ApplyTheme(store.DefaultTheme) })

	return &App{
		Tracker:       tr,
		Chat:          intelligence.NewChatSession(client, tr),
		Suggestions:   intelligence.NewSuggestionService(client),
		Scheduler:     intelligence.NewScheduleService(client),
		Briefings:     intelligence.NewBriefingService(client),
		IsInteractive: func() bool { return false },
		Today:         func() string { return testToday },
	}
}

// runCmd executes args through the cobra tree, capturing everything the
// handlers print to stdout.
func runCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	orig := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw

	captured := make(chan string, 1)
	go func() {
		var b strings.Builder
		io.Copy(&b, pr)
		captured <- b.String()
	}()

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true
	execErr := root.Execute()

	pw.Close()
	os.Stdout = orig
	return stripANSI(<-captured), execErr
}

func addQuest(t *testing.T, app *App, q domain.Quest) domain.Quest {
	t.Helper()
	draft := domain.QuestDraft{
		Title:       q.Title,
		Description: q.Description,
		XP:          q.XP,
		DueDate:     q.DueDate,
		Tags:        q.Tags,
	}
	return app.Tracker.AddQuest(context.Background(), draft)
}

func TestBoardCmd(t *testing.T) {
	app := newTestApp(t, nil)
	addQuest(t, app, testutil.NewTestQuest("Run 5k", testutil.WithXP(30), testutil.WithDueDate(testToday)))
	addQuest(t, app, testutil.NewTestQuest("Read a chapter"))

	out, err := runCmd(t, app, "board")
	require.NoError(t, err)
	assert.Contains(t, out, "Run 5k")
	assert.Contains(t, out, "Read a chapter")
	assert.Contains(t, out, "Today")
}

func TestBoardCmd_Filters(t *testing.T) {
	app := newTestApp(t, nil)
	q := addQuest(t, app, testutil.NewTestQuest("Done quest", testutil.WithXP(10)))
	app.Tracker.CompleteQuest(context.Background(), q.ID)
	addQuest(t, app, testutil.NewTestQuest("Still open"))

	out, err := runCmd(t, app, "board", "--filter", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "Done quest")
	assert.NotContains(t, out, "Still open")

	out, err = runCmd(t, app, "board", "--filter", "today")
	require.NoError(t, err)
	assert.Contains(t, out, "No quests here")

	_, err = runCmd(t, app, "board", "--filter", "bogus")
	require.Error(t, err)
}

func TestBoardCmd_SelectedDay(t *testing.T) {
	app := newTestApp(t, nil)
	addQuest(t, app, testutil.NewTestQuest("Later", testutil.WithDueDate("2026-09-10")))
	addQuest(t, app, testutil.NewTestQuest("Sooner", testutil.WithDueDate("2026-09-02")))

	out, err := runCmd(t, app, "board", "--date", "2026-09-10")
	require.NoError(t, err)
	assert.Contains(t, out, "Later")
	assert.NotContains(t, out, "Sooner")

	_, err = runCmd(t, app, "board", "--date", "not-a-date")
	require.Error(t, err)
}

func TestAddCmd_Flags(t *testing.T) {
	app := newTestApp(t, nil)

	out, err := runCmd(t, app, "add",
		"--title", "Run 5k",
		"--description", "A morning run",
		"--xp", "30",
		"--due", "2026-09-05",
		"--tag", "Fitness", "--tag", "health")
	require.NoError(t, err)
	assert.Contains(t, out, "Added quest Run 5k")

	quests := app.Tracker.Quests()
	require.Len(t, quests, 1)
	assert.Equal(t, "2026-09-05", quests[0].DueDate)
	assert.Equal(t, []string{"fitness", "health"}, quests[0].Tags, "tags are normalized")
}

func TestAddCmd_ValidationErrors(t *testing.T) {
	app := newTestApp(t, nil)

	_, err := runCmd(t, app, "add", "--title", "x", "--description", "y", "--xp", "5")
	require.Error(t, err, "xp below the minimum is rejected")

	_, err = runCmd(t, app, "add")
	require.Error(t, err, "non-interactive add needs flags")

	assert.Empty(t, app.Tracker.Quests())
}

func TestDoneCmd(t *testing.T) {
	app := newTestApp(t, nil)
	q := addQuest(t, app, testutil.NewTestQuest("Run 5k", testutil.WithXP(30)))

	out, err := runCmd(t, app, "done", q.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Quest complete: Run 5k")
	assert.Contains(t, out, "+30 XP")
	assert.Contains(t, out, "30/100 XP")

	out, err = runCmd(t, app, "done", q.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Already completed")
	assert.Equal(t, 30, app.Tracker.Progression().XP, "no double award")
}

func TestDoneCmd_LevelUp(t *testing.T) {
	app := newTestApp(t, nil)
	q := addQuest(t, app, testutil.NewTestQuest("Big win", testutil.WithXP(100)))

	out, err := runCmd(t, app, "done", q.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "LEVEL UP! You reached level 2!")
}

func TestDoneCmd_ByTitle(t *testing.T) {
	app := newTestApp(t, nil)
	addQuest(t, app, testutil.NewTestQuest("Run 5k"))

	out, err := runCmd(t, app, "done", "run 5k")
	require.NoError(t, err)
	assert.Contains(t, out, "Quest complete")
}

func TestDoneCmd_UnknownQuest(t *testing.T) {
	app := newTestApp(t, nil)
	_, err := runCmd(t, app, "done", "nope")
	require.Error(t, err)
}

func TestStatusCmd(t *testing.T) {
	app := newTestApp(t, nil)
	addQuest(t, app, testutil.NewTestQuest("Open", testutil.WithDueDate(testToday)))
	q := addQuest(t, app, testutil.NewTestQuest("Closed", testutil.WithXP(40)))
	app.Tracker.CompleteQuest(context.Background(), q.ID)

	out, err := runCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Lv 1")
	assert.Contains(t, out, "40/100 XP")
	assert.Contains(t, out, "ACTIVE")
	assert.Contains(t, out, "COMPLETED")
}

func TestThemeCmd(t *testing.T) {
	app := newTestApp(t, nil)

	out, err := runCmd(t, app, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "dark-fantasy")
	assert.Contains(t, out, "parchment")

	out, err = runCmd(t, app, "theme", "midnight")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme set to midnight")
	assert.Equal(t, "midnight", app.Tracker.Theme())

	_, err = runCmd(t, app, "theme", "neon-future")
	require.Error(t, err)
	assert.Equal(t, "midnight", app.Tracker.Theme())
}

func TestBoardCmd_Brief(t *testing.T) {
	app := newTestApp(t, nil)
	q := addQuest(t, app, testutil.NewTestQuest("Run 5k", testutil.WithDueDate(testToday)))
	addQuest(t, app, testutil.NewTestQuest("Read a chapter", testutil.WithDueDate(testToday)))

	stub := &stubOracle{replies: map[oracle.TaskType]string{
		oracle.TaskBriefing: fmt.Sprintf(
			`{"briefings":[{"id":%q,"timeframe":"Morning","hint":"Lay out your shoes tonight."}]}`, q.ID),
	}}
	app.Briefings = intelligence.NewBriefingService(stub)

	out, err := runCmd(t, app, "board", "--brief")
	require.NoError(t, err)
	assert.Contains(t, out, "WHEN")
	assert.Contains(t, out, "HINT")
	assert.Contains(t, out, "Morning")
	assert.Contains(t, out, "Lay out your shoes tonight.")
	assert.Contains(t, out, "Read a chapter", "quests without a briefing item stay on the board")
	assert.Equal(t, 1, stub.calls)
}

func TestBoardCmd_BriefOracleFailure(t *testing.T) {
	app := newTestApp(t, nil)
	addQuest(t, app, testutil.NewTestQuest("Run 5k"))
	app.Briefings = intelligence.NewBriefingService(&stubOracle{err: errors.New("down")})

	// The board still renders, just without the briefing columns.
	out, err := runCmd(t, app, "board", "--brief")
	require.NoError(t, err)
	assert.Contains(t, out, "Run 5k")
	assert.NotContains(t, out, "WHEN")
}

func TestShowCmd(t *testing.T) {
	app := newTestApp(t, nil)
	q := addQuest(t, app, testutil.NewTestQuest("Run 5k",
		testutil.WithXP(30), testutil.WithDueDate(testToday), testutil.WithTags("fitness")))

	out, err := runCmd(t, app, "show", q.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "QUEST")
	assert.Contains(t, out, "Run 5k")
	assert.Contains(t, out, "+30 XP")
	assert.Contains(t, out, "Active")
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "#fitness")
}

func TestShowCmd_UnknownQuest(t *testing.T) {
	app := newTestApp(t, nil)
	addQuest(t, app, testutil.NewTestQuest("Run 5k"))

	_, err := runCmd(t, app, "show", "nope")
	require.Error(t, err)
}
