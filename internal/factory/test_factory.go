package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/msommer/pickem/internal/dependencies/mocks"
	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/services/auth"
	"github.com/msommer/pickem/internal/services/schedule"
	"github.com/msommer/pickem/internal/storage/memory"
	"github.com/msommer/pickem/internal/testutil"
)

// TestTokenSecret is the signing secret used by test apps
const TestTokenSecret = "test-secret-0123456789abcdef"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))

	app, err := newWithDependencies(
		store,
		mockClock,
		schedule.DefaultConfig(),
		auth.Config{TokenSecret: TestTokenSecret},
		testutil.NopLogger(),
	)
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// LoadTestSchedule seeds a three-game schedule around the mock clock:
// one game already concluded, one starting in an hour, one tomorrow.
// Each game has the same four-player roster.
func (t *TestApp) LoadTestSchedule(ctx context.Context) error {
	now := t.MockClock.Now()

	games := []*model.Game{
		{
			ID:                "game-1",
			GameTime:          now.Add(-24 * time.Hour),
			HomeTeam:          "Aurora",
			AwayTeam:          "Glaciers",
			Roster:            testRoster(),
			FirstGoalPlayerID: "p1",
			GWGoalPlayerID:    "p2",
		},
		{
			ID:       "game-2",
			GameTime: now.Add(time.Hour),
			HomeTeam: "Aurora",
			AwayTeam: "Comets",
			Roster:   testRoster(),
		},
		{
			ID:       "game-3",
			GameTime: now.Add(25 * time.Hour),
			HomeTeam: "Comets",
			AwayTeam: "Glaciers",
			Roster:   testRoster(),
		},
	}
	for _, g := range games {
		g.CreatedAt = now
		g.UpdatedAt = now
	}

	return t.ScheduleService.ImportGames(ctx, games)
}

func testRoster() []model.Player {
	return []model.Player{
		{ID: "p1", Name: "Player One"},
		{ID: "p2", Name: "Player Two"},
		{ID: "p3", Name: "Player Three"},
		{ID: "p4", Name: "Player Four"},
	}
}

// SignupTestUser creates a user through the auth service
func (t *TestApp) SignupTestUser(ctx context.Context, username string) (*auth.Result, error) {
	return t.AuthService.Signup(ctx, auth.SignupInput{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "hunter2hunter2",
	})
}
