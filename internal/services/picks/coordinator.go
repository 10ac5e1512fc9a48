package picks

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/msommer/pickem/internal/dependencies/clock"
	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/services/schedule"
	"github.com/msommer/pickem/internal/services/scoring"
	"github.com/msommer/pickem/internal/storage"
)

// Selection is a partial pick submission. A nil field leaves the
// existing value untouched; a set field overwrites it.
type Selection struct {
	FirstGoalPlayerID *model.PlayerID
	GWGoalPlayerID    *model.PlayerID
}

// PickLabels is a pick rendered as roster display names
type PickLabels struct {
	FirstGoal string `json:"first_goal,omitempty"`
	GWGoal    string `json:"gw_goal,omitempty"`
}

// ResolvedGame is a concluded (or started) game with the user's score
type ResolvedGame struct {
	Game    *model.Game       `json:"game"`
	Outcome PickLabels        `json:"outcome"`
	Pick    *model.Pick       `json:"pick,omitempty"`
	Labels  PickLabels        `json:"pick_labels"`
	Score   model.ScoreResult `json:"score"`
}

// OpenGame is a future game a user may still pick on
type OpenGame struct {
	Game   *model.Game `json:"game"`
	Locked bool        `json:"locked"`
	Pick   *model.Pick `json:"pick,omitempty"`
}

// ViewModel is the read model for the pick'em page: classified games
// with the user's picks and earned points
type ViewModel struct {
	Past     []ResolvedGame `json:"past"`
	Next     *OpenGame      `json:"next,omitempty"`
	Upcoming []OpenGame     `json:"upcoming"`
}

// Coordinator orchestrates classification, pick storage and scoring
type Coordinator struct {
	storage  storage.Storage
	schedule *schedule.Service
	scoring  *scoring.Service
	clock    clock.Clock
	logger   *slog.Logger
}

// NewCoordinator creates a new pick Coordinator
func NewCoordinator(
	storage storage.Storage,
	schedule *schedule.Service,
	scoring *scoring.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Coordinator {
	return &Coordinator{
		storage:  storage,
		schedule: schedule,
		scoring:  scoring,
		clock:    clock,
		logger:   logger,
	}
}

// BuildViewModel assembles the pick'em read model for a user
func (c *Coordinator) BuildViewModel(ctx context.Context, userID model.UserID) (*ViewModel, error) {
	games, err := c.schedule.Games(ctx)
	if err != nil {
		return nil, model.NewUpstreamError("could not load games", err)
	}

	userPicks, err := c.storage.ListPicksForUser(ctx, userID)
	if err != nil {
		return nil, model.NewUpstreamError("could not load picks", err)
	}
	pickByGame := make(map[model.GameID]*model.Pick, len(userPicks))
	for _, pick := range userPicks {
		pickByGame[pick.GameID] = pick
	}

	now := c.clock.Now()
	cls := c.schedule.Classify(games, now)

	vm := &ViewModel{
		Past:     make([]ResolvedGame, 0, len(cls.Past)),
		Upcoming: make([]OpenGame, 0, len(cls.Upcoming)),
	}

	for _, game := range cls.Past {
		pick := pickByGame[game.ID]
		resolved := ResolvedGame{
			Game: game,
			Outcome: PickLabels{
				FirstGoal: game.PlayerName(game.FirstGoalPlayerID),
				GWGoal:    game.PlayerName(game.GWGoalPlayerID),
			},
			Pick:  pick,
			Score: c.scoring.Score(pick, game),
		}
		if pick != nil {
			resolved.Labels = PickLabels{
				FirstGoal: game.PlayerName(pick.FirstGoalPlayerID),
				GWGoal:    game.PlayerName(pick.GWGoalPlayerID),
			}
		}
		vm.Past = append(vm.Past, resolved)
	}

	if cls.Next != nil {
		vm.Next = &OpenGame{
			Game:   cls.Next,
			Locked: c.schedule.IsLocked(cls.Next, now),
			Pick:   pickByGame[cls.Next.ID],
		}
	}

	for _, game := range cls.Upcoming {
		vm.Upcoming = append(vm.Upcoming, OpenGame{
			Game:   game,
			Locked: c.schedule.IsLocked(game, now),
			Pick:   pickByGame[game.ID],
		})
	}

	return vm, nil
}

// SubmitPick creates or replaces the user's pick for a game. The lock
// is re-checked at submit time, selections merge field-wise into any
// existing pick, and exactly one upsert reaches storage per success.
func (c *Coordinator) SubmitPick(ctx context.Context, userID model.UserID, gameID model.GameID, sel Selection) (*model.Pick, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			return nil, model.ErrGameNotFound
		}
		return nil, model.NewUpstreamError("could not load game", err)
	}

	now := c.clock.Now()
	if c.schedule.IsLocked(game, now) {
		return nil, model.ErrGameLocked
	}

	if sel.FirstGoalPlayerID != nil && *sel.FirstGoalPlayerID != "" && !game.HasPlayer(*sel.FirstGoalPlayerID) {
		return nil, model.ErrUnknownPlayer
	}
	if sel.GWGoalPlayerID != nil && *sel.GWGoalPlayerID != "" && !game.HasPlayer(*sel.GWGoalPlayerID) {
		return nil, model.ErrUnknownPlayer
	}

	pick, err := c.storage.GetPick(ctx, userID, gameID)
	switch {
	case err == nil:
		// Merge into the existing pick
	case errors.Is(err, model.ErrPickNotFound):
		pick = &model.Pick{
			UserID:    userID,
			GameID:    gameID,
			CreatedAt: now,
		}
	default:
		return nil, model.NewUpstreamError("could not load existing pick", err)
	}

	c.merge(pick, sel, now)

	if err := c.storage.SavePick(ctx, pick); err != nil {
		return nil, model.NewUpstreamError("could not save pick", err)
	}

	c.logger.Info("pick submitted",
		slog.String("user_id", string(userID)),
		slog.String("game_id", string(gameID)),
	)
	return pick, nil
}

// merge applies a selection field-wise: setting one field must not
// erase the other unless explicitly overwritten
func (c *Coordinator) merge(pick *model.Pick, sel Selection, now time.Time) {
	if sel.FirstGoalPlayerID != nil {
		pick.FirstGoalPlayerID = *sel.FirstGoalPlayerID
	}
	if sel.GWGoalPlayerID != nil {
		pick.GWGoalPlayerID = *sel.GWGoalPlayerID
	}
	pick.UpdatedAt = now
}

// MyPicks returns all of the user's stored picks
func (c *Coordinator) MyPicks(ctx context.Context, userID model.UserID) ([]*model.Pick, error) {
	picks, err := c.storage.ListPicksForUser(ctx, userID)
	if err != nil {
		return nil, model.NewUpstreamError("could not load picks", err)
	}
	return picks, nil
}
