package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/msommer/pickem/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case []Game:
		o.printGames(v)
	case Game:
		o.printGame(v)
	case []Pick:
		o.printPicks(v)
	case Pick:
		o.printPick(v)
	case ViewModel:
		o.printViewModel(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email,omitempty"`
	AvatarURL        string `json:"avatarUrl,omitempty"`
	DefaultFirstGoal string `json:"defaultFirstGoal,omitempty"`
	DefaultGWG       string `json:"defaultGWG,omitempty"`
}

func (u User) toModel() *model.User {
	return &model.User{
		ID:               model.UserID(u.ID),
		Username:         u.Username,
		Email:            u.Email,
		AvatarURL:        u.AvatarURL,
		DefaultFirstGoal: model.PlayerID(u.DefaultFirstGoal),
		DefaultGWG:       model.PlayerID(u.DefaultGWG),
	}
}

// AuthResult combines user and token
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Player response type
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Game response type
type Game struct {
	ID                string    `json:"id"`
	GameTime          time.Time `json:"gameTime"`
	HomeTeam          string    `json:"homeTeam"`
	AwayTeam          string    `json:"awayTeam"`
	Players           []Player  `json:"players"`
	FirstGoalPlayerID string    `json:"firstGoalPlayerId,omitempty"`
	GWGoalPlayerID    string    `json:"gwGoalPlayerId,omitempty"`
}

// Pick response type
type Pick struct {
	GameID            string    `json:"gameId"`
	FirstGoalPlayerID string    `json:"firstGoalPlayerId,omitempty"`
	GWGoalPlayerID    string    `json:"gwGoalPlayerId,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ViewModel mirrors the pick'em view model payload. The nested game
// and pick objects use the server's storage encoding.
type ViewModel struct {
	Past     []ResolvedGame `json:"past"`
	Next     *OpenGame      `json:"next,omitempty"`
	Upcoming []OpenGame     `json:"upcoming"`
}

// StoredGame is a game as the view model embeds it
type StoredGame struct {
	ID                string    `json:"id"`
	GameTime          time.Time `json:"game_time"`
	HomeTeam          string    `json:"home_team"`
	AwayTeam          string    `json:"away_team"`
	Roster            []Player  `json:"roster"`
	FirstGoalPlayerID string    `json:"first_goal_player_id,omitempty"`
	GWGoalPlayerID    string    `json:"gw_goal_player_id,omitempty"`
}

// StoredPick is a pick as the view model embeds it
type StoredPick struct {
	FirstGoalPlayerID string `json:"first_goal_player_id,omitempty"`
	GWGoalPlayerID    string `json:"gw_goal_player_id,omitempty"`
}

// PickLabels is a pick rendered as display names
type PickLabels struct {
	FirstGoal string `json:"first_goal,omitempty"`
	GWGoal    string `json:"gw_goal,omitempty"`
}

// Score response type
type Score struct {
	CorrectFirst bool `json:"correct_first"`
	CorrectGWG   bool `json:"correct_gwg"`
	Points       int  `json:"points"`
}

// ResolvedGame is a concluded game with the user's score
type ResolvedGame struct {
	Game    StoredGame  `json:"game"`
	Outcome PickLabels  `json:"outcome"`
	Pick    *StoredPick `json:"pick,omitempty"`
	Labels  PickLabels  `json:"pick_labels"`
	Score   Score       `json:"score"`
}

// OpenGame is a future game that may still be picked on
type OpenGame struct {
	Game   StoredGame  `json:"game"`
	Locked bool        `json:"locked"`
	Pick   *StoredPick `json:"pick,omitempty"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TotalPoints    int    `json:"total_points"`
	LastGamePoints int    `json:"last_game_points"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
	if u.Email != "" {
		fmt.Printf("Email: %s\n", u.Email)
	}
	if u.DefaultFirstGoal != "" {
		fmt.Printf("Default first goal: %s\n", u.DefaultFirstGoal)
	}
	if u.DefaultGWG != "" {
		fmt.Printf("Default game winner: %s\n", u.DefaultGWG)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printGames(games []Game) {
	if len(games) == 0 {
		fmt.Println("No games scheduled")
		return
	}
	for _, g := range games {
		o.printGame(g)
		fmt.Println()
	}
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game %s: %s vs %s\n", g.ID, g.HomeTeam, g.AwayTeam)
	fmt.Printf("Starts: %s\n", g.GameTime.Local().Format(time.RFC1123))
	if g.FirstGoalPlayerID != "" || g.GWGoalPlayerID != "" {
		fmt.Printf("Result: first goal %s, game winner %s\n",
			playerLabel(g.Players, g.FirstGoalPlayerID),
			playerLabel(g.Players, g.GWGoalPlayerID))
	}
}

func playerLabel(players []Player, id string) string {
	if id == "" {
		return "-"
	}
	for _, p := range players {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

func (o *Output) printPicks(picks []Pick) {
	if len(picks) == 0 {
		fmt.Println("No picks yet")
		return
	}
	for _, p := range picks {
		o.printPick(p)
	}
}

func (o *Output) printPick(p Pick) {
	first := p.FirstGoalPlayerID
	if first == "" {
		first = "-"
	}
	gwg := p.GWGoalPlayerID
	if gwg == "" {
		gwg = "-"
	}
	fmt.Printf("Game %s: first goal %s, game winner %s\n", p.GameID, first, gwg)
}

func (o *Output) printViewModel(vm ViewModel) {
	if len(vm.Past) > 0 {
		fmt.Println("Scored games:")
		for _, rg := range vm.Past {
			fmt.Printf("  %s vs %s: %d points", rg.Game.HomeTeam, rg.Game.AwayTeam, rg.Score.Points)
			if rg.Pick != nil {
				fmt.Printf(" (picked %s / %s, was %s / %s)",
					orDash(rg.Labels.FirstGoal), orDash(rg.Labels.GWGoal),
					orDash(rg.Outcome.FirstGoal), orDash(rg.Outcome.GWGoal))
			}
			fmt.Println()
		}
	}

	if vm.Next != nil {
		status := "open"
		if vm.Next.Locked {
			status = "locked"
		}
		fmt.Printf("Next game: %s vs %s at %s (%s)\n",
			vm.Next.Game.HomeTeam, vm.Next.Game.AwayTeam,
			vm.Next.Game.GameTime.Local().Format(time.RFC1123), status)
		if vm.Next.Pick != nil {
			fmt.Printf("  Your pick: %s / %s\n",
				orDash(vm.Next.Pick.FirstGoalPlayerID), orDash(vm.Next.Pick.GWGoalPlayerID))
		}
	}

	if len(vm.Upcoming) > 0 {
		fmt.Println("Upcoming:")
		for _, og := range vm.Upcoming {
			fmt.Printf("  %s vs %s at %s\n", og.Game.HomeTeam, og.Game.AwayTeam,
				og.Game.GameTime.Local().Format(time.RFC1123))
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("No standings yet")
		return
	}
	fmt.Printf("%-4s %-20s %8s %10s\n", "#", "User", "Points", "Last game")
	for i, e := range entries {
		fmt.Printf("%-4d %-20s %8d %10d\n", i+1, e.Username, e.TotalPoints, e.LastGamePoints)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
