package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	accounts      map[model.UserID]*model.Account
	usernameIndex map[string]model.UserID
	emailIndex    map[string]model.UserID
	games         map[model.GameID]*model.Game
	picks         map[pickKey]*model.Pick
}

type pickKey struct {
	userID model.UserID
	gameID model.GameID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		accounts:      make(map[model.UserID]*model.Account),
		usernameIndex: make(map[string]model.UserID),
		emailIndex:    make(map[string]model.UserID),
		games:         make(map[model.GameID]*model.Game),
		picks:         make(map[pickKey]*model.Pick),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*model.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.UserID] = account
	s.usernameIndex[strings.ToLower(account.Username)] = account.UserID
	if account.Email != "" {
		s.emailIndex[strings.ToLower(account.Email)] = account.UserID
	}
	return nil
}

func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.usernameIndex[strings.ToLower(username)]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	account, ok := s.accounts[userID]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return account, nil
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.emailIndex[strings.ToLower(email)]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	account, ok := s.accounts[userID]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return account, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Game, 0, len(s.games))
	for _, game := range s.games {
		games = append(games, game)
	}
	return games, nil
}

// Pick operations

func (s *Storage) SavePick(ctx context.Context, pick *model.Pick) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pickKey{userID: pick.UserID, gameID: pick.GameID}
	s.picks[key] = pick
	return nil
}

func (s *Storage) GetPick(ctx context.Context, userID model.UserID, gameID model.GameID) (*model.Pick, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key := pickKey{userID: userID, gameID: gameID}
	pick, ok := s.picks[key]
	if !ok {
		return nil, model.ErrPickNotFound
	}
	return pick, nil
}

func (s *Storage) ListPicksForUser(ctx context.Context, userID model.UserID) ([]*model.Pick, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var picks []*model.Pick
	for key, pick := range s.picks {
		if key.userID == userID {
			picks = append(picks, pick)
		}
	}
	return picks, nil
}

func (s *Storage) ListPicksForGame(ctx context.Context, gameID model.GameID) ([]*model.Pick, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var picks []*model.Pick
	for key, pick := range s.picks {
		if key.gameID == gameID {
			picks = append(picks, pick)
		}
	}
	return picks, nil
}
