package storage

import (
	"context"

	"github.com/msommer/pickem/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)

	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)

	// Pick operations
	SavePick(ctx context.Context, pick *model.Pick) error
	GetPick(ctx context.Context, userID model.UserID, gameID model.GameID) (*model.Pick, error)
	ListPicksForUser(ctx context.Context, userID model.UserID) ([]*model.Pick, error)
	ListPicksForGame(ctx context.Context, gameID model.GameID) ([]*model.Pick, error)
}
