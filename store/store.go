package store

import (
	"context"
	"errors"

	"github.com/junaidrashid-git/shopping-api/models"
)

// ErrNotFound is returned by single-record lookups when no record matches.
// Adapters translate their driver's own not-found value into this one.
var ErrNotFound = errors.New("record not found")

// Store is the persistence adapter shared by the relational, document and
// in-memory backends. Handlers only ever talk to this interface.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsUserByEmailOrNickname(ctx context.Context, email, nickname string) (bool, error)

	ListGoods(ctx context.Context, category string) ([]models.Goods, error)
	FindGoodsByID(ctx context.Context, goodsID uint) (*models.Goods, error)
	FindGoodsByIDs(ctx context.Context, goodsIDs []uint) ([]models.Goods, error)
	UpsertGoods(ctx context.Context, goods *models.Goods) error

	ListCart(ctx context.Context, userID string) ([]models.Cart, error)
	UpsertCartItem(ctx context.Context, item *models.Cart) error
	DeleteCartItem(ctx context.Context, userID string, goodsID uint) error

	Close(ctx context.Context) error
}
