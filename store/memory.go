package store

import (
	"context"
	"sort"
	"sync"

	"github.com/junaidrashid-git/shopping-api/models"
)

// MemoryStore keeps everything in process. Used by STORE_DRIVER=memory and
// by the handler tests; cart lines keep insertion order per user the way
// the real backends return them.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]models.User
	goods map[uint]models.Goods
	carts map[string][]models.Cart
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]models.User),
		goods: make(map[uint]models.Goods),
		carts: make(map[string][]models.Cart),
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) FindUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ExistsUserByEmailOrNickname(_ context.Context, email, nickname string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email || user.Nickname == nickname {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) ListGoods(_ context.Context, category string) ([]models.Goods, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Goods
	for _, g := range s.goods {
		if category == "" || g.Category == category {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *MemoryStore) FindGoodsByID(_ context.Context, goodsID uint) (*models.Goods, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.goods[goodsID]
	if !ok {
		return nil, ErrNotFound
	}
	return &g, nil
}

func (s *MemoryStore) FindGoodsByIDs(_ context.Context, goodsIDs []uint) ([]models.Goods, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Goods
	for _, id := range goodsIDs {
		if g, ok := s.goods[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *MemoryStore) UpsertGoods(_ context.Context, goods *models.Goods) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goods[goods.GoodsID] = *goods
	return nil
}

func (s *MemoryStore) ListCart(_ context.Context, userID string) ([]models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Cart, len(s.carts[userID]))
	copy(out, s.carts[userID])
	return out, nil
}

func (s *MemoryStore) UpsertCartItem(_ context.Context, item *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[item.UserID]
	for i, line := range lines {
		if line.GoodsID == item.GoodsID {
			lines[i].Quantity = item.Quantity
			return nil
		}
	}
	s.carts[item.UserID] = append(lines, *item)
	return nil
}

func (s *MemoryStore) DeleteCartItem(_ context.Context, userID string, goodsID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	for i, line := range lines {
		if line.GoodsID == goodsID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) Close(_ context.Context) error {
	return nil
}
