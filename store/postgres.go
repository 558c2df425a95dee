package store

import (
	"context"
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/junaidrashid-git/shopping-api/models"
)

// PostgresStore is the relational adapter backed by GORM.
type PostgresStore struct {
	db *gorm.DB
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Goods{},
		&models.Cart{},
	); err != nil {
		return nil, err
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *PostgresStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *PostgresStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *PostgresStore) ExistsUserByEmailOrNickname(ctx context.Context, email, nickname string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ? OR nickname = ?", email, nickname).
		Count(&count).Error
	return count > 0, err
}

func (s *PostgresStore) ListGoods(ctx context.Context, category string) ([]models.Goods, error) {
	query := s.db.WithContext(ctx).Model(&models.Goods{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var goods []models.Goods
	if err := query.Order("date desc").Find(&goods).Error; err != nil {
		return nil, err
	}
	return goods, nil
}

func (s *PostgresStore) FindGoodsByID(ctx context.Context, goodsID uint) (*models.Goods, error) {
	var goods models.Goods
	if err := s.db.WithContext(ctx).First(&goods, "goods_id = ?", goodsID).Error; err != nil {
		return nil, translate(err)
	}
	return &goods, nil
}

func (s *PostgresStore) FindGoodsByIDs(ctx context.Context, goodsIDs []uint) ([]models.Goods, error) {
	if len(goodsIDs) == 0 {
		return nil, nil
	}
	var goods []models.Goods
	if err := s.db.WithContext(ctx).Where("goods_id IN ?", goodsIDs).Find(&goods).Error; err != nil {
		return nil, err
	}
	return goods, nil
}

func (s *PostgresStore) UpsertGoods(ctx context.Context, goods *models.Goods) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "goods_id"}},
		UpdateAll: true,
	}).Create(goods).Error
}

func (s *PostgresStore) ListCart(ctx context.Context, userID string) ([]models.Cart, error) {
	var cart []models.Cart
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

// UpsertCartItem is a conditional write on the (user_id, goods_id) key, so
// two concurrent upserts cannot leave duplicate lines.
func (s *PostgresStore) UpsertCartItem(ctx context.Context, item *models.Cart) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "goods_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(item).Error
}

func (s *PostgresStore) DeleteCartItem(ctx context.Context, userID string, goodsID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND goods_id = ?", userID, goodsID).
		Delete(&models.Cart{}).Error
}

func (s *PostgresStore) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
