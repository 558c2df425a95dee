package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/junaidrashid-git/shopping-api/models"
)

// MongoStore is the document adapter. It mirrors the relational adapter
// call for call; only the queries differ.
type MongoStore struct {
	client *mongo.Client
	users  *mongo.Collection
	goods  *mongo.Collection
	carts  *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	s := &MongoStore{
		client: client,
		users:  db.Collection("users"),
		goods:  db.Collection("goods"),
		carts:  db.Collection("carts"),
	}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// ensureIndexes enforces the uniqueness invariants the relational schema
// gets from its primary keys and unique indexes.
func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := s.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "nickname", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}

	_, err = s.carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "goods_id", Value: 1}},
		Options: unique,
	})
	return err
}

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.users.InsertOne(ctx, user)
	return err
}

func (s *MongoStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, translateMongo(err)
	}
	return &user, nil
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, translateMongo(err)
	}
	return &user, nil
}

func (s *MongoStore) ExistsUserByEmailOrNickname(ctx context.Context, email, nickname string) (bool, error) {
	count, err := s.users.CountDocuments(ctx, bson.M{
		"$or": bson.A{
			bson.M{"email": email},
			bson.M{"nickname": nickname},
		},
	})
	return count > 0, err
}

func (s *MongoStore) ListGoods(ctx context.Context, category string) ([]models.Goods, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := s.goods.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var goods []models.Goods
	if err := cursor.All(ctx, &goods); err != nil {
		return nil, err
	}
	return goods, nil
}

func (s *MongoStore) FindGoodsByID(ctx context.Context, goodsID uint) (*models.Goods, error) {
	var goods models.Goods
	if err := s.goods.FindOne(ctx, bson.M{"goods_id": goodsID}).Decode(&goods); err != nil {
		return nil, translateMongo(err)
	}
	return &goods, nil
}

func (s *MongoStore) FindGoodsByIDs(ctx context.Context, goodsIDs []uint) ([]models.Goods, error) {
	if len(goodsIDs) == 0 {
		return nil, nil
	}

	cursor, err := s.goods.Find(ctx, bson.M{"goods_id": bson.M{"$in": goodsIDs}})
	if err != nil {
		return nil, err
	}
	var goods []models.Goods
	if err := cursor.All(ctx, &goods); err != nil {
		return nil, err
	}
	return goods, nil
}

func (s *MongoStore) UpsertGoods(ctx context.Context, goods *models.Goods) error {
	_, err := s.goods.ReplaceOne(ctx,
		bson.M{"goods_id": goods.GoodsID},
		goods,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) ListCart(ctx context.Context, userID string) ([]models.Cart, error) {
	cursor, err := s.carts.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var cart []models.Cart
	if err := cursor.All(ctx, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *MongoStore) UpsertCartItem(ctx context.Context, item *models.Cart) error {
	_, err := s.carts.ReplaceOne(ctx,
		bson.M{"user_id": item.UserID, "goods_id": item.GoodsID},
		item,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) DeleteCartItem(ctx context.Context, userID string, goodsID uint) error {
	_, err := s.carts.DeleteOne(ctx, bson.M{"user_id": userID, "goods_id": goodsID})
	return err
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func translateMongo(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
