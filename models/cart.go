package models

// Cart is a single cart line. The composite primary key keeps at most one
// line per (user, goods) pair.
type Cart struct {
	UserID   string `gorm:"primaryKey" json:"userId" bson:"user_id"`
	GoodsID  uint   `gorm:"primaryKey" json:"goodsId" bson:"goods_id"`
	Quantity int    `gorm:"not null" json:"quantity" bson:"quantity"`
}
