package models

import "time"

// Goods is a catalog item. The API only ever reads these; the catalog is
// written by the seeder (cmd/seed).
type Goods struct {
	GoodsID   uint      `gorm:"primaryKey" json:"goodsId" bson:"goods_id"`
	Name      string    `gorm:"not null" json:"name" bson:"name"`
	Category  string    `gorm:"index" json:"category" bson:"category"`
	Thumbnail string    `json:"thumbnailUrl" bson:"thumbnail_url"`
	Price     int       `json:"price" bson:"price"`
	Date      time.Time `gorm:"index" json:"date" bson:"date"`
}
