// Command seed loads the goods catalog from an Excel sheet into the
// configured store. The API itself never writes goods; this is the external
// process that pre-seeds them.
//
// Expected columns: goods_id, name, category, thumbnail_url, price, date
// (date optional, RFC 3339; defaults to now). First row is the header.
package main

import (
	"context"
	"flag"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/tealeg/xlsx"

	"github.com/junaidrashid-git/shopping-api/models"
	"github.com/junaidrashid-git/shopping-api/store"
)

func main() {
	file := flag.String("file", "goods.xlsx", "path to the goods spreadsheet")
	flag.Parse()

	_ = godotenv.Load()

	ctx := context.Background()
	s, err := store.OpenFromEnv(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to open store: %v", err)
	}
	defer s.Close(ctx)

	xlFile, err := xlsx.OpenFile(*file)
	if err != nil {
		log.Fatalf("❌ Failed to open Excel file: %v", err)
	}
	if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
		log.Fatal("❌ Excel file is empty or missing header row")
	}

	sheet := xlFile.Sheets[0]
	seededCount, skippedCount := 0, 0

	for i := 1; i < sheet.MaxRow; i++ {
		row := sheet.Rows[i]

		get := func(index int) string {
			if index < len(row.Cells) {
				return strings.TrimSpace(row.Cells[index].String())
			}
			return ""
		}

		goodsID, err1 := strconv.ParseUint(get(0), 10, 64)
		name := get(1)
		category := get(2)
		thumbnail := get(3)
		price, err2 := strconv.Atoi(get(4))

		if err1 != nil || err2 != nil || name == "" {
			skippedCount++
			continue
		}

		date := time.Now()
		if raw := get(5); raw != "" {
			if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
				date = parsed
			}
		}

		goods := models.Goods{
			GoodsID:   uint(goodsID),
			Name:      name,
			Category:  category,
			Thumbnail: thumbnail,
			Price:     price,
			Date:      date,
		}

		// Upsert keyed on goods_id, so re-running the seeder never
		// duplicates the catalog.
		if err := s.UpsertGoods(ctx, &goods); err != nil {
			log.Printf("❌ Failed to seed goods %d: %v", goodsID, err)
			skippedCount++
			continue
		}
		seededCount++
	}

	log.Printf("✅ Seeding done: %d seeded, %d skipped", seededCount, skippedCount)
}
