package main

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodorder/internal/adapters/out/postgres/menurepo"
)

type seedItem struct {
	name        string
	description string
	price       string
	imageURL    string
}

// seedMenu loads a small demo catalog. Re-running is safe: rows are keyed
// by fixed UUIDs and existing ones are left untouched.
func seedMenu(db *gorm.DB) error {
	catalog := map[string][]seedItem{
		"Pizza": {
			{"Margherita", "Tomato, mozzarella and basil", "150.00", "/images/margherita.jpg"},
			{"Pepperoni", "Pepperoni with extra mozzarella", "165.00", "/images/pepperoni.jpg"},
			{"Quattro Formaggi", "Four cheese blend", "180.00", "/images/quattro.jpg"},
		},
		"Burgers": {
			{"Classic Burger", "Beef patty, lettuce, tomato", "120.00", "/images/classic-burger.jpg"},
			{"Cheeseburger", "Beef patty with cheddar", "135.00", "/images/cheeseburger.jpg"},
		},
		"Drinks": {
			{"Cola", "0.5l bottle", "35.00", "/images/cola.jpg"},
			{"Orange Juice", "Freshly squeezed, 0.4l", "55.00", "/images/juice.jpg"},
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for categoryName, items := range catalog {
			category := menurepo.CategoryDTO{
				ID:   deterministicUUID("category:" + categoryName),
				Name: categoryName,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&category).Error; err != nil {
				return err
			}

			for _, item := range items {
				price, err := decimal.NewFromString(item.price)
				if err != nil {
					return err
				}
				dto := menurepo.ItemDTO{
					ID:          deterministicUUID("item:" + item.name),
					Name:        item.name,
					Description: item.description,
					Price:       price,
					CategoryID:  category.ID,
					ImageURL:    item.imageURL,
				}
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// deterministicUUID derives a stable v5 UUID from a seed key so repeated
// seeding never duplicates rows.
func deterministicUUID(key string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
}
