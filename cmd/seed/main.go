package main

import (
	"fmt"
	"os"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/db"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 開発用の初期データ投入。何度流しても増殖しない。
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = db.Close(gormDB)
	}()

	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Reservation{},
		&model.AdminUser{},
	); err != nil {
		panic(err)
	}

	if err := seed(gormDB); err != nil {
		panic(err)
	}

	fmt.Println("seed done")
}

func seed(gormDB *gorm.DB) error {
	products := []model.Product{
		{Name: "Coffee Beans 1kg", Price: decimal.RequireFromString("18.90"), Stock: 10},
		{Name: "Ceramic Mug", Price: decimal.RequireFromString("12.50"), Stock: 25},
		{Name: "Gift Box", Price: decimal.RequireFromString("29.00"), Stock: 5},
	}
	for _, p := range products {
		var count int64
		if err := gormDB.Model(&model.Product{}).Where("name = ?", p.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := gormDB.Create(&p).Error; err != nil {
			return err
		}
	}

	reservation := model.Reservation{
		Name:     "Anna",
		Email:    "anna@example.com",
		DateTime: "2026-01-15T18:00",
		Notes:    "Table for 2",
		Status:   model.ReservationStatusNew,
	}
	var count int64
	if err := gormDB.Model(&model.Reservation{}).Where("email = ?", reservation.Email).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := gormDB.Create(&reservation).Error; err != nil {
			return err
		}
	}

	//管理者は環境変数から（emailが既にあれば触らない）
	adminEmail := getenv("ADMIN_EMAIL", "admin@example.com")
	adminPassword := getenv("ADMIN_PASSWORD", "admin1234")

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 12)
	if err != nil {
		return err
	}
	admin := model.AdminUser{
		Email:        adminEmail,
		PasswordHash: string(hash),
	}
	return gormDB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin).Error
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
