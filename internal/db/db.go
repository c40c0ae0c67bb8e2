package db

import (
	"log"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Provider{},
		&models.Customer{},
		&models.ServiceOffering{},
		&models.Booking{},
		&models.BookingLineItem{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Backstop no banco para o invariante de não-sobreposição:
	// duas reservas não-terminais do mesmo profissional na mesma data
	// nunca podem ter intervalos [start, start+duration) sobrepostos.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_no_overlap`)
	db.Exec(`
        ALTER TABLE bookings
        ADD CONSTRAINT bookings_no_overlap
        EXCLUDE USING gist (
            provider_id WITH =,
            date WITH =,
            int4range(start_minutes, start_minutes + duration_minutes) WITH &&
        )
        WHERE (status IN ('pending', 'confirmed'))
    `)

	return db
}
