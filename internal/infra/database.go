package infra

import (
	"hotelier/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx. TranslateError
// is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey, which the service layer maps onto the Conflict
// taxonomy; that constraint, not the pre-insert check, is what settles
// concurrent duplicate registration. Callers run RunMigrations explicitly.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// RunMigrations applies the schema. Lookup tables go first so the FK
// targets exist when the dependent tables are created.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserType{},
		&model.RoomType{},
		&model.RoomStatus{},
		&model.ReservationStatus{},
		&model.User{},
		&model.Token{},
		&model.Client{},
		&model.Room{},
		&model.Reservation{},
	)
}
