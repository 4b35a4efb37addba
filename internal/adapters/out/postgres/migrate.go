package postgres

import (
	"time"

	"suqia/internal/adapters/out/postgres/customerrepo"
	"suqia/internal/adapters/out/postgres/driverrepo"
	"suqia/internal/adapters/out/postgres/orderrepo"
	"suqia/internal/adapters/out/postgres/regionrepo"
	"suqia/internal/adapters/out/postgres/tankrepo"
	"suqia/internal/adapters/out/postgres/userrepo"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates the schema for every persisted aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&regionrepo.RegionDTO{},
		&tankrepo.TankDTO{},
		&tankrepo.TankRegionDTO{},
		&userrepo.UserDTO{},
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
	)
}

// Fixture IDs are fixed so that reseeding an existing database inserts
// nothing new.
var (
	seedRegionIDs = []uuid.UUID{
		uuid.MustParse("5b591d46-2aaf-4a09-a0b1-6b22d7eb1001"),
		uuid.MustParse("5b591d46-2aaf-4a09-a0b1-6b22d7eb1002"),
		uuid.MustParse("5b591d46-2aaf-4a09-a0b1-6b22d7eb1003"),
		uuid.MustParse("5b591d46-2aaf-4a09-a0b1-6b22d7eb1004"),
		uuid.MustParse("5b591d46-2aaf-4a09-a0b1-6b22d7eb1005"),
	}

	seedTankIDs = []uuid.UUID{
		uuid.MustParse("9c0f2c7e-83d4-4f66-b2ce-c54fbb3a2001"),
		uuid.MustParse("9c0f2c7e-83d4-4f66-b2ce-c54fbb3a2002"),
		uuid.MustParse("9c0f2c7e-83d4-4f66-b2ce-c54fbb3a2003"),
	}

	seedAdminID = uuid.MustParse("e7a40c18-19b5-49cf-9d38-1de4a1cc3001")
)

// Seed inserts the bootstrap catalog: the service regions, the initial
// tanks with their region links, and the admin account. Rows that already
// exist are left untouched.
func Seed(db *gorm.DB, adminEmail, adminPasswordHash string) error {
	regions := []regionrepo.RegionDTO{
		{ID: seedRegionIDs[0], Name: "Al-Bara"},
		{ID: seedRegionIDs[1], Name: "Kansafra"},
		{ID: seedRegionIDs[2], Name: "Al-Fatira"},
		{ID: seedRegionIDs[3], Name: "Maarrat al-Numan"},
		{ID: seedRegionIDs[4], Name: "Saraqib"},
	}

	tanks := []tankrepo.TankDTO{
		{ID: seedTankIDs[0], Name: "Al-Shifa", Capacity: 1000, WaterType: "Drinking",
			PricePerBarrel: 50.00, Location: "Al-Bara"},
		{ID: seedTankIDs[1], Name: "Al-Noor", Capacity: 800, WaterType: "Drinking",
			PricePerBarrel: 45.00, Location: "Kansafra"},
		{ID: seedTankIDs[2], Name: "Al-Hayat", Capacity: 1200, WaterType: "Drinking",
			PricePerBarrel: 55.00, Location: "Al-Fatira"},
	}

	links := []tankrepo.TankRegionDTO{
		{TankID: seedTankIDs[0], RegionID: seedRegionIDs[0]},
		{TankID: seedTankIDs[0], RegionID: seedRegionIDs[1]},
		{TankID: seedTankIDs[1], RegionID: seedRegionIDs[1]},
		{TankID: seedTankIDs[1], RegionID: seedRegionIDs[2]},
		{TankID: seedTankIDs[2], RegionID: seedRegionIDs[2]},
		{TankID: seedTankIDs[2], RegionID: seedRegionIDs[3]},
	}

	admin := userrepo.UserDTO{
		ID:           seedAdminID,
		Email:        adminEmail,
		PasswordHash: adminPasswordHash,
		FullName:     "Administrator",
		Role:         "Admin",
		CreatedAt:    time.Now().UTC(),
	}

	onConflict := clause.OnConflict{DoNothing: true}

	if err := db.Clauses(onConflict).Create(&regions).Error; err != nil {
		return err
	}
	if err := db.Clauses(onConflict).Create(&tanks).Error; err != nil {
		return err
	}
	if err := db.Clauses(onConflict).Create(&links).Error; err != nil {
		return err
	}
	return db.Clauses(onConflict).Create(&admin).Error
}
