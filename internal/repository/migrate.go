package repository

import (
	"gorm.io/gorm"
)

// AutoMigrate creates the schema for every table the repositories own.
// On PostgreSQL it also installs the idx_no_overbooking exclusion
// constraint, which is the authoritative guard against two non-rejected
// bookings occupying the same interval. SQLite (local development) skips
// it; the advisory CheckAvailability read is the only guard there.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&spaceModel{},
		&bookingModel{},
		&notificationModel{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
			return err
		}
		return db.Exec(`
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'idx_no_overbooking'
	) THEN
		ALTER TABLE bookings
		ADD CONSTRAINT idx_no_overbooking
		EXCLUDE USING gist (
			space_id WITH =,
			day WITH =,
			int4range(start_minute, end_minute) WITH &&
		) WHERE (status <> 'rejected');
	END IF;
END
$$`).Error
	}

	return nil
}
