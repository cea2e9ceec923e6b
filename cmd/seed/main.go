package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"venuehub/internal/database"
	"venuehub/internal/domain"
	"venuehub/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "venuehub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// safe order for foreign keys
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM spaces")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	spaces := repository.NewSpaceRepository(db)

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "admin@venuehub.kz",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Administrator",
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}
	log.Println("Admin created: admin@venuehub.kz / admin123")

	clientEmails := []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"}
	for i, email := range clientEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		client := &domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleClient,
			Name:         fmt.Sprintf("Client %d", i+1),
			Phone:        fmt.Sprintf("+7 777 123 45%02d", i+67),
		}
		if err := users.Create(ctx, client); err != nil {
			log.Fatal(err)
		}
	}
	log.Println("Clients created: client123")

	hostHash, _ := bcrypt.GenerateFromPassword([]byte("host123"), bcrypt.DefaultCost)
	host := &domain.User{
		Email:        "aigerim@venuehub.kz",
		PasswordHash: string(hostHash),
		Role:         domain.RoleHost,
		Name:         "Aigerim",
		Phone:        "+7 701 555 01 01",
	}
	if err := users.Create(ctx, host); err != nil {
		log.Fatal(err)
	}
	log.Println("Host created: aigerim@venuehub.kz / host123")

	log.Println("Creating spaces...")

	loftHours, _ := json.Marshal(map[string]map[string]string{
		"monday":    {"open": "09:00", "close": "21:00"},
		"tuesday":   {"open": "09:00", "close": "21:00"},
		"wednesday": {"open": "09:00", "close": "21:00"},
		"thursday":  {"open": "09:00", "close": "21:00"},
		"friday":    {"open": "09:00", "close": "23:00"},
		"saturday":  {"open": "10:00", "close": "23:00"},
		"sunday":    {"open": "10:00", "close": "18:00"},
	})

	seedSpaces := []*domain.Space{
		{
			HostID:               host.ID,
			Name:                 "Loft on Abay",
			Description:          "Bright loft with panoramic windows, fits workshops and shoots",
			Address:              "Abay Ave 44",
			City:                 "Almaty",
			HourlyPrice:          15000,
			Currency:             "KZT",
			MaxGuests:            30,
			FullDayHours:         8,
			FullDayDiscountPrice: 100000,
			CooldownMinutes:      60,
			BlockedWeekdays:      []int{1},
			OperatingHours:       loftHours,
			IsActive:             true,
		},
		{
			HostID:          host.ID,
			Name:            "Dostyk Conference Hall",
			Description:     "Conference room with projector and whiteboards",
			Address:         "Dostyk Ave 91",
			City:            "Almaty",
			HourlyPrice:     8000,
			Currency:        "KZT",
			MaxGuests:       12,
			CooldownMinutes: 30,
			IsActive:        true,
		},
		{
			HostID:          host.ID,
			Name:            "Recording Booth",
			Description:     "Small treated booth for voiceover, solo sessions welcome",
			Address:         "Zheltoksan St 115",
			City:            "Almaty",
			HourlyPrice:     5000,
			Currency:        "KZT",
			MaxGuests:       2,
			AllowZeroGuests: true,
			IsActive:        true,
		},
	}

	for _, s := range seedSpaces {
		if err := spaces.Create(ctx, s); err != nil {
			log.Fatal(err)
		}
		log.Printf("Space created: %s (id=%d)", s.Name, s.ID)
	}

	log.Println("Seed complete.")
}
