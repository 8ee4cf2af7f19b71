package main

import (
	"fmt"
	"log"
	"time"

	"biletsfera/internal/artists"
	"biletsfera/internal/events"
	"biletsfera/internal/seats"
	"biletsfera/internal/shared/config"
	"biletsfera/internal/shared/database"
	"biletsfera/internal/tickets"
	"biletsfera/internal/users"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Seeder struct {
	db *gorm.DB
}

func main() {
	fmt.Println("Starting Biletsfera database seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db.GetPostgreSQL()); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := database.MigrateConstraints(db.GetPostgreSQL()); err != nil {
		log.Fatalf("Failed to migrate constraints: %v", err)
	}

	seeder := &Seeder{db: db.GetPostgreSQL()}

	fmt.Println("Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Seeding completed. Database is ready for testing.")
}

// CleanDatabase truncates all tables, children before parents.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"transaction_lines",
		"transactions",
		"cart_ticket_lines",
		"cart_items",
		"event_reactions",
		"seats",
		"tickets",
		"event_artists",
		"events",
		"artists",
		"users",
	}

	for _, table := range tables {
		if err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	seededUsers, err := s.seedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	fmt.Printf("  users: %d\n", len(seededUsers))

	seededArtists, err := s.seedArtists()
	if err != nil {
		return fmt.Errorf("failed to seed artists: %w", err)
	}
	fmt.Printf("  artists: %d\n", len(seededArtists))

	seededEvents, err := s.seedEvents(seededArtists)
	if err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}
	fmt.Printf("  events: %d\n", len(seededEvents))

	return nil
}

func (s *Seeder) seedUsers() ([]users.User, error) {
	password, err := bcrypt.GenerateFromPassword([]byte("Biletsfera1"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	seedUsers := []users.User{
		{
			Name:     "admin",
			Email:    "admin@biletsfera.io",
			Password: string(password),
			Role:     users.RoleAdmin,
			Active:   true,
		},
		{
			Name:     "ola.demo",
			Email:    "ola@example.com",
			Password: string(password),
			Role:     users.RoleUser,
			Active:   true,
			Preferences: users.Preferences{
				SelectedCategories:    []string{"music", "theatre"},
				SelectedSubCategories: []string{"rock", "drama"},
			},
		},
		{
			Name:     "piotr.demo",
			Email:    "piotr@example.com",
			Password: string(password),
			Role:     users.RoleUser,
			Active:   true,
		},
	}

	if err := s.db.Create(&seedUsers).Error; err != nil {
		return nil, err
	}
	return seedUsers, nil
}

func (s *Seeder) seedArtists() ([]artists.Artist, error) {
	seedArtists := []artists.Artist{
		{
			Name:  "The Midnight Echoes",
			Image: "https://cdn.biletsfera.io/artists/midnight-echoes.jpg",
			Text:  "Indie rock quartet known for atmospheric live shows.",
		},
		{
			Name:  "Sofia Krawczyk",
			Image: "https://cdn.biletsfera.io/artists/sofia-krawczyk.jpg",
			Text:  "Classical pianist touring with a contemporary repertoire.",
		},
		{
			Name:  "Warsaw Drama Collective",
			Image: "https://cdn.biletsfera.io/artists/warsaw-drama.jpg",
			Text:  "Award-winning theatre ensemble.",
		},
	}

	if err := s.db.Create(&seedArtists).Error; err != nil {
		return nil, err
	}
	return seedArtists, nil
}

func (s *Seeder) seedEvents(seedArtists []artists.Artist) ([]events.Event, error) {
	nextMonth := time.Now().AddDate(0, 1, 0)

	openFloor := events.Event{
		Title:       "Midnight Echoes: Open Air",
		Image:       "https://cdn.biletsfera.io/events/open-air.jpg",
		Text:        "Open air concert, standing room only.",
		Organiser:   "Biletsfera Live",
		Date:        nextMonth.Format("2006-01-02"),
		Location:    "Pole Mokotowskie, Warsaw",
		Category:    []string{"music"},
		SubCategory: []string{"rock"},
	}
	if err := s.db.Create(&openFloor).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&openFloor).Association("Artists").Append(&seedArtists[0]); err != nil {
		return nil, err
	}

	openFloorTickets := []tickets.Ticket{
		{EventID: openFloor.ID, Type: "standard", Price: decimal.NewFromFloat(89.00), DayOfWeek: "Saturday", Date: openFloor.Date},
		{EventID: openFloor.ID, Type: "vip", Price: decimal.NewFromFloat(219.00), DayOfWeek: "Saturday", Date: openFloor.Date},
	}
	if err := s.db.Create(&openFloorTickets).Error; err != nil {
		return nil, err
	}

	seated := events.Event{
		Title:       "Sofia Krawczyk: Piano Nights",
		Image:       "https://cdn.biletsfera.io/events/piano-nights.jpg",
		Text:        "An evening of contemporary piano.",
		Organiser:   "Filharmonia Events",
		Date:        nextMonth.AddDate(0, 0, 7).Format("2006-01-02"),
		Location:    "Filharmonia Narodowa, Warsaw",
		Category:    []string{"music", events.SeatManagementCategory},
		SubCategory: []string{"classical"},
	}
	if err := s.db.Create(&seated).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&seated).Association("Artists").Append(&seedArtists[1]); err != nil {
		return nil, err
	}

	seatedTickets := []tickets.Ticket{
		{EventID: seated.ID, Type: "parterre", Price: decimal.NewFromFloat(149.50), DayOfWeek: "Saturday", Date: seated.Date},
		{EventID: seated.ID, Type: "balcony", Price: decimal.NewFromFloat(99.50), DayOfWeek: "Saturday", Date: seated.Date},
	}
	if err := s.db.Create(&seatedTickets).Error; err != nil {
		return nil, err
	}

	seatMap := make([]seats.Seat, 0, 40)
	for _, row := range []string{"A", "B", "C", "D"} {
		for n := 1; n <= 10; n++ {
			seatMap = append(seatMap, seats.Seat{
				EventID:    seated.ID,
				SeatNumber: fmt.Sprintf("%s%d", row, n),
				Available:  true,
			})
		}
	}
	if err := s.db.Create(&seatMap).Error; err != nil {
		return nil, err
	}

	return []events.Event{openFloor, seated}, nil
}
