package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"roombooking/internal/config"
	"roombooking/internal/database"
	"roombooking/internal/modules/booking"
	"roombooking/internal/modules/room"
	"roombooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")

	logger := log.New(os.Stdout, "seed ", log.LstdFlags)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	uow := repository.NewUnitOfWork(db)

	roomService := room.NewService(roomRepo, bookingRepo, logger)
	bookingService := booking.NewService(bookingRepo, roomRepo, uow, nil, logger)

	ctx := context.Background()

	log.Println("Creating rooms...")
	roomRequests := []room.CreateRoomRequest{
		{Name: "Danube View Suite", Capacity: 2, PricePerDay: 120, Description: "Suite overlooking the river"},
		{Name: "Buda Twin", Capacity: 2, PricePerDay: 75},
		{Name: "Pest Family Room", Capacity: 4, PricePerDay: 95, Description: "Two connecting rooms"},
		{Name: "Gellert Single", Capacity: 1, PricePerDay: 50, Address: "Szeged"},
	}

	roomIDs := make([]int64, 0, len(roomRequests))
	for _, req := range roomRequests {
		r, err := roomService.Create(ctx, req)
		if err != nil {
			log.Fatal("Failed to create room:", err)
		}
		roomIDs = append(roomIDs, r.ID)
	}

	log.Println("Creating bookings...")
	base := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	bookingRequests := []booking.CreateBookingRequest{
		{RoomID: roomIDs[0], Start: base, End: base.AddDate(0, 0, 3), Booker: "Anna Kovacs"},
		{RoomID: roomIDs[0], Start: base.AddDate(0, 0, 3), End: base.AddDate(0, 0, 5), Booker: "Peter Nagy"},
		{RoomID: roomIDs[1], Start: base.AddDate(0, 0, 1), End: base.AddDate(0, 0, 4), Booker: "Anna Kovacs"},
		{RoomID: roomIDs[2], Start: base.AddDate(0, 0, 7), End: base.AddDate(0, 0, 14), Booker: "Eszter Toth"},
	}

	for _, req := range bookingRequests {
		if _, err := bookingService.Create(ctx, req); err != nil {
			log.Fatal("Failed to create booking:", err)
		}
	}

	log.Printf("Seeded %d rooms and %d bookings", len(roomIDs), len(bookingRequests))
}
