package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shaiiram/website1000-2000/config"
	"github.com/shaiiram/website1000-2000/controllers"
	"github.com/shaiiram/website1000-2000/database"
	"github.com/shaiiram/website1000-2000/routes"
	"github.com/shaiiram/website1000-2000/services"
	"github.com/shaiiram/website1000-2000/utils"
)

func main() {
	// All timestamps (bookings, analytics buckets, reminder cron) use Israel time.
	israelLocation, err := time.LoadLocation("Asia/Jerusalem")
	if err != nil {
		israelLocation = time.FixedZone("IST", 2*60*60)
	}
	time.Local = israelLocation

	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	utils.SetDB(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	if err := database.SeedExperiences(db); err != nil {
		log.Fatalf("failed to seed experiences: %v", err)
	}
	log.Println("Experiences seeded (if needed)")

	rdb := redis.NewClient(&redis.Options{
		Addr:     getenvOr("REDIS_ADDR", fmt.Sprintf("%s:6379", cfg.DBHost)),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	utils.SetRedis(rdb)
	log.Println("Connected to Redis")

	controllers.InitGoogleOAuth(cfg)

	go func() {
		log.Println("Starting background jobs...")

		services.StartAnalyticsCron(db)
		log.Println("Analytics cron started")

		services.StartReminderCron(db, cfg)
		log.Println("Pending booking reminder cron started")
	}()

	r := routes.SetupRouter(cfg)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Server is running on port %s", port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func getenvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
