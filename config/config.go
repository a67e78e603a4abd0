package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/RidgwayA/cal-tracker/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type Config struct {
	Port               string
	JWTSecret          string
	DefaultCalorieGoal int
}

func Load() *Config {
	goal, err := strconv.Atoi(getEnv("DEFAULT_CALORIE_GOAL", "2000"))
	if err != nil {
		goal = 2000
	}
	return &Config{
		Port:               getEnv("PORT", "4000"),
		JWTSecret:          getEnv("JWT_SECRET", "your-secret-key"),
		DefaultCalorieGoal: goal,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_NAME", "cal_tracker"),
		getEnv("DB_PORT", "5432"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Migrate is shared with the test suites, which run on sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Food{},
	)
}
