package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	AdminEmail string
	// Google OAuth (redirect-based login)
	GoogleClientID string
	GoogleSecret   string
	GoogleRedirect string
	// LLM provider settings (vacation package generation, chatbot)
	LLMBaseURL    string
	LLMAPIKey     string
	LLMWebContext string
	// Cloudinary upload settings
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string
	// Frontend origin used by redirect-based login
	SiteURL string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              os.Getenv("DB_PORT"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		Port:                os.Getenv("PORT"),
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPPort:            os.Getenv("SMTP_PORT"),
		SMTPUser:            os.Getenv("SMTP_USER"),
		SMTPPass:            os.Getenv("SMTP_PASS"),
		AdminEmail:          getenvOrDefault("ADMIN_EMAIL", "team@1000-2000.co.il"),
		GoogleClientID:      os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleSecret:        os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirect:      os.Getenv("GOOGLE_REDIRECT_URI"),
		LLMBaseURL:          getenvOrDefault("LLM_API_URL", "https://api.base44.com/integrations"),
		LLMAPIKey:           os.Getenv("LLM_API_KEY"),
		LLMWebContext:       getenvOrDefault("LLM_WEB_CONTEXT", "on"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    os.Getenv("CLOUDINARY_FOLDER"),
		SiteURL:             getenvOrDefault("SITE_URL", "https://1000-2000.co.il"),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
