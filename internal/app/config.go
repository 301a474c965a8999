package app

import "os"

type Config struct {
	Env  string
	Port string

	// DBDriver is one of postgres, mysql, sqlite. The sqlite fallback keeps
	// local development free of external services.
	DBDriver string
	DBDSN    string

	JWTSecret string

	SMTPHost   string
	SMTPPort   string
	SMTPFrom   string
	AdminEmail string

	SeedAdminName     string
	SeedAdminEmail    string
	SeedAdminPassword string

	UploadDir     string
	CloudinaryURL string
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func LoadConfig() Config {
	return Config{
		Env:      getEnv("APP_ENV", "dev"),
		Port:     getEnv("APP_PORT", "8080"),
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBDSN:    getEnv("DB_DSN", "motion.db"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-in-production"),

		SMTPHost:   os.Getenv("SMTP_HOST"),
		SMTPPort:   getEnv("SMTP_PORT", "587"),
		SMTPFrom:   getEnv("SMTP_FROM", "noreply@motion.co.ug"),
		AdminEmail: getEnv("ADMIN_EMAIL", "info@motion.co.ug"),

		SeedAdminName:     getEnv("SEED_ADMIN_NAME", "Admin"),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@motion.co.ug"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin123"),

		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
	}
}

// MailConfigured reports whether notification sending should be attempted.
func (c Config) MailConfigured() bool { return c.SMTPHost != "" }
