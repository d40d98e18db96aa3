package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	SMTP     SMTPConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// PayrollConfig is the deduction-policy surface. Values are read once at
// startup; the derived payroll.DeductionPolicy is immutable afterwards.
type PayrollConfig struct {
	DeductionPerAbsenceDay decimal.Decimal
	DeductionPerLateMinute decimal.Decimal
	WorkStartTime          string
	WorkEndTime            string
	BusinessDaysPerWeek    int
}

func Load() (*Config, error) {
	// A missing .env is fine; the environment may be set by the runtime.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "presence"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:4200"),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "noreply@presencio.local"),
		FromName: getEnv("SMTP_FROM_NAME", "Presencio HR"),
	}

	absenceRate, err := decimal.NewFromString(getEnv("DEDUCTION_PER_ABSENCE_DAY", "200.0"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEDUCTION_PER_ABSENCE_DAY: %w", err)
	}
	lateRate, err := decimal.NewFromString(getEnv("DEDUCTION_PER_LATE_MINUTE", "2.0"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEDUCTION_PER_LATE_MINUTE: %w", err)
	}
	businessDays, err := strconv.Atoi(getEnv("BUSINESS_DAYS_PER_WEEK", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_DAYS_PER_WEEK: %w", err)
	}

	config.Payroll = PayrollConfig{
		DeductionPerAbsenceDay: absenceRate,
		DeductionPerLateMinute: lateRate,
		WorkStartTime:          getEnv("WORK_START_TIME", "09:00"),
		WorkEndTime:            getEnv("WORK_END_TIME", "17:00"),
		BusinessDaysPerWeek:    businessDays,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Payroll.DeductionPerAbsenceDay.IsNegative() {
		return fmt.Errorf("DEDUCTION_PER_ABSENCE_DAY must be non-negative")
	}
	if c.Payroll.DeductionPerLateMinute.IsNegative() {
		return fmt.Errorf("DEDUCTION_PER_LATE_MINUTE must be non-negative")
	}
	if c.Payroll.BusinessDaysPerWeek < 1 || c.Payroll.BusinessDaysPerWeek > 7 {
		return fmt.Errorf("BUSINESS_DAYS_PER_WEEK must be between 1 and 7")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
