package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"shiftboard-backend/internal/auth"
	"shiftboard-backend/internal/config"
	"shiftboard-backend/internal/database"
	"shiftboard-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CompanyData struct {
	Name              string `yaml:"name"`
	Email             string `yaml:"email"`
	Timezone          string `yaml:"timezone,omitempty"`
	WorkingHoursStart string `yaml:"working_hours_start,omitempty"`
	WorkingHoursEnd   string `yaml:"working_hours_end,omitempty"`
}

type UserData struct {
	CompanyName string `yaml:"company_name"`
	Name        string `yaml:"name"`
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	Role        string `yaml:"role"`
	Phone       string `yaml:"phone,omitempty"`
	Position    string `yaml:"position,omitempty"`
	Department  string `yaml:"department,omitempty"`
}

type ShiftData struct {
	CompanyName   string `yaml:"company_name"`
	Title         string `yaml:"title"`
	AssignedEmail string `yaml:"assigned_email"`
	CreatedBy     string `yaml:"created_by"`
	StartTime     string `yaml:"start_time"`
	EndTime       string `yaml:"end_time"`
	Description   string `yaml:"description,omitempty"`
	Location      string `yaml:"location,omitempty"`
}

type SeedData struct {
	Companies []CompanyData `yaml:"companies"`
	Users     []UserData    `yaml:"users"`
	Shifts    []ShiftData   `yaml:"shifts"`
}

func main() {
	log.Println("Loading initial data from YAML...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadSeedData(db, filepath.Join("scripts", "data", "seed.yaml")); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedData(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var seed SeedData
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	companies := make(map[string]*models.Company)
	for _, c := range seed.Companies {
		company, err := upsertCompany(db, c)
		if err != nil {
			return fmt.Errorf("company %q: %w", c.Name, err)
		}
		companies[c.Name] = company
	}

	users := make(map[string]*models.User)
	for _, u := range seed.Users {
		company, ok := companies[u.CompanyName]
		if !ok {
			return fmt.Errorf("user %q references unknown company %q", u.Email, u.CompanyName)
		}
		user, err := upsertUser(db, company, u)
		if err != nil {
			return fmt.Errorf("user %q: %w", u.Email, err)
		}
		users[u.Email] = user
	}

	for _, s := range seed.Shifts {
		company, ok := companies[s.CompanyName]
		if !ok {
			return fmt.Errorf("shift %q references unknown company %q", s.Title, s.CompanyName)
		}
		if err := upsertShift(db, company, users, s); err != nil {
			return fmt.Errorf("shift %q: %w", s.Title, err)
		}
	}

	return nil
}

func upsertCompany(db *gorm.DB, data CompanyData) (*models.Company, error) {
	var existing models.Company
	err := db.Where("email = ?", data.Email).First(&existing).Error
	if err == nil {
		log.Printf("Company %q already exists, skipping", data.Name)
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	company := &models.Company{
		Name:  data.Name,
		Email: data.Email,
		Settings: models.CompanySettings{
			Timezone:          orDefault(data.Timezone, "UTC"),
			WorkingHoursStart: orDefault(data.WorkingHoursStart, "09:00"),
			WorkingHoursEnd:   orDefault(data.WorkingHoursEnd, "17:00"),
		},
	}
	if err := db.Create(company).Error; err != nil {
		return nil, err
	}
	log.Printf("Created company %q", data.Name)
	return company, nil
}

func upsertUser(db *gorm.DB, company *models.Company, data UserData) (*models.User, error) {
	var existing models.User
	err := db.Where("email = ?", data.Email).First(&existing).Error
	if err == nil {
		log.Printf("User %q already exists, skipping", data.Email)
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	role := models.UserRole(data.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role %q", data.Role)
	}

	hashed, err := auth.HashPassword(data.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     data.Email,
		Password:  hashed,
		Name:      data.Name,
		Role:      role,
		CompanyID: company.ID,
		Profile: models.UserProfile{
			Phone:      data.Phone,
			Position:   data.Position,
			Department: data.Department,
		},
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	log.Printf("Created user %q (%s)", data.Email, role)
	return user, nil
}

func upsertShift(db *gorm.DB, company *models.Company, users map[string]*models.User, data ShiftData) error {
	assignee, ok := users[data.AssignedEmail]
	if !ok {
		return fmt.Errorf("unknown assignee %q", data.AssignedEmail)
	}
	creator, ok := users[data.CreatedBy]
	if !ok {
		return fmt.Errorf("unknown creator %q", data.CreatedBy)
	}

	startTime, err := time.Parse(time.RFC3339, data.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start_time: %w", err)
	}
	endTime, err := time.Parse(time.RFC3339, data.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end_time: %w", err)
	}

	var count int64
	db.Model(&models.Shift{}).
		Where("company_id = ? AND title = ? AND start_time = ?", company.ID, data.Title, startTime).
		Count(&count)
	if count > 0 {
		log.Printf("Shift %q already exists, skipping", data.Title)
		return nil
	}

	shift := &models.Shift{
		Title:       data.Title,
		StartTime:   startTime,
		EndTime:     endTime,
		AssignedTo:  assignee.ID,
		CompanyID:   company.ID,
		CreatedBy:   creator.ID,
		Status:      models.ShiftStatusScheduled,
		Description: data.Description,
		Location:    data.Location,
	}
	if err := db.Create(shift).Error; err != nil {
		return err
	}
	log.Printf("Created shift %q for %s", data.Title, data.AssignedEmail)
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
