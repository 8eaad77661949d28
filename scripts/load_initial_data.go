package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"roster-backend/internal/config"
	"roster-backend/internal/database"
	"roster-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StaffData matches the staff seeding YAML schema
type StaffData struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	EnglishName string `yaml:"english_name"`
	DateOfBirth string `yaml:"dob,omitempty"`
	Gender      string `yaml:"gender,omitempty"`
	Phone       string `yaml:"phone,omitempty"`
	Address     string `yaml:"address,omitempty"`
	HiredAt     string `yaml:"date_first,omitempty"`
	OfficialAt  string `yaml:"date_official,omitempty"`
	Email       string `yaml:"email,omitempty"`
	WorkEmail   string `yaml:"email_work,omitempty"`
}

// ShiftDefinitionData matches the shift catalog seeding YAML schema
type ShiftDefinitionData struct {
	Name      string `yaml:"name"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
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

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	staff, err := loadStaff(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load staff: %w", err)
	}

	definitions, err := loadShiftDefinitions(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load shift definitions: %w", err)
	}

	created := 0
	for _, data := range staff {
		record, err := toStaffModel(data)
		if err != nil {
			return fmt.Errorf("staff %q: %w", data.Code, err)
		}
		result := db.Where("code = ?", record.Code).FirstOrCreate(record)
		if result.Error != nil {
			return fmt.Errorf("staff %q: %w", data.Code, result.Error)
		}
		created += int(result.RowsAffected)
	}
	log.Printf("Staff: %d loaded, %d created", len(staff), created)

	for _, data := range definitions {
		def := &models.ShiftDefinition{
			Name:      strings.TrimSpace(data.Name),
			StartTime: data.StartTime,
			EndTime:   data.EndTime,
		}
		err := db.Where("name = ?", def.Name).
			Assign(map[string]interface{}{"start_time": def.StartTime, "end_time": def.EndTime}).
			FirstOrCreate(def).Error
		if err != nil {
			return fmt.Errorf("shift definition %q: %w", data.Name, err)
		}
	}
	log.Printf("Shift definitions: %d loaded", len(definitions))

	return nil
}

func loadStaff(dataDir string) ([]StaffData, error) {
	var staff []StaffData
	if err := readYAML(filepath.Join(dataDir, "staff.yaml"), &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func loadShiftDefinitions(dataDir string) ([]ShiftDefinitionData, error) {
	var definitions []ShiftDefinitionData
	if err := readYAML(filepath.Join(dataDir, "shift_definitions.yaml"), &definitions); err != nil {
		return nil, err
	}
	return definitions, nil
}

func readYAML(path string, target interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, target)
}

func toStaffModel(data StaffData) (*models.Staff, error) {
	record := &models.Staff{
		Code:        strings.TrimSpace(data.Code),
		Name:        data.Name,
		EnglishName: data.EnglishName,
		Gender:      data.Gender,
		Phone:       data.Phone,
		Address:     data.Address,
		Email:       data.Email,
		WorkEmail:   data.WorkEmail,
	}

	var err error
	if record.DateOfBirth, err = parseOptionalDate(data.DateOfBirth); err != nil {
		return nil, fmt.Errorf("dob: %w", err)
	}
	if record.HiredAt, err = parseOptionalDate(data.HiredAt); err != nil {
		return nil, fmt.Errorf("date_first: %w", err)
	}
	if record.OfficialAt, err = parseOptionalDate(data.OfficialAt); err != nil {
		return nil, fmt.Errorf("date_official: %w", err)
	}
	return record, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
