package db

import (
	"fmt"
	"log"
	"strings"

	"github.com/linskybing/ticketdesk/config"
	"github.com/linskybing/ticketdesk/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// enumTypes must exist before AutoMigrate touches columns declared with
// gorm type tags.
var enumTypes = map[string][]string{
	"team_role":       {"admin", "member"},
	"project_role":    {"admin", "member", "worker"},
	"ticket_type":     {"worker", "general"},
	"ticket_priority": {"low", "medium", "high"},
	"ticket_status":   {"open", "in_progress", "closed"},
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := createEnumTypes(DB); err != nil {
		log.Fatal("Failed to create enum types:", err)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Project{},
		&models.UserTeam{},
		&models.ProjectUser{},
		&models.Ticket{},
		&models.TicketAttachment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

func createEnumTypes(gormDB *gorm.DB) error {
	for name, values := range enumTypes {
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = "'" + v + "'"
		}
		stmt := fmt.Sprintf(
			"DO $$ BEGIN CREATE TYPE %s AS ENUM (%s); EXCEPTION WHEN duplicate_object THEN NULL; END $$;",
			name, strings.Join(quoted, ", "),
		)
		if err := gormDB.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
