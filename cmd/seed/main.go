package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/i-nap/lekhsewa/internal/config"
	"github.com/i-nap/lekhsewa/internal/db"
	"github.com/i-nap/lekhsewa/internal/model"
	"github.com/i-nap/lekhsewa/internal/repository"
)

// demoForms are a few form schemas so search/suggest have something to return
// on a fresh database. Seeding skips forms whose name already exists.
var demoForms = []model.Form{
	{
		Name:        "Citizenship Application",
		Description: "Application form for a citizenship certificate.",
		Fields: []model.FormField{
			{Label: "Full Name", FieldName: "full_name", Type: "text", Required: true, NepaliText: true},
			{Label: "Date of Birth", FieldName: "date_of_birth", Type: "date", Required: true},
			{Label: "District", FieldName: "district", Type: "select", Required: true, Options: []model.FieldOption{
				{Value: "kathmandu", Label: "Kathmandu"},
				{Value: "lalitpur", Label: "Lalitpur"},
				{Value: "bhaktapur", Label: "Bhaktapur"},
			}},
		},
	},
	{
		Name:        "Driving License Renewal",
		Description: "Renewal form for an existing driving license.",
		Fields: []model.FormField{
			{Label: "License Number", FieldName: "license_number", Type: "text", Required: true},
			{Label: "Full Name", FieldName: "full_name", Type: "text", Required: true, NepaliText: true},
			{Label: "Vehicle Category", FieldName: "vehicle_category", Type: "select", Options: []model.FieldOption{
				{Value: "a", Label: "Motorcycle"},
				{Value: "b", Label: "Car / Jeep / Van"},
			}},
		},
	},
	{
		Name:        "Passport Application",
		Description: "Application form for a new passport.",
		Fields: []model.FormField{
			{Label: "Full Name", FieldName: "full_name", Type: "text", Required: true, NepaliText: true},
			{Label: "Citizenship Number", FieldName: "citizenship_number", Type: "text", Required: true},
			{Label: "Contact Number", FieldName: "contact_number", Type: "text", Required: true},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Form{},
		&model.FormField{},
		&model.FieldOption{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	formRepo := repository.NewFormRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for i := range demoForms {
		form := demoForms[i]

		var existing model.Form
		err := gormDB.WithContext(ctx).Where("name = ?", form.Name).First(&existing).Error
		if err == nil {
			skipped++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Error checking form %q: %v", form.Name, err)
		}

		if err := formRepo.Create(ctx, &form); err != nil {
			log.Fatalf("Error creating form %q: %v", form.Name, err)
		}
		created++
	}

	log.Printf("Seed completed: %d forms created, %d already present", created, skipped)
}
