package main

import (
	"context"
	"log"

	"smartgoals/internal/config"
	"smartgoals/internal/db"
	"smartgoals/internal/model"
	"smartgoals/internal/repository"
)

// Demo data for local development. The admin password is hashed by the user
// model's save hook on insert.
var seedUsers = []model.User{
	{
		Name:         "Ada",
		LastName:     "Admin",
		Username:     "ada",
		Email:        "admin@smartgoals.local",
		PasswordHash: "admin-secret",
		Role:         model.RoleAdmin,
	},
	{
		Name:         "Sam",
		LastName:     "Sample",
		Username:     "sam",
		Email:        "sam@smartgoals.local",
		PasswordHash: "sample-secret",
	},
}

var seedGoals = []model.Goal{
	{
		Title:       "Run a half marathon",
		Description: "Train up from 5k over six months",
		Smart: model.Smart{
			Specific:   "Finish the city half marathon",
			Measurable: "21.1 km under 2h15m",
			Achievable: "Currently running 5k twice a week",
			Relevant:   "Improve overall fitness",
			TimeBound:  "Race day is in six months",
		},
		Status:   model.StatusInProgress,
		Tags:     []string{"fitness", "running"},
		IsPublic: true,
	},
	{
		Title: "Read twelve books",
		Smart: model.Smart{
			Specific:   "One book per month",
			Measurable: "Twelve finished books",
			Achievable: "Thirty minutes of reading each evening",
			Relevant:   "Build a reading habit",
			TimeBound:  "By the end of the year",
		},
		Tags: []string{"reading"},
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
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Goal{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	goalRepo := repository.NewGoalRepository(gormDB)

	created := 0
	for i := range seedUsers {
		u := seedUsers[i]
		if existing, err := userRepo.FindByEmail(ctx, u.Email); err == nil && existing != nil {
			log.Printf("user %s already present, skipping", u.Email)
			continue
		}
		if err := userRepo.Create(ctx, &u); err != nil {
			log.Fatalf("seed user %s: %v", u.Email, err)
		}
		created++
	}
	log.Printf("seeded %d users", created)

	created = 0
	for i := range seedGoals {
		g := seedGoals[i]
		if err := goalRepo.Create(ctx, &g); err != nil {
			log.Fatalf("seed goal %q: %v", g.Title, err)
		}
		created++
	}
	log.Printf("seeded %d goals", created)
}
