package main

import (
	"context"
	"fmt"

	"github.com/worklane/leave-backend-go/internal/config"
	"github.com/worklane/leave-backend-go/internal/fixtures"
	"github.com/worklane/leave-backend-go/internal/pkg/database"
	"github.com/worklane/leave-backend-go/internal/repository/postgresql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := postgresql.SeedLeaveTypes(context.Background(), db, fixtures.DefaultLeaveTypes()); err != nil {
		fmt.Println("Error seeding leave types:", err)
		return
	}

	fmt.Println("Leave types seeded")
}
