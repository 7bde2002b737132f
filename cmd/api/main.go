package main

import (
	"fmt"
	"net/http"

	"github.com/worklane/leave-backend-go/internal/config"
	appHTTP "github.com/worklane/leave-backend-go/internal/handler/http"
	"github.com/worklane/leave-backend-go/internal/pkg/database"
	"github.com/worklane/leave-backend-go/internal/repository/postgresql"
	leaveService "github.com/worklane/leave-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)

	leaveSvc := leaveService.NewLeaveService(db, leaveTypeRepo, leaveRequestRepo, profileRepo)

	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(leaveHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
