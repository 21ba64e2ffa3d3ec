package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/minhtriet326/Hotel-management-system/config"
	"github.com/minhtriet326/Hotel-management-system/controllers"
	"github.com/minhtriet326/Hotel-management-system/routes"
	"github.com/minhtriet326/Hotel-management-system/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	log.Println("Database connection established and migrations applied")

	fileService := services.NewFileService(os.Getenv("PHOTO_DIR"))
	photoService := services.NewPhotoService(db, fileService)
	roomService := services.NewRoomService(db, photoService)
	customerService := services.NewCustomerService(db)
	serviceService := services.NewServiceService(db)
	bookingService := services.NewBookingService(db)
	historyService := services.NewBookingHistoryService(db)
	usageService := services.NewServiceUsageService(db)
	paymentService := services.NewPaymentService(db, bookingService)
	authService := services.NewAuthService(db)

	router := routes.SetupRouter(routes.Controllers{
		Auth:      controllers.NewAuthController(authService),
		Bookings:  controllers.NewBookingController(bookingService),
		Histories: controllers.NewBookingHistoryController(historyService),
		Rooms:     controllers.NewRoomController(roomService),
		Customers: controllers.NewCustomerController(customerService),
		Catalog:   controllers.NewServiceController(serviceService),
		Usages:    controllers.NewServiceUsageController(usageService),
		Payments:  controllers.NewPaymentController(paymentService),
		Photos:    controllers.NewPhotoController(photoService, fileService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
