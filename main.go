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

	"institute-backend/config"
	"institute-backend/controllers"
	"institute-backend/routes"
	"institute-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	log.Println("Database connection established, migrations and seeding applied")

	// Initialize services
	authService := services.NewAuthService(db)
	certificateService := services.NewCertificateService(db)
	computerCourseService := services.NewComputerCourseService(db)
	typingCourseService := services.NewTypingCourseService(db)
	messageService := services.NewMessageService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	certificateController := controllers.NewCertificateController(certificateService)
	computerCourseController := controllers.NewComputerCourseController(computerCourseService)
	typingCourseController := controllers.NewTypingCourseController(typingCourseService)
	messageController := controllers.NewMessageController(messageService)

	// Build router
	router := routes.SetupRouter(
		authController,
		certificateController,
		computerCourseController,
		typingCourseController,
		messageController,
		authService,
	)

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

	// Graceful shutdown on SIGINT/SIGTERM
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
