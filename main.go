// @title           Telecor Project Manager API
// @version         1.0
// @description     Backend for the Telecor project and staff manager.

// @BasePath  /

// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/gfabrizzio79/Telecor-App/handlers"
	"github.com/gfabrizzio79/Telecor-App/logging"
	"github.com/gfabrizzio79/Telecor-App/repository"
	"github.com/gfabrizzio79/Telecor-App/services"
	"github.com/gfabrizzio79/Telecor-App/storage"
)

// CORSConfig allows the browser client on its usual dev and production hosts.
func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://localhost:9000",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization",
		"Cache-Control", "Referer", "User-Agent",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Content-Type", "Content-Disposition",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

// newStore picks the storage backend from the environment. Postgres keeps
// the collections in a kv_store table; the file backend keeps one JSON file
// per key under DATA_DIR.
func newStore() storage.Store {
	if os.Getenv("STORAGE_BACKEND") == "postgres" {
		return storage.NewPgStore(storage.InitDB())
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	store, err := storage.NewFileStore(dataDir)
	if err != nil {
		log.Fatalf("Failed to open file store: %v", err)
	}
	return store
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	logging.InitLogger()

	store := newStore()
	projectRepo := repository.NewProjectRepository(store)
	staffRepo := repository.NewStaffRepository(store)
	registryRepo := repository.NewRegistryRepository(store)
	geminiService := services.NewGeminiService()

	if !geminiService.Configured() {
		logging.Logger.Warn("GEMINI_API_KEY not set, AI description endpoint will be unavailable")
	}

	// Nightly snapshot of every storage key, pruned after 30 days
	backupDir := os.Getenv("BACKUP_DIR")
	if backupDir == "" {
		backupDir = "backups"
	}
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 2 * * *", func() {
		written, err := storage.Snapshot(store, backupDir)
		if err != nil {
			logging.Logger.Errorf("Storage snapshot failed: %v", err)
			return
		}
		removed, _ := storage.PruneSnapshots(backupDir, 30*24*time.Hour)
		logging.Logger.Infof("Storage snapshot done: %d keys written, %d old snapshots pruned", written, removed)
	}); err != nil {
		log.Fatalf("Failed to schedule backup job: %v", err)
	}
	scheduler.Start()

	r := gin.Default()
	r.Use(cors.New(CORSConfig()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== PROJECTS ====================
	r.GET("/api/projects", handlers.GetProjects(projectRepo))
	r.POST("/api/projects", handlers.SaveProject(projectRepo))
	r.GET("/api/projects/:id", handlers.GetProjectByID(projectRepo))
	r.DELETE("/api/projects/:id", handlers.DeleteProject(projectRepo))

	// ==================== RESOURCES ====================
	r.POST("/api/projects/:id/resources", handlers.AssignResource(projectRepo, staffRepo))
	r.PUT("/api/projects/:id/resources/:resource_id/dates", handlers.UpdateResourceDates(projectRepo))
	r.DELETE("/api/projects/:id/resources/:resource_id", handlers.RemoveResource(projectRepo))
	r.GET("/api/projects/:id/available-staff", handlers.GetAvailableStaff(projectRepo, staffRepo))

	// ==================== STAFF ====================
	r.GET("/api/staff", handlers.GetStaff(staffRepo))
	r.POST("/api/staff", handlers.SaveStaff(staffRepo))
	r.GET("/api/staff/:id", handlers.GetStaffByID(staffRepo))
	r.DELETE("/api/staff/:id", handlers.DeleteStaff(staffRepo))

	// ==================== TRAININGS ====================
	r.POST("/api/staff/:id/trainings", handlers.AddTraining(staffRepo))
	r.PUT("/api/staff/:id/trainings/:training_id", handlers.UpdateTraining(staffRepo))
	r.DELETE("/api/staff/:id/trainings/:training_id", handlers.RemoveTraining(staffRepo))

	// ==================== REGISTRIES ====================
	r.GET("/api/countries", handlers.GetCountries(registryRepo))
	r.POST("/api/countries", handlers.AddCountry(registryRepo))
	r.GET("/api/afp-options", handlers.GetAfpOptions(registryRepo))
	r.POST("/api/afp-options", handlers.AddAfpOption(registryRepo))

	// ==================== REPORTS ====================
	r.POST("/api/reports/projects", handlers.GenerateProjectReport(projectRepo))
	r.POST("/api/reports/projects/pdf", handlers.GenerateProjectReportPDF(projectRepo))
	r.POST("/api/reports/projects/excel", handlers.GenerateProjectReportExcel(projectRepo))
	r.GET("/api/reports/staff/pdf", handlers.GenerateStaffReportPDF(staffRepo))

	// ==================== AI ====================
	r.POST("/api/ai/describe", handlers.GenerateDescription(geminiService))

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}
	portInt, err := strconv.Atoi(port)
	if err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}
	if portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT: %d. Must be between 0 and 65535.", portInt)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logging.Logger.Infof("Server listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	scheduler.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
