package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SanjogGautam/Smart-Swastha/internal/config"
	"github.com/SanjogGautam/Smart-Swastha/internal/database"
	"github.com/SanjogGautam/Smart-Swastha/internal/handler"
	"github.com/SanjogGautam/Smart-Swastha/internal/middleware"
	"github.com/SanjogGautam/Smart-Swastha/internal/repository"
	"github.com/SanjogGautam/Smart-Swastha/internal/service"
	"github.com/SanjogGautam/Smart-Swastha/internal/storage"
	"github.com/SanjogGautam/Smart-Swastha/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	database.Migrate(db)

	// 4. Initialize report file storage
	fileStore, err := storage.NewFileStore(cfg.Reports.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize report storage: %v", err)
	}

	// 5. Initialize repositories
	hospitalRepo := repository.NewHospitalRepo(db)
	departmentRepo := repository.NewDepartmentRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	availabilityRepo := repository.NewAvailabilityRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	reportRepo := repository.NewReportRepo(db)
	staffRepo := repository.NewStaffRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 6. Initialize services
	auditService := service.NewAuditService(auditRepo)
	hospitalService := service.NewHospitalService(hospitalRepo)
	departmentService := service.NewDepartmentService(departmentRepo, hospitalRepo)
	doctorService := service.NewDoctorService(doctorRepo, hospitalRepo, departmentRepo)
	patientService := service.NewPatientService(patientRepo, hospitalRepo)
	availabilityService := service.NewAvailabilityService(availabilityRepo, doctorRepo, auditService)
	appointmentService := service.NewAppointmentService(
		appointmentRepo, availabilityRepo, patientRepo, departmentRepo, doctorRepo, auditService)
	reportService := service.NewReportService(reportRepo, patientRepo, fileStore, auditService)
	authService := service.NewAuthService(staffRepo, auditService)
	cleanupService := service.NewCleanupService(staffRepo, time.Hour)

	// 7. Start background token cleanup in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cleanupService.Start(ctx)

	// 8. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 9. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 10. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	patientHandler := handler.NewPatientHandler(patientService)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	reportHandler := handler.NewReportHandler(reportService)
	auditHandler := handler.NewAuditHandler(auditService)

	// 11. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "smart-swastha",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Hospital routes
	hospitals := r.Group("/hospitals")
	{
		hospitals.POST("", hospitalHandler.CreateHospital)
		hospitals.GET("", hospitalHandler.GetAllHospitals)
		hospitals.GET("/:id", hospitalHandler.GetHospital)
		hospitals.PUT("/:id", hospitalHandler.UpdateHospital)
		hospitals.DELETE("/:id", hospitalHandler.DeleteHospital)

		hospitals.POST("/:id/departments", departmentHandler.CreateDepartment)
		hospitals.GET("/:id/departments", departmentHandler.GetDepartmentsByHospital)
		hospitals.GET("/:id/patients", patientHandler.GetPatientsByHospital)
		hospitals.GET("/:id/departments/:departmentId/doctors", doctorHandler.GetDoctorsByHospitalAndDepartment)
	}

	// Department routes
	departments := r.Group("/departments")
	{
		departments.GET("/:id", departmentHandler.GetDepartment)
		departments.PUT("/:id", departmentHandler.UpdateDepartment)
		departments.DELETE("/:id", departmentHandler.DeleteDepartment)

		departments.GET("/:id/doctors", doctorHandler.GetDoctorsByDepartment)
		departments.GET("/:id/appointments", appointmentHandler.GetAppointmentsByDepartment)
	}

	// Doctor routes
	doctors := r.Group("/doctors")
	{
		doctors.POST("", doctorHandler.CreateDoctor)
		doctors.GET("", doctorHandler.GetAllDoctors)
		doctors.GET("/:id", doctorHandler.GetDoctor)
		doctors.PUT("/:id", doctorHandler.UpdateDoctor)
		doctors.DELETE("/:id", doctorHandler.DeleteDoctor)

		doctors.GET("/:id/slots", availabilityHandler.GetAllSlots)
		doctors.GET("/:id/slots/free", availabilityHandler.GetFreeSlots)
		doctors.GET("/:id/appointments", appointmentHandler.GetAppointmentsByDoctor)
	}

	// Patient routes
	patients := r.Group("/patients")
	{
		patients.POST("", patientHandler.RegisterPatient)
		patients.GET("", patientHandler.GetAllPatients)
		patients.GET("/:id", patientHandler.GetPatient)
		patients.PUT("/:id", patientHandler.UpdatePatient)
		patients.DELETE("/:id", patientHandler.DeletePatient)

		patients.GET("/:id/appointments", appointmentHandler.GetAppointmentsByPatient)
		patients.GET("/:id/reports", reportHandler.GetReportsByPatient)
	}

	// Availability slot routes
	slots := r.Group("/slots")
	{
		slots.POST("", availabilityHandler.CreateSlot)
		slots.GET("/:id", availabilityHandler.GetSlot)
		slots.PUT("/:id", availabilityHandler.UpdateSlot)
		slots.DELETE("/:id", availabilityHandler.DeleteSlot)
	}

	// Appointment routes (the booking engine)
	appointments := r.Group("/appointments")
	{
		appointments.POST("", appointmentHandler.BookAppointment)
		appointments.GET("", appointmentHandler.GetAllAppointments)
		appointments.GET("/:id", appointmentHandler.GetAppointment)
		appointments.PUT("/:id", appointmentHandler.UpdateAppointment)
		appointments.DELETE("/:id", appointmentHandler.CancelAppointment)
	}

	// Report routes; mutations require a staff session
	reports := r.Group("/reports")
	{
		reports.GET("/:id", reportHandler.GetReport)
		reports.GET("/:id/download", reportHandler.DownloadReport)
		reports.POST("", middleware.AuthMiddleware(), reportHandler.UploadReport)
		reports.DELETE("/:id", middleware.AuthMiddleware(), reportHandler.DeleteReport)
	}

	// Raw report files referenced by ReportURL
	r.Static("/files/reports", cfg.Reports.Dir)

	// Audit trail (admin only)
	r.GET("/audit", middleware.AuthMiddleware(), middleware.RequireAdmin(), auditHandler.GetAuditLogs)

	// 12. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background worker context
	cancel()
	log.Println("Server exited")
}
