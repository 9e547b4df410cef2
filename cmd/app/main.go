package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"prepwise-backend/cmd/app/internal/controller"
	"prepwise-backend/internal/aiclient"
	"prepwise-backend/internal/config"
	"prepwise-backend/internal/db"
	"prepwise-backend/internal/model"
	"prepwise-backend/internal/question"
	"prepwise-backend/internal/report"
	"prepwise-backend/internal/repository"
	"prepwise-backend/internal/session"
	"prepwise-backend/internal/validation"
	"prepwise-backend/pkg/middleware"
	"prepwise-backend/utilities"
)

func main() {
	printStartUpBanner()

	// Service API key comes from .env, everything else from config.xml.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; continuing with environment as-is")
	}

	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utilities.SetupLogging(cfg.Context.LogDir)

	// Initialize DB using the loaded config. The report archive is
	// optional: with INITIALIZE off, sessions still run end to end.
	db.InitDBFromConfig(cfg)
	if conn := db.GetDB(); conn != nil {
		if err := conn.AutoMigrate(&model.ReportRecord{}); err != nil {
			utilities.Error("migration failed: %v", err)
		}
	}

	// AI service client shared by both generators and the validator.
	client := aiclient.NewClient(cfg.AIServices, os.Getenv("AI_SERVICE_API_KEY"))

	reportRepo := repository.NewReportRepository()
	report.InitReportEventListeners(utilities.GlobalEventBus, reportRepo, session.EventInterviewCompleted)

	orchestrator := session.NewOrchestrator(
		session.NewStore(),
		question.NewTheoryGenerator(client),
		question.NewPracticalGenerator(client),
		validation.NewValidator(client),
		session.Policy{
			PairsPerSession: cfg.Interview.PairsPerSession,
			DefaultModule:   model.Module(cfg.Interview.DefaultModule),
			CaptureMax:      time.Duration(cfg.Interview.CaptureMaxSeconds) * time.Second,
		},
		utilities.GlobalEventBus,
	)

	// Initialize Gin router.
	r := gin.Default()

	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	controller.RegisterRoutes(r, orchestrator, reportRepo)

	// Start server on the host and port specified in the XML config.
	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("PREPWISE", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("PREPWISE INTERVIEW API (v%s)\n\n", "1.0.0")
}
