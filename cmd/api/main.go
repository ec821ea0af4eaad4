package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/satyam3824/content-repurposer/db"
	"github.com/satyam3824/content-repurposer/internal/handler"
	"github.com/satyam3824/content-repurposer/internal/repository"
	"github.com/satyam3824/content-repurposer/pkg/llm"
	"github.com/satyam3824/content-repurposer/pkg/repurpose"
)

func main() {

	godotenv.Load()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	client, err := llm.NewFromEnv()
	if err != nil {
		log.Fatalf("error building LLM client: %v", err)
	}

	service, err := repurpose.NewService(client)
	if err != nil {
		log.Fatalf("error building repurpose service: %v", err)
	}

	jobRepo := repository.NewJobRepository(db.DB)
	jobQueue := db.NewJobQueue(db.JobQueueKey)

	repurposeHandler := handler.NewRepurposeHandler(service, client.ModelName())
	jobHandler := handler.NewJobHandler(jobRepo, jobQueue)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/repurpose", repurposeHandler.Repurpose)
	r.GET("/formats", repurposeHandler.GetFormats)
	r.POST("/jobs", jobHandler.CreateJob)
	r.GET("/jobs", jobHandler.GetJobs)
	r.GET("/jobs/:id", jobHandler.GetJob)
	r.GET("/health", jobHandler.GetHealth)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	err = r.Run(addr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
