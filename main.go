package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"triviahub/config"
	"triviahub/handlers"
	"triviahub/middleware"
	"triviahub/trivia"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	// Initialize database connection
	config.Connect()

	h := &handlers.Handler{Service: trivia.NewService(config.Database)}
	mux := http.NewServeMux()

	// Accounts
	mux.HandleFunc("POST /api/register", h.Register)
	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("POST /api/logout", h.Logout)
	mux.HandleFunc("GET /api/dashboard", middleware.RequireUser(h.Dashboard))

	// Trivia sets
	mux.HandleFunc("POST /api/sets", middleware.RequireUser(h.CreateTriviaSet))
	mux.HandleFunc("GET /api/sets/{setID}", h.GetSetByID)
	mux.HandleFunc("PUT /api/sets/{setID}", middleware.RequireUser(h.UpdateSetByID))
	mux.HandleFunc("DELETE /api/sets/{setID}", middleware.RequireUser(h.DeleteSetByID))
	mux.HandleFunc("GET /api/search", h.SearchTriviaSets)

	// Play
	mux.HandleFunc("POST /api/sets/{setID}/submissions", middleware.RequireUser(h.SubmitAnswers))
	mux.HandleFunc("GET /api/users/{userID}/top-scores", h.GetTopScores)

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}
	serverAddr := "0.0.0.0:" + port

	log.Printf("main: listening on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatal(err)
	}
}
