package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/spfm/backend/internal/auth"
	database "github.com/spfm/backend/internal/db"
	"github.com/spfm/backend/internal/finance/application"
	"github.com/spfm/backend/internal/finance/infrastructure"
	"github.com/spfm/backend/internal/finance/interfaces"
	"github.com/spfm/backend/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	authService        auth.Service
	authHandler        *auth.Handler
	userHandler        *user.Handler
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
}

func NewServer(
	dbService *database.DBService,
	authService auth.Service,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	categoryHandler *interfaces.CategoryHandler,
	transactionHandler *interfaces.TransactionHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		dbService:          dbService,
		authService:        authService,
		authHandler:        authHandler,
		userHandler:        userHandler,
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, health)
}

func (s *Server) RegisterRoutes() {
	withAuth := s.authService.JWTAccessTokenMiddleware()

	mainRouter := http.NewServeMux()

	// Public routes
	mainRouter.Handle("POST /api/users/register", http.HandlerFunc(s.userHandler.HandleRegister))
	mainRouter.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	mainRouter.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Categories (owner-scoped, JWT protected)
	mainRouter.Handle("POST /api/categories", withAuth(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	mainRouter.Handle("GET /api/categories", withAuth(http.HandlerFunc(s.categoryHandler.GetCategories)))
	mainRouter.Handle("PATCH /api/categories/{id}", withAuth(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	mainRouter.Handle("DELETE /api/categories/{id}", withAuth(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// Transactions (owner-scoped, JWT protected)
	mainRouter.Handle("GET /api/transactions", withAuth(http.HandlerFunc(s.transactionHandler.GetUserTransactions)))
	mainRouter.Handle("POST /api/transactions/create", withAuth(http.HandlerFunc(s.transactionHandler.CreateTransaction)))

	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo, categoryService)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	server := NewServer(dbService, authService, authHandler, userHandler, categoryHandler, transactionHandler)
	server.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Printf("Server starting on %s...", addr)
	if err := http.ListenAndServe(addr, loggingMiddleware(server.router)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
