package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/Ebelene1994/Presto-Pizza/client"
	"github.com/Ebelene1994/Presto-Pizza/handlers"
	"github.com/Ebelene1994/Presto-Pizza/internal/payment"
	"github.com/Ebelene1994/Presto-Pizza/internal/session"
	"github.com/Ebelene1994/Presto-Pizza/store"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	log.Printf("Using fallback for env var %s: %s", key, fallback)
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	serverPort := getEnv("SERVER_PORT", "8080")

	mongoCfg := store.MongoConfig{
		URI:      getEnv("MONGO_URI", ""),
		Host:     getEnv("MONGO_HOST", "localhost"),
		Port:     getEnv("MONGO_PORT", "27017"),
		User:     getEnv("MONGO_USER", ""),
		Password: getEnv("MONGO_PASSWORD", ""),
		DBName:   getEnv("MONGO_DBNAME", "presto_db"),
		Timeout:  15 * time.Second,
	}

	mongoClient, err := store.NewMongoConnection(mongoCfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB client...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting MongoDB client: %v", err)
		}
	}()

	mongoDB := store.MongoDatabase(mongoClient, mongoCfg.DBName)
	profiles := store.NewMongoProfileStore(mongoDB)

	rdb := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
	})
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	pingCancel()
	log.Println("Successfully connected and pinged Redis")
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}()

	prefs := store.NewRedisPrefsStore(rdb)

	identity := client.NewIdentityClient(
		getEnv("IDENTITY_BASE_URL", "https://identitytoolkit.googleapis.com"),
		getEnv("IDENTITY_API_KEY", ""),
	)
	relay := client.NewFormRelayClient(
		getEnv("FORM_RELAY_URL", "https://api.web3forms.com/submit"),
		getEnv("FORM_RELAY_ACCESS_KEY", ""),
	)

	sessions := session.NewManager()
	processor := payment.NewProcessor()

	menuHandler := handlers.NewMenuHandler()
	cartHandler := handlers.NewCartHandler()
	checkoutHandler := handlers.NewCheckoutHandler(processor)
	authHandler := handlers.NewAuthHandler(identity, profiles, prefs, sessions)
	formsHandler := handlers.NewFormsHandler(relay)
	contentHandler := handlers.NewContentHandler()
	navHandler := handlers.NewNavigationHandler()

	router := gin.Default()
	handlers.RegisterRoutes(router, sessions,
		menuHandler, cartHandler, checkoutHandler,
		authHandler, formsHandler, contentHandler, navHandler)

	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Starting Presto Ordering Service on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exiting")
}
