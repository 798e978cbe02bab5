package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"huddle/backend/internal/api/handler"
	"huddle/backend/internal/chat"
	"huddle/backend/internal/chathub"
	"huddle/backend/internal/config"
	"huddle/backend/internal/models"
	"huddle/backend/internal/notify"
	"huddle/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupDependencies opens the process-wide PostgreSQL and Redis handles.
// Failure here is fatal: the service cannot serve a single request without
// its store.
func setupDependencies(cfg config.Config) (*gorm.DB, *redis.Client) {
	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the engines use as their
	// already-exists / already-voted signal.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.ChatRoom{},
		&models.Message{},
		&models.Group{},
		&models.GroupMember{},
		&models.GroupMessage{},
		&models.Poll{},
		&models.PollResponse{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting Huddle Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, rdb := setupDependencies(cfg)
	s := storage.NewService(db, rdb)
	engines := chat.NewService(s)

	broadcast, closeSub := s.SubscribeEvents()
	defer closeSub()

	hub := chathub.NewManagerService(engines, s, broadcast)

	if cfg.TelegramBotToken != "" {
		notifier, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("Warning: Telegram notifier disabled: %v", err)
		} else {
			hub.Notifier = notifier
		}
	}

	go hub.Run()

	r := gin.Default()
	h := handler.NewHandler(hub, []byte(cfg.JWTSecret))

	r.GET("/token", h.GetToken)
	r.GET("/ws", h.ServeWebSocket)

	server := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
