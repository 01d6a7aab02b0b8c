package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AvinashSingh09/WebBingo/internal/cards"
	"github.com/AvinashSingh09/WebBingo/internal/common/clock"
	"github.com/AvinashSingh09/WebBingo/internal/common/keygen"
	"github.com/AvinashSingh09/WebBingo/internal/handlers/ws"
	"github.com/AvinashSingh09/WebBingo/internal/models"
	roomRepo "github.com/AvinashSingh09/WebBingo/internal/repositories/room"
	"github.com/AvinashSingh09/WebBingo/internal/services/game"
)

const shutdownGrace = 10 * time.Second

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	setupLogging()

	port := envOr("PORT", "3000")
	staticDir := envOr("STATIC_DIR", "./public")
	variant := models.Variant(envOr("GAME_VARIANT", string(models.VariantFilms)))
	if variant != models.VariantFilms && variant != models.VariantNumbers {
		log.Fatal().Str("variant", string(variant)).Msg("unknown GAME_VARIANT")
	}

	repo, err := roomRepo.NewMemory()
	if err != nil {
		log.Fatal().Err(err).Msg("creating room repository")
	}

	hub := ws.NewHub(log.With().Str("component", "hub").Logger())

	gameService, err := game.New(&game.Config{
		RoomRepo:    repo,
		Cards:       cards.New(&cards.Config{Variant: variant}),
		Keys:        keygen.New(),
		Clock:       &clock.DefaultClock{},
		Broadcaster: hub,
		Logger:      log.With().Str("component", "game").Logger(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("creating game service")
	}

	wsHandler, err := ws.New(&ws.Config{
		GameService: gameService,
		Hub:         hub,
		Logger:      log.With().Str("component", "ws").Logger(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("creating websocket handler")
	}

	if strings.ToLower(envOr("GIN_MODE", "")) != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	wsHandler.RegisterRoutes(router)

	router.GET("/healthz", func(c *gin.Context) {
		rooms, err := repo.CountRooms(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "rooms": rooms})
	})

	// Everything else is the static game client.
	router.NoRoute(func(c *gin.Context) {
		path := filepath.Join(staticDir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", port).Str("variant", string(variant)).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

func setupLogging() {
	level, err := zerolog.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if envOr("LOG_FORMAT", "console") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
