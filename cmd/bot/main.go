package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dungeonhelper/dungeon-helper/internal/config"
	"github.com/dungeonhelper/dungeon-helper/internal/handlers/discord"
	"github.com/dungeonhelper/dungeon-helper/internal/repositories/channels"
	"github.com/dungeonhelper/dungeon-helper/internal/repositories/characters"
	"github.com/dungeonhelper/dungeon-helper/internal/services/game"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancel()
		log.Fatalf("Failed to connect to Redis at %s: %v", cfg.Redis.Addr, err)
	}
	cancel()
	log.Printf("Connected to Redis at %s", cfg.Redis.Addr)

	// Create repositories
	characterRepo := characters.NewRedisRepository(&characters.RedisRepoConfig{
		Client: redisClient,
	})
	channelRepo := channels.NewRedisRepository(&channels.RedisRepoConfig{
		Client: redisClient,
	})

	// Create the game service
	gameService := game.NewService(&game.ServiceConfig{
		CharacterRepository: characterRepo,
	})

	// Create Discord session and handler
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	handler := discord.NewHandler(&discord.HandlerConfig{
		GameService:       gameService,
		ChannelRepository: channelRepo,
	})
	dg.AddHandler(handler.Ready)
	dg.AddHandler(handler.MessageCreate)

	if err := dg.Open(); err != nil {
		log.Fatalf("Failed to open Discord connection: %v", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down...")
		if err := dg.Close(); err != nil {
			log.Printf("Failed to close Discord connection: %v", err)
		}
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
}
