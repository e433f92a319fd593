package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"bazaryar/productworker/config"
	"bazaryar/productworker/helpers"
	"bazaryar/productworker/internal/crawler"
	"bazaryar/productworker/internal/export"
	"bazaryar/productworker/internal/normalize"
	"bazaryar/productworker/internal/sample"
	"bazaryar/productworker/logger"
	"bazaryar/productworker/services/cache"
	"bazaryar/productworker/services/publisher"
	"bazaryar/productworker/services/searcher"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: productworker <search query>")
		os.Exit(2)
	}
	rawQuery := strings.Join(os.Args[1:], " ")

	log.Info().
		Str("environment", cfg.Environment).
		Str("query", rawQuery).
		Msg("Starting product search")

	// Set up context cancelled on shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	services, err := initializeServices(ctx, &cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	defer services.Cleanup()

	// Create store crawlers
	crawlers := crawler.CreateCrawlers(&cfg, services.Cache)
	if len(crawlers) == 0 {
		log.Fatal().Msg("No crawlers were created")
	}

	log.Info().
		Int("crawler_count", len(crawlers)).
		Msg("Created crawlers")

	s := searcher.NewSearcher(
		ctx,
		crawlers,
		sample.NewStaticSource(),
		services.Publisher,
		helpers.NewLogger(),
	)

	products, err := s.Search(rawQuery)
	if err != nil {
		if errors.Is(err, normalize.ErrEmptyQuery) {
			fmt.Fprintln(os.Stderr, "Please enter a search term.")
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("Search failed")
	}

	if len(products) == 0 {
		fmt.Println("No results found. Try a different search term.")
		return
	}

	fmt.Printf("Found %d products\n\n", len(products))
	if err := export.RenderTable(os.Stdout, products); err != nil {
		log.Error().Err(err).Msg("Failed to render results")
	}

	if cfg.CSVPath != "" {
		if err := writeCSVFile(cfg.CSVPath, products); err != nil {
			logger.ForExporter().Error().Err(err).Str("path", cfg.CSVPath).Msg("CSV export failed")
		} else {
			logger.ForExporter().Info().Str("path", cfg.CSVPath).Msg("Results exported")
		}
	}
}

func writeCSVFile(path string, products []crawler.Product) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return export.WriteCSV(f, products)
}

// Services holds all the initialized services
type Services struct {
	Cache     cache.CacheService
	Publisher publisher.Publisher
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if s.Publisher != nil {
		s.Publisher.Close()
	}
}

// initializeServices initializes all required services
func initializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	services := &Services{}

	// Initialize cache service
	cacheService := cache.NewMemcacheService(cfg.MemcacheAddr)
	if cacheService == nil {
		return nil, fmt.Errorf("failed to create cache service")
	}
	services.Cache = cacheService

	logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)

	// Initialize publisher
	redisPublisher := publisher.NewRedisPublisher(
		ctx,
		cfg.RedisAddr,
		cfg.RedisDB,
		cfg.RedisStream,
		cfg.RedisStreamCount,
		cfg.RedisStreamMaxLength,
	)
	if redisPublisher == nil {
		return nil, fmt.Errorf("failed to create redis publisher")
	}
	services.Publisher = redisPublisher

	logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
		cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)

	return services, nil
}
