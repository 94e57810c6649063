// Command seed bulk-loads catalog, user and wishlist data into the store.
// With -catalog it reads products from an Excel sheet; otherwise it loads
// the built-in sample data set.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/twiddles/voice-assistant/config"
	"github.com/twiddles/voice-assistant/internal/infrastructure/mongodb"
	"github.com/twiddles/voice-assistant/internal/infrastructure/parser"
)

func main() {
	catalogPath := flag.String("catalog", "", "path to an .xlsx catalog file; built-in sample products are used when empty")
	withUsers := flag.Bool("users", true, "also load sample user profiles")
	wishlistUser := flag.String("wishlist-user", "", "load the sample wishlist for this user id")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.StorageBackend != config.BackendMongo {
		logger.Error("seeding requires the mongo backend")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	store := mongodb.NewClient(cfg.MongoUsername, cfg.MongoPassword, cfg.MongoURL, cfg.MongoDatabase, logger)
	if err := store.Connect(ctx); err != nil {
		logger.Error("failed to connect to store", "error", err)
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Disconnect(disconnectCtx)
	}()

	repo := mongodb.NewCommerceRepository(store, logger)

	products := sampleProducts()
	if *catalogPath != "" {
		parsed, err := parser.NewCatalogParser().ParseProducts(ctx, *catalogPath)
		if err != nil {
			logger.Error("failed to parse catalog file", "path", *catalogPath, "error", err)
			os.Exit(1)
		}
		products = parsed
	}

	ids, err := repo.SaveProducts(ctx, products)
	if err != nil {
		logger.Error("failed to load products", "error", err)
		os.Exit(1)
	}
	logger.Info("loaded products", "count", len(ids))

	if *withUsers {
		for _, user := range sampleUsers() {
			if _, err := repo.CreateUserProfile(ctx, user); err != nil {
				logger.Error("failed to load user", "user_id", user.UserID, "error", err)
				os.Exit(1)
			}
		}
		logger.Info("loaded sample users", "count", len(sampleUsers()))
	}

	if *wishlistUser != "" {
		ids, err := repo.AddToWishlist(ctx, *wishlistUser, sampleWishlist())
		if err != nil {
			logger.Error("failed to load wishlist", "user_id", *wishlistUser, "error", err)
			os.Exit(1)
		}
		logger.Info("loaded sample wishlist", "user_id", *wishlistUser, "count", len(ids))
	}
}
