package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"fridge-manager/core/barcode"
	"fridge-manager/core/catalog"
	"fridge-manager/core/config"
	"fridge-manager/core/database"
	"fridge-manager/core/history"
	"fridge-manager/core/loader"
	"fridge-manager/core/logger"
	"fridge-manager/core/middleware/auth"
	"fridge-manager/core/middleware/rayid"
	"fridge-manager/core/pantry"
	"fridge-manager/core/reconcile"
	"fridge-manager/core/storage"
	"fridge-manager/core/vision"

	"fridge-manager/feature/inventory"
	"fridge-manager/feature/products"
	"fridge-manager/feature/scan"
	"fridge-manager/feature/status"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "fridge-manager/docs/swagger"
)

// @title Fridge Manager API
// @version 1.0
// @description API for keeping a pantry inventory from camera scans.
// @host localhost:8080
// @BasePath /api

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the fridge manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		// The scan history degrades to a no-op without it.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else if err := history.Migrate(conn); err != nil {
			logg.Warn("Scan log migration failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to scan log database")
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage (Optional)
		var client storage.Client
		if cfg.Storage.Enabled {
			client, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				logg.Fatal("Failed to ensure storage bucket", zap.Error(err))
			}
		} else {
			logg.Info("Object storage disabled; scans will not be archived")
		}

		// 6. Initialize Detection Pipeline
		detector, err := vision.New(ctx, cfg.Vision)
		if err != nil {
			logg.Fatal("Failed to create detector", zap.Error(err))
		}
		if err := detector.Health(ctx); err != nil {
			logg.Warn("Detection backend not healthy", zap.Error(err))
		}
		scanner := barcode.NewZxingScanner(cfg.Barcode)

		resolver := catalog.NewResolver()
		var lookup scan.ProductLookup
		if cfg.Catalog.LookupEnabled {
			lookup = catalog.NewOpenFoodFacts(cfg.Catalog)
		}
		normalizer := scan.NewNormalizer(resolver, lookup, logg)
		engine := reconcile.NewEngine(cfg.Reconcile, logg)

		// 7. Open the Pantry Store
		store, err := pantry.Open(ctx, pantryPersister(cfg, client, logg), logg)
		if err != nil {
			logg.Fatal("Failed to open pantry store", zap.Error(err))
		}

		var archive *scan.Archive
		if client != nil {
			archive = scan.NewArchive(client, cfg.Storage.Bucket, cfg.Storage.ArchivePrefix, logg)
		}
		recorder := history.NewRecorder(db, logg)

		// 8. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(scan.NewFeature(detector, scanner, normalizer, engine, store, archive, recorder, logg))
		mgr.Register(inventory.NewFeature(store, engine, resolver, recorder, logg))
		mgr.Register(products.NewFeature(cfg.Catalog, logg))
		mgr.Register(status.NewFeature(detector, client, cfg.Storage.Bucket, db, store, cfg.Catalog.LookupEnabled, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Health + Swagger Documentation (Public)
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "service": "fridge-manager"})
		})
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 4. Load Features
		if err := mgr.LoadAll(app.Group("/api")); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
