package main // Entry point package

import (
	"context"   // Context for shutdown propagation
	"log"       // Logging library
	"os"        // Environment access for seed passwords
	"os/signal" // Signal notification for graceful shutdown
	"syscall"   // SIGTERM constant

	"github.com/joho/godotenv"    // Loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hostel-hub/internal/auth"                       // In-memory account store
	"github.com/iliyamo/hostel-hub/internal/config"                     // Internal config loader
	"github.com/iliyamo/hostel-hub/internal/database"                   // MySQL connector for the audit archive
	"github.com/iliyamo/hostel-hub/internal/engine"                     // The data engine owning all mutations
	"github.com/iliyamo/hostel-hub/internal/handler"                    // HTTP handlers
	"github.com/iliyamo/hostel-hub/internal/queue"                      // Audit event consumer
	"github.com/iliyamo/hostel-hub/internal/router"                     // Route registration
	"github.com/iliyamo/hostel-hub/internal/seed"                       // Demo data seeding
	queue_publisher "github.com/iliyamo/hostel-hub/internal/service"    // Audit event publisher
	"github.com/iliyamo/hostel-hub/internal/store"                      // Collections and snapshot persistence
)

func main() {
	_ = godotenv.Load() // Load .env if present; ignore absence in production

	cfg := config.Load() // Load environment config

	// Root context cancelled on SIGINT/SIGTERM so the snapshotter can take
	// one final save before the process exits.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := store.NewDatabase() // Empty collections with the hostel schema
	if err := db.LoadFile(cfg.DataFile); err != nil {
		log.Fatalf("load snapshot %s: %v", cfg.DataFile, err) // Corrupt data file is fatal; a missing one is not
	}

	accounts := auth.NewStore() // Login accounts live beside the engine, not in it
	if cfg.SeedDemo {
		adminPass := getenvDefault("SEED_ADMIN_PASSWORD", "admin123")
		residentPass := getenvDefault("SEED_RESIDENT_PASSWORD", "resident123")
		if err := seed.Apply(db, accounts, adminPass, residentPass, cfg.BcryptCost); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	eng := engine.New(db) // All mutations flow through the engine from here on
	if cfg.AuditEvents {
		eng.SetPublisher(func(ev queue.AuditEvent) { // Fire-and-forget fan-out of audit entries
			_ = queue_publisher.PublishAuditEvent(context.Background(), ev)
		})
	}

	if cfg.AuditArchive { // Optional consumer that archives audit events into MySQL
		archive, err := database.Open(cfg.ArchiveDBUser, cfg.ArchiveDBPass, cfg.ArchiveDBHost, cfg.ArchiveDBPort, cfg.ArchiveDBName)
		if err != nil {
			log.Fatalf("archive db: %v", err)
		}
		go func() {
			if err := queue.StartAuditConsumer(archive); err != nil {
				log.Printf("audit consumer stopped: %v", err)
			}
		}()
	}

	snap := &store.Snapshotter{Path: cfg.DataFile, Interval: cfg.AutosaveInterval, Marshal: eng.Snapshot}
	go snap.Run(ctx) // Autosave loop; saves once more on shutdown

	rdb := config.NewRedisClient() // nil when Redis is unreachable; middleware degrades gracefully

	e := echo.New()                      // Create Echo instance
	e.Validator = handler.NewValidator() // Request body validation via struct tags
	router.RegisterRoutes(e, router.Deps{
		Cfg:       cfg,
		Auth:      handler.NewAuthHandler(cfg, accounts),
		Admin:     handler.NewAdminHandler(eng),
		Resident:  handler.NewResidentHandler(eng),
		Redis:     rdb,
		RateLimit: config.LoadRateLimitConfig(),
		Cache:     config.LoadCacheConfig(),
	})

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	go func() {
		<-ctx.Done()             // Wait for shutdown signal
		_ = e.Shutdown(context.Background()) // Stop accepting requests
	}()

	if err := e.Start(addr); err != nil { // Start HTTP server; returns on shutdown too
		log.Println(err)
	}
}

// getenvDefault returns an environment variable or a fallback.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
