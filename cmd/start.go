package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"floor-plan/core/loader"
	"floor-plan/core/logger"
	"floor-plan/core/middleware/auth"
	"floor-plan/core/middleware/rayid"
	"floor-plan/core/storage"
	"floor-plan/feature/plans"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "floor-plan/docs/swagger"
)

// @title Floor Plan API
// @version 1.0
// @description API for counting chairs per room in ASCII floor plans.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the floor plan HTTP server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger and legend
		rt, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Storage (optional, remote routes answer 503 without it)
		var store storage.Client
		if client, err := newStorageClient(rt.cfg.Storage); err != nil {
			logg.Warn("Object storage disabled", zap.Error(err))
		} else {
			store = client
		}

		// 3. Fiber app
		app := newApp(rt, store)

		// 4. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", rt.cfg.Server.Addr()))
			if err := app.Listen(rt.cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 5. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

// newApp wires the middleware chain and every feature onto a new fiber app.
func newApp(rt *env, store storage.Client) *fiber.App {
	logg := rt.logger

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             rt.cfg.Server.BodyLimit(),
	})

	// RayID first so every later log line carries it.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		start := time.Now()
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		l.Info("Request handled",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("took", time.Since(start)),
		)
		return err
	})

	// Swagger stays public.
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

	mgr := loader.NewManager()
	mgr.Register(plans.NewFeature(store, rt.cfg.Storage.Bucket, rt.cfg.Storage.Prefix, rt.legend, logg))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		logg.Fatal("Failed to load features", zap.Error(err))
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))

	return app
}

func init() {
	RootCmd.AddCommand(startCmd)
}
