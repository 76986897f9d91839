package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"factory-planner/core/loader"
	"factory-planner/core/logger"
	"factory-planner/core/middleware/auth"
	"factory-planner/core/middleware/rayid"
	"factory-planner/core/middleware/throttle"
	"factory-planner/feature/catalog"
	"factory-planner/feature/integrity"
	"factory-planner/feature/target"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "factory-planner/docs/swagger"
)

// @title Factory Planner API
// @version 1.0
// @description Reconciles building counts and production rates for build targets.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the planner HTTP server",
	Long:  `Starts the HTTP server and loads the catalog, target and integrity features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setupEnv(false)
		if err != nil {
			return err
		}
		logg := e.log
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		src, err := e.source()
		if err != nil {
			return err
		}
		cache := catalog.NewCache(src, e.cfg.Catalog.CacheTTL())

		// Fail fast on a broken catalog rather than on the first request
		c, err := cache.Get(cmd.Context())
		if err != nil {
			return err
		}
		logg.Info("Catalog loaded", zap.String("source", src.Name()), zap.Int("items", len(c.Items())))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if e.cfg.Catalog.Source == catalog.SourceFile && e.cfg.Catalog.Watch {
			go func() {
				if err := catalog.Watch(ctx, e.cfg.Catalog.Path, cache, logg); err != nil {
					logg.Error("Catalog watcher stopped", zap.Error(err))
				}
			}()
		}

		catalogSvc := catalog.NewService(cache, e.format, logg)
		targetSvc := target.NewService(target.NewSession(e.cfg.Target.MaxTargets), cache, e.format, logg)

		mgr := loader.NewManager(logg)
		mgr.Register(catalog.NewFeature(catalogSvc))
		mgr.Register(target.NewFeature(targetSvc))
		mgr.Register(integrity.NewFeature(e.store, e.cfg.Storage.Bucket, e.cfg.Catalog.Object, e.db, logg))

		app := fiber.New(fiber.Config{DisableStartupMessage: true})

		// RayID first so every later line and rejection carries it
		app.Use(rayid.New())
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

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		if e.cfg.Server.Swagger {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}

		if e.cfg.Server.Throttled() {
			app.Use(throttle.New(throttle.Config{Limit: e.cfg.Server.RateLimit, Burst: e.cfg.Server.RateBurst}))
		}
		app.Use(auth.New(auth.Config{ApiKey: e.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", e.cfg.Server.Port))
			errCh <- app.Listen(e.cfg.Server.Addr())
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
