package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wftrack/loadout-api/internal/catalog"
	"github.com/wftrack/loadout-api/internal/clients/catalogsource"
	v1alpha1 "github.com/wftrack/loadout-api/internal/handlers/api/v1alpha1"
	archivesvc "github.com/wftrack/loadout-api/internal/orchestrators/archive"
	buildsvc "github.com/wftrack/loadout-api/internal/orchestrators/builds"
	checksvc "github.com/wftrack/loadout-api/internal/orchestrators/checklist"
	todosvc "github.com/wftrack/loadout-api/internal/orchestrators/todo"
	wishsvc "github.com/wftrack/loadout-api/internal/orchestrators/wishlist"
	"github.com/wftrack/loadout-api/internal/pkg/clock"
	"github.com/wftrack/loadout-api/internal/pkg/idgen"
	"github.com/wftrack/loadout-api/internal/redis"
	archiverepo "github.com/wftrack/loadout-api/internal/repositories/archive"
	buildrepo "github.com/wftrack/loadout-api/internal/repositories/builds"
	checkrepo "github.com/wftrack/loadout-api/internal/repositories/checklist"
	todorepo "github.com/wftrack/loadout-api/internal/repositories/todo"
	wishrepo "github.com/wftrack/loadout-api/internal/repositories/wishlist"
)

var (
	httpPort     int
	redisAddress string
	catalogURL   string
	catalogFile  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tracker HTTP API server",
	Long:  `Start the tracker API server. The item catalog is loaded once at startup; a load failure is fatal.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port")
	serveCmd.Flags().StringVar(&redisAddress, "redis-address", "localhost:6379", "Redis address")
	serveCmd.Flags().StringVar(&catalogURL, "catalog-url", "", "URL of the catalog document")
	serveCmd.Flags().StringVar(&catalogFile, "catalog-file", "", "path to a local catalog document")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	doc, index, err := loadCatalog(ctx)
	if err != nil {
		return err
	}
	slog.Info("catalog loaded", "groupings", len(doc.Groupings), "items", index.Len())

	client, err := redis.NewClient(redisAddress, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() { _ = client.Close() }()

	srv, err := buildServer(doc, index, client)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down cleanly: %w", err)
		}
		slog.Info("server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}

func loadCatalog(ctx context.Context) (*catalog.Document, *catalog.Index, error) {
	source, err := catalogsource.New(&catalogsource.Config{
		URL:  catalogURL,
		Path: catalogFile,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("invalid catalog source: %w", err)
	}

	doc, err := source.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return doc, catalog.BuildIndex(doc), nil
}

func buildServer(doc *catalog.Document, index *catalog.Index, client redis.Client) (*v1alpha1.Server, error) {
	buildRepo, err := buildrepo.NewRedis(&buildrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create build repository: %w", err)
	}
	checkRepo, err := checkrepo.NewRedis(&checkrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create checklist repository: %w", err)
	}
	todoRepo, err := todorepo.NewRedis(&todorepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create todo repository: %w", err)
	}
	wishRepo, err := wishrepo.NewRedis(&wishrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create wishlist repository: %w", err)
	}
	archiveRepo, err := archiverepo.NewRedis(&archiverepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create archive repository: %w", err)
	}

	idGen := idgen.NewUUID("")
	clk := clock.New()

	builds, err := buildsvc.NewOrchestrator(&buildsvc.Config{
		Repository:  buildRepo,
		Catalog:     index,
		IDGenerator: idGen,
		Clock:       clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create builds orchestrator: %w", err)
	}

	checklist, err := checksvc.NewOrchestrator(&checksvc.Config{
		Repository: checkRepo,
		Catalog:    index,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create checklist orchestrator: %w", err)
	}

	todo, err := todosvc.NewOrchestrator(&todosvc.Config{
		Repository:  todoRepo,
		IDGenerator: idGen,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create todo orchestrator: %w", err)
	}

	wishlist, err := wishsvc.NewOrchestrator(&wishsvc.Config{
		Repository:  wishRepo,
		Catalog:     index,
		IDGenerator: idGen,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create wishlist orchestrator: %w", err)
	}

	archive, err := archivesvc.NewOrchestrator(&archivesvc.Config{Repository: archiveRepo})
	if err != nil {
		return nil, fmt.Errorf("failed to create archive orchestrator: %w", err)
	}

	return v1alpha1.NewServer(&v1alpha1.Config{
		Document:  doc,
		Catalog:   index,
		Builds:    builds,
		Checklist: checklist,
		Todo:      todo,
		Wishlist:  wishlist,
		Archive:   archive,
	})
}
