package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	buildsvc "github.com/wftrack/loadout-api/internal/orchestrators/builds"
	"github.com/wftrack/loadout-api/internal/pkg/clock"
	"github.com/wftrack/loadout-api/internal/pkg/idgen"
	"github.com/wftrack/loadout-api/internal/redis"
	buildrepo "github.com/wftrack/loadout-api/internal/repositories/builds"
)

var importFile string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import externally exported builds",
	Long:  `Import a build export from a file or stdin, normalize it against the catalog, and append the results to the persisted build list.`,
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&redisAddress, "redis-address", "localhost:6379", "Redis address")
	importCmd.Flags().StringVar(&catalogURL, "catalog-url", "", "URL of the catalog document")
	importCmd.Flags().StringVar(&catalogFile, "catalog-file", "", "path to a local catalog document")
	importCmd.Flags().StringVarP(&importFile, "file", "f", "-", "payload file, - for stdin")
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	payload, err := readPayload()
	if err != nil {
		return err
	}

	_, index, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	client, err := redis.NewClient(redisAddress, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() { _ = client.Close() }()

	repo, err := buildrepo.NewRedis(&buildrepo.RedisConfig{Client: client})
	if err != nil {
		return fmt.Errorf("failed to create build repository: %w", err)
	}

	builds, err := buildsvc.NewOrchestrator(&buildsvc.Config{
		Repository:  repo,
		Catalog:     index,
		IDGenerator: idgen.NewUUID(""),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create builds orchestrator: %w", err)
	}

	out, err := builds.ImportBuilds(ctx, &buildsvc.ImportBuildsInput{Payload: string(payload)})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d build(s)\n", len(out.Builds))
	for _, b := range out.Builds {
		fmt.Printf("  %s (%s)\n", b.Item, b.Category)
	}
	return nil
}

func readPayload() ([]byte, error) {
	if importFile == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(importFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload file: %w", err)
	}
	return data, nil
}
