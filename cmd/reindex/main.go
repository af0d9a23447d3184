// Command reindex runs one Google Indexing API sweep over every public page
// and exits. Useful from cron or a deploy hook, without going through the
// HTTP trigger.
package main

import (
	"context"
	"log"

	"revive_physio_go/config"
	"revive_physio_go/services"
)

func main() {
	cfg := config.Load()
	store := services.NewContentStore(cfg.ContentDir, cfg.RoutesDir)
	indexer := services.NewIndexer(cfg, store)

	result, err := indexer.IndexAllPages(context.Background())
	if err != nil {
		log.Fatalf("Indexing sweep failed to start: %v", err)
	}

	log.Printf("Sweep %s: %d attempted, %d succeeded, %d failed",
		result.RunID, result.Attempted, result.Succeeded, result.Failed)
}
