package api

import (
	"context"
	"sync"

	"github.com/kazuma-desu/lf/pkg/logger"
	"github.com/kazuma-desu/lf/pkg/models"
)

// FetchFunc retrieves the detail record for one ID.
type FetchFunc func(ctx context.Context, id string) (models.Record, error)

// FetchAll fetches the detail record for every ID using a fixed number of
// workers. Each fetch is independent and read-only; failed fetches are logged
// and excluded from the result rather than aborting the batch. Result order
// follows completion, not input order.
func FetchAll(ctx context.Context, ids []string, workers int, fetch FetchFunc) []models.Record {
	if workers < 1 {
		workers = 1
	}
	if workers > len(ids) {
		workers = len(ids)
	}

	jobs := make(chan string)
	results := make(chan models.Record)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				rec, err := fetch(ctx, id)
				if err != nil {
					logger.Log.Warnw("Fetch failed, skipping record", "id", id, "error", err)
					continue
				}
				results <- rec
			}
		}()
	}

	go func() {
		for _, id := range ids {
			jobs <- id
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	records := make([]models.Record, 0, len(ids))
	for rec := range results {
		records = append(records, rec)
	}
	return records
}
