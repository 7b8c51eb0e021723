package api

import (
	"context"
	"iter"

	"github.com/kazuma-desu/lf/pkg/models"
)

// maxPageSize caps how many records a single page request asks for.
const maxPageSize = 50

// PageFetcher retrieves one page of results. Page numbers are 1-based.
type PageFetcher func(ctx context.Context, page, size int) (*models.Page, error)

// Paginate turns a page-based list endpoint into a lazy, capped sequence of
// records. Pages are fetched on demand; breaking out of the range stops
// further requests. Each request asks for min(limit-yielded, 50) records, so
// the final request never over-fetches. After each page the sequence ends
// when the page was empty, the limit is satisfied, or the server-reported
// total says no more records exist. The total is trusted as reported even
// though the server may only approximate it.
//
// A fetch failure is terminal: it is yielded once and the sequence ends.
// Nothing is retried.
func Paginate(ctx context.Context, limit int, fetch PageFetcher) iter.Seq2[models.Record, error] {
	return func(yield func(models.Record, error) bool) {
		page := 1
		yielded := 0
		for yielded < limit {
			size := limit - yielded
			if size > maxPageSize {
				size = maxPageSize
			}
			p, err := fetch(ctx, page, size)
			if err != nil {
				yield(nil, err)
				return
			}
			if len(p.Items) == 0 {
				return
			}
			for _, item := range p.Items {
				if yielded >= limit {
					return
				}
				if !yield(item, nil) {
					return
				}
				yielded++
			}
			if yielded >= p.TotalItems {
				return
			}
			page++
		}
	}
}

// Collect materializes a paginated sequence, stopping at the first error.
// No partial result is returned on failure.
func Collect(seq iter.Seq2[models.Record, error]) ([]models.Record, error) {
	var records []models.Record
	for rec, err := range seq {
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
