package usecase

import (
	"context"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"golang.org/x/sync/errgroup"
)

// SearchPropertiesUseCase is the listing query engine: it normalizes the
// raw parameter bag, builds the filter and sort specs and executes a
// counted, paginated fetch against the property store.
type SearchPropertiesUseCase struct {
	storage port.PropertyStoragePort
}

func NewSearchPropertiesUseCase(storage port.PropertyStoragePort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{storage: storage}
}

func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, raw map[string]string, identity *domain.Identity) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	query := domain.NormalizeListingQuery(raw, identity)
	filter := query.FilterSpec()
	sort := domain.SortSpecForKey(query.SortKey)

	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchProperties",
		"page":     query.Page,
		"limit":    query.Limit,
		"sort_key": query.SortKey,
	})
	ucLogger.Debug("Use case started", nil)

	// Page fetch and total count operate on the same filter snapshot and
	// do not depend on each other, so they run concurrently. If either
	// fails the whole invocation fails.
	var (
		items []domain.PropertyCard
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = uc.storage.FindWithFilter(gctx, filter, sort, query.Limit, query.Offset())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = uc.storage.CountWithFilter(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	if items == nil {
		items = []domain.PropertyCard{}
	}

	result := &domain.SearchResult{
		Items:      items,
		Pagination: domain.NewPagination(query.Page, query.Limit, total),
		Filters: domain.AppliedFilters{
			Applied:    filter.Applied(),
			Normalized: filter.Echo(),
		},
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   total,
		"items_on_page": len(result.Items),
	})
	return result, nil
}
