package catalog

import (
	"context"
	"errors"

	"factory-planner/core/format"
	"factory-planner/core/reconcile"
	"factory-planner/feature/catalog/models"

	"go.uber.org/zap"
)

// Service answers catalog queries for HTTP and CLI callers.
type Service struct {
	cache     *Cache
	formatter *format.Formatter
	logger    *zap.Logger
}

// NewService creates a new catalog service.
func NewService(cache *Cache, formatter *format.Formatter, logger *zap.Logger) *Service {
	return &Service{cache: cache, formatter: formatter, logger: logger}
}

// Catalog returns the current catalog.
func (s *Service) Catalog(ctx context.Context) (*Catalog, error) {
	return s.cache.Get(ctx)
}

// Reload forces the catalog to be read again from its source.
func (s *Service) Reload(ctx context.Context) (int, error) {
	c, err := s.cache.Reload(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Catalog reloaded",
		zap.String("source", s.cache.Source().Name()),
		zap.Int("items", len(c.Items())))
	return len(c.Items()), nil
}

// Items lists all items.
func (s *Service) Items(ctx context.Context) ([]models.ItemView, error) {
	c, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	items := c.Items()
	out := make([]models.ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, toView(it))
	}
	return out, nil
}

// Tiers lists items grouped by tier.
func (s *Service) Tiers(ctx context.Context) ([][]models.ItemView, error) {
	c, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	var out [][]models.ItemView
	for _, tier := range c.Tiers() {
		views := make([]models.ItemView, 0, len(tier))
		for _, it := range tier {
			views = append(views, toView(it))
		}
		out = append(out, views)
	}
	return out, nil
}

// Item returns one item.
func (s *Service) Item(ctx context.Context, key string) (*models.ItemView, error) {
	c, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	it, err := c.Item(key)
	if err != nil {
		return nil, err
	}
	v := toView(it)
	return &v, nil
}

// RecipeFor describes the recipe used to make item and the rate of one
// building. A recipe without a fixed rate reports "N/A".
func (s *Service) RecipeFor(ctx context.Context, item string) (*models.RecipeView, error) {
	c, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	recipe, err := c.RecipeFor(item)
	if err != nil {
		return nil, err
	}

	view := &models.RecipeView{
		Item:      item,
		Recipe:    recipe.Key(),
		BaseRate:  reconcile.NotAvailable,
		RateLabel: s.formatter.RateLabel(),
	}
	if category, ok := recipe.Category(); ok {
		view.Category = category
	}
	if b := c.Building(recipe); b != nil {
		view.Building = b.Key
	}

	base, err := reconcile.NewReconciler(c, s.formatter).BaseRate(item)
	switch {
	case err == nil:
		view.RateDefined = true
		view.BaseRate = s.formatter.Rate(base)
	case errors.Is(err, reconcile.ErrRateUndefined):
	default:
		return nil, err
	}
	return view, nil
}

func toView(it models.Item) models.ItemView {
	return models.ItemView{Key: it.Key, Name: it.Name, Tier: it.Tier, Resource: it.Resource}
}
