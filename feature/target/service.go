package target

import (
	"context"
	"errors"
	"fmt"

	"factory-planner/core/format"
	"factory-planner/core/reconcile"
	"factory-planner/feature/catalog"
	"factory-planner/feature/target/models"

	"go.uber.org/zap"
)

// Service reconciles session targets against the current catalog.
type Service struct {
	session   *Session
	cache     *catalog.Cache
	formatter *format.Formatter
	logger    *zap.Logger
}

// NewService creates a new target service.
func NewService(session *Session, cache *catalog.Cache, formatter *format.Formatter, logger *zap.Logger) *Service {
	return &Service{session: session, cache: cache, formatter: formatter, logger: logger}
}

// Create adds a target. An empty item creates an unresolved target.
func (s *Service) Create(ctx context.Context, item string) (*models.TargetView, error) {
	c, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkItem(c, item); err != nil {
		return nil, err
	}
	t, err := s.session.Add(item)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Target created", zap.String("id", t.ID), zap.String("item", item))
	return s.view(c, t)
}

// View returns one target with derived values.
func (s *Service) View(ctx context.Context, id string) (*models.TargetView, error) {
	t, err := s.session.Get(id)
	if err != nil {
		return nil, err
	}
	c, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return s.view(c, t)
}

// List returns every target with derived values.
func (s *Service) List(ctx context.Context) ([]models.TargetView, error) {
	c, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	targets := s.session.List()
	out := make([]models.TargetView, 0, len(targets))
	for _, t := range targets {
		v, err := s.view(c, t)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// SelectItem points the target at another item.
func (s *Service) SelectItem(ctx context.Context, id, item string) (*models.TargetView, error) {
	c, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.session.Get(id); err != nil {
		return nil, err
	}
	if err := checkItem(c, item); err != nil {
		return nil, err
	}
	t, err := s.session.SelectItem(id, item)
	if err != nil {
		return nil, err
	}
	return s.view(c, t)
}

// EditBuildings switches the target to building mode with text as the
// count. On a *reconcile.ParseError the unchanged view is returned with it.
func (s *Service) EditBuildings(ctx context.Context, id, text string) (*models.TargetView, error) {
	t, editErr := s.session.EditBuildings(id, text)
	return s.afterEdit(ctx, t, editErr)
}

// EditRate switches the target to rate mode with text in display units.
func (s *Service) EditRate(ctx context.Context, id, text string) (*models.TargetView, error) {
	t, editErr := s.session.EditRate(id, text, s.formatter.RateFactor())
	return s.afterEdit(ctx, t, editErr)
}

// Remove deletes the target.
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.session.Remove(id)
}

func (s *Service) afterEdit(ctx context.Context, t reconcile.Target, editErr error) (*models.TargetView, error) {
	if errors.Is(editErr, ErrTargetNotFound) {
		return nil, editErr
	}
	c, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.view(c, t)
	if err != nil {
		return nil, err
	}
	return v, editErr
}

func (s *Service) view(c *catalog.Catalog, t reconcile.Target) (*models.TargetView, error) {
	v := &models.TargetView{
		ID:        t.ID,
		Index:     t.Index,
		Item:      t.SelectedItem,
		Mode:      t.Mode,
		RateLabel: s.formatter.RateLabel(),
		Status:    models.StatusOK,
	}
	if it, err := c.Item(t.SelectedItem); err == nil {
		v.ItemName = it.Name
	}

	rec, err := reconcile.NewReconciler(c, s.formatter).Recompute(&t)
	var nre *reconcile.NoRecipeError
	switch {
	case errors.As(err, &nre):
		v.Status = models.StatusUnresolved
		v.Error = nre.Error()
		return v, nil
	case err != nil:
		return nil, fmt.Errorf("failed to reconcile target %s: %w", t.ID, err)
	}

	v.Buildings = rec.BuildingsDisplay
	v.Rate = rec.RateDisplay
	v.RateDefined = rec.RateDefined
	v.BuildingsExact = rec.Buildings
	v.RatePerSecond = rec.Rate
	return v, nil
}

func checkItem(c *catalog.Catalog, item string) error {
	if item == "" || c.HasItem(item) {
		return nil
	}
	return fmt.Errorf("%w: %s", catalog.ErrUnknownItem, item)
}
