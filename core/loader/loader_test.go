package loader_test

import (
	"errors"
	"testing"

	"factory-planner/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	on := &stubFeature{name: "catalog", enabled: true}
	off := &stubFeature{name: "integrity"}

	m := loader.NewManager(zap.NewNop())
	m.Register(on)
	m.Register(off)
	assert.Len(t, m.Features(), 2)

	assert.NoError(t, m.LoadAll(fiber.New()))
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	bad := &stubFeature{name: "target", enabled: true, err: errors.New("boom")}
	next := &stubFeature{name: "catalog", enabled: true}

	m := loader.NewManager(zap.NewNop())
	m.Register(bad)
	m.Register(next)

	err := m.LoadAll(fiber.New())
	assert.EqualError(t, err, "failed to load feature target: boom")
	assert.False(t, next.loaded)
}
