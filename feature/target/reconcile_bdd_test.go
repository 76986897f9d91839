package target_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"factory-planner/core/format"
	"factory-planner/core/rational"
	"factory-planner/core/reconcile"
	"factory-planner/feature/catalog"
	"factory-planner/feature/target"
	"factory-planner/feature/target/models"

	"github.com/cucumber/godog"
	"go.uber.org/zap"
)

func TestReconcileFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeReconcileScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"testdata"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type reconcileContext struct {
	path    string
	unit    string
	session *target.Session
	svc     *target.Service
	view    *models.TargetView
	editErr error
}

func (rc *reconcileContext) theRecipeCatalog(path string) error {
	rc.path = path
	return nil
}

func (rc *reconcileContext) ratesAreShownPer(unit string) error {
	switch unit {
	case "second":
		rc.unit = format.UnitSecond
	case "minute":
		rc.unit = format.UnitMinute
	case "hour":
		rc.unit = format.UnitHour
	default:
		return fmt.Errorf("unknown unit %q", unit)
	}
	return nil
}

func (rc *reconcileContext) aTargetFor(item string) error {
	f, err := format.NewFormatter(format.Config{RateUnit: rc.unit, RatePrecision: 3, CountPrecision: 1, Display: format.DisplayDecimal})
	if err != nil {
		return err
	}
	cache := catalog.NewCache(&catalog.FileSource{Path: rc.path}, time.Minute)
	rc.session = target.NewSession(10)
	rc.svc = target.NewService(rc.session, cache, f, zap.NewNop())
	rc.view, err = rc.svc.Create(context.Background(), item)
	return err
}

func (rc *reconcileContext) iSetTheFieldTo(field, text string) error {
	if field == "rate" {
		return rc.edit(rc.svc.EditRate, text)
	}
	return rc.edit(rc.svc.EditBuildings, text)
}

func (rc *reconcileContext) iSetTheRateToTheRateShownExactly() error {
	if rc.view.RatePerSecond == nil {
		return errors.New("no rate to copy")
	}
	t, err := rc.session.Get(rc.view.ID)
	if err != nil {
		return err
	}
	// Re-enter the exact rate so display rounding cannot hide drift
	if _, err := rc.session.EditRate(t.ID, rc.view.RatePerSecond.String(), rational.One()); err != nil {
		return err
	}
	rc.view, err = rc.svc.View(context.Background(), t.ID)
	return err
}

func (rc *reconcileContext) edit(fn func(context.Context, string, string) (*models.TargetView, error), text string) error {
	view, err := fn(context.Background(), rc.view.ID, text)
	var pe *reconcile.ParseError
	switch {
	case errors.As(err, &pe):
		rc.editErr = err
	case err != nil:
		return err
	default:
		rc.editErr = nil
	}
	rc.view = view
	return nil
}

func (rc *reconcileContext) theEditIsRejected() error {
	if rc.editErr == nil {
		return errors.New("expected the edit to be rejected")
	}
	return nil
}

func (rc *reconcileContext) theTargetIsInMode(mode string) error {
	if got := rc.view.Mode.String(); got != mode {
		return fmt.Errorf("mode is %q, want %q", got, mode)
	}
	return nil
}

func (rc *reconcileContext) theRateShows(want string) error {
	if rc.view.Rate != want {
		return fmt.Errorf("rate shows %q, want %q", rc.view.Rate, want)
	}
	return nil
}

func (rc *reconcileContext) theRateIsEmpty() error {
	if rc.view.Rate != "" || rc.view.RatePerSecond != nil {
		return fmt.Errorf("rate is %q, want empty", rc.view.Rate)
	}
	return nil
}

func (rc *reconcileContext) theBuildingCountShows(want string) error {
	if rc.view.Buildings != want {
		return fmt.Errorf("building count shows %q, want %q", rc.view.Buildings, want)
	}
	return nil
}

func (rc *reconcileContext) theExactBuildingCountIs(want string) error {
	return exactly("building count", rc.view.BuildingsExact, want)
}

func (rc *reconcileContext) theExactRateIsPerSecond(want string) error {
	return exactly("rate", rc.view.RatePerSecond, want)
}

func (rc *reconcileContext) theStoredBuildingCountIsZero() error {
	t, err := rc.session.Get(rc.view.ID)
	if err != nil {
		return err
	}
	if !t.BuildingCount.IsZero() {
		return fmt.Errorf("stored building count is %s", t.BuildingCount)
	}
	return nil
}

func (rc *reconcileContext) theStoredRateIsZero() error {
	t, err := rc.session.Get(rc.view.ID)
	if err != nil {
		return err
	}
	if !t.Rate.IsZero() {
		return fmt.Errorf("stored rate is %s", t.Rate)
	}
	return nil
}

func exactly(name string, got *rational.Rational, want string) error {
	if got == nil {
		return fmt.Errorf("%s is undefined, want %s", name, want)
	}
	if !got.Equal(rational.MustParse(want)) {
		return fmt.Errorf("%s is %s, want %s", name, got, want)
	}
	return nil
}

func initializeReconcileScenario(sc *godog.ScenarioContext) {
	rc := &reconcileContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		*rc = reconcileContext{unit: format.UnitMinute}
		return ctx, nil
	})

	sc.Step(`^the recipe catalog "([^"]*)"$`, rc.theRecipeCatalog)
	sc.Step(`^rates are shown per (second|minute|hour)$`, rc.ratesAreShownPer)
	sc.Step(`^a target for "([^"]*)"$`, rc.aTargetFor)
	sc.Step(`^I set the (rate|building count) to "([^"]*)"$`, rc.iSetTheFieldTo)
	sc.Step(`^I set the rate to the rate shown exactly$`, rc.iSetTheRateToTheRateShownExactly)
	sc.Step(`^the edit is rejected$`, rc.theEditIsRejected)
	sc.Step(`^the target is in "([^"]*)" mode$`, rc.theTargetIsInMode)
	sc.Step(`^the rate shows "([^"]*)"$`, rc.theRateShows)
	sc.Step(`^the rate is empty$`, rc.theRateIsEmpty)
	sc.Step(`^the building count shows "([^"]*)"$`, rc.theBuildingCountShows)
	sc.Step(`^the exact building count is "([^"]*)"$`, rc.theExactBuildingCountIs)
	sc.Step(`^the exact rate is "([^"]*)" per second$`, rc.theExactRateIsPerSecond)
	sc.Step(`^the stored building count is zero$`, rc.theStoredBuildingCountIsZero)
	sc.Step(`^the stored rate is zero$`, rc.theStoredRateIsZero)
}
