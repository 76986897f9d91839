package checks

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"factory-planner/core/rational"
	"factory-planner/core/storage"
	"factory-planner/feature/catalog"
	"factory-planner/feature/catalog/models"

	"github.com/google/go-cmp/cmp"
	"gorm.io/gorm"
)

// Entry kinds compared by CompareCatalogs.
const (
	KindItem     = "item"
	KindBuilding = "building"
	KindRecipe   = "recipe"
)

// DriftResult is one catalog entry and where it was found.
type DriftResult struct {
	Kind       string   `json:"kind"`
	Key        string   `json:"key"`
	InData     bool     `json:"in_data"`
	InDatabase bool     `json:"in_database"`
	Mismatch   []string `json:"mismatch,omitempty"`
}

// DriftSummary counts the differences in a DriftReport.
type DriftSummary struct {
	Total           int `json:"total"`
	MissingDatabase int `json:"missing_database"`
	MissingData     int `json:"missing_data"`
	Mismatches      int `json:"mismatches"`
}

// DriftReport compares the bucket data file with the database mirror.
type DriftReport struct {
	InSync  bool          `json:"in_sync"`
	Summary DriftSummary  `json:"summary"`
	Results []DriftResult `json:"results"`
	// Synced is set when the mirror was rewritten from the data file.
	Synced bool `json:"synced"`
}

var rationalEqual = cmp.Comparer(func(a, b rational.Rational) bool { return a.Equal(b) })

// CompareCatalogs diffs data against mirror. Only entries that differ are
// listed in Results, sorted by kind then key.
func CompareCatalogs(data, mirror *models.Data) *DriftReport {
	report := &DriftReport{Results: []DriftResult{}}

	diff(report, KindItem, index(data.Items, itemKey), index(mirror.Items, itemKey), compareItem)
	diff(report, KindBuilding, index(data.Buildings, buildingKey), index(mirror.Buildings, buildingKey), compareBuilding)
	diff(report, KindRecipe, index(data.Recipes, recipeKey), index(mirror.Recipes, recipeKey), compareRecipe)

	slices.SortFunc(report.Results, func(a, b DriftResult) int {
		if a.Kind != b.Kind {
			return kindOrder(a.Kind) - kindOrder(b.Kind)
		}
		if a.Key < b.Key {
			return -1
		}
		if a.Key > b.Key {
			return 1
		}
		return 0
	})

	report.InSync = len(report.Results) == 0
	return report
}

// CheckDrift loads both catalogs and compares them. When sync is set and
// they differ, the mirror is replaced with the data file.
func CheckDrift(ctx context.Context, client storage.Client, bucket, object string, db *gorm.DB, sync bool) (*DriftReport, error) {
	if db == nil {
		return nil, errors.New("database connection is nil")
	}

	fromData, err := (&catalog.StorageSource{Client: client, Bucket: bucket, Object: object}).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load data file: %w", err)
	}

	store := catalog.NewStore(db)
	fromDB, err := store.LoadData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load database catalog: %w", err)
	}

	report := CompareCatalogs(fromData.Data(), fromDB)
	if sync && !report.InSync {
		if err := store.Save(ctx, fromData); err != nil {
			return report, err
		}
		report.Synced = true
	}
	return report, nil
}

func diff[T any](report *DriftReport, kind string, data, mirror map[string]T, compare func(a, b T) []string) {
	union := make(map[string]struct{}, len(data)+len(mirror))
	for k := range data {
		union[k] = struct{}{}
	}
	for k := range mirror {
		union[k] = struct{}{}
	}

	for key := range union {
		report.Summary.Total++
		a, inData := data[key]
		b, inDB := mirror[key]

		result := DriftResult{Kind: kind, Key: key, InData: inData, InDatabase: inDB}
		switch {
		case !inDB:
			report.Summary.MissingDatabase++
		case !inData:
			report.Summary.MissingData++
		default:
			result.Mismatch = compare(a, b)
			if len(result.Mismatch) == 0 {
				continue
			}
			report.Summary.Mismatches++
		}
		report.Results = append(report.Results, result)
	}
}

func index[T any](rows []T, key func(T) string) map[string]T {
	m := make(map[string]T, len(rows))
	for _, r := range rows {
		m[key(r)] = r
	}
	return m
}

func itemKey(i models.Item) string         { return i.Key }
func buildingKey(b models.Building) string { return b.Key }
func recipeKey(r models.Recipe) string     { return r.Key }

func compareItem(a, b models.Item) []string {
	var m []string
	if a.Name != b.Name {
		m = append(m, "name")
	}
	if a.Tier != b.Tier {
		m = append(m, "tier")
	}
	if a.Resource != b.Resource {
		m = append(m, "resource")
	}
	return m
}

func compareBuilding(a, b models.Building) []string {
	var m []string
	if a.Name != b.Name {
		m = append(m, "name")
	}
	if a.Category != b.Category {
		m = append(m, "category")
	}
	if !a.Speed.Equal(b.Speed) {
		m = append(m, "speed")
	}
	if !a.Power.Equal(b.Power) {
		m = append(m, "power")
	}
	return m
}

func compareRecipe(a, b models.Recipe) []string {
	var m []string
	if a.Name != b.Name {
		m = append(m, "name")
	}
	if !cmp.Equal(a.Category, b.Category) {
		m = append(m, "category")
	}
	if !a.Time.Equal(b.Time) {
		m = append(m, "time")
	}
	if !sameLines(a.Ingredients, b.Ingredients) {
		m = append(m, "ingredients")
	}
	if !sameLines(a.Products, b.Products) {
		m = append(m, "products")
	}
	return m
}

// sameLines treats nil and empty as equal.
func sameLines(a, b []models.Line) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return cmp.Equal(a, b, rationalEqual)
}

func kindOrder(kind string) int {
	switch kind {
	case KindItem:
		return 0
	case KindBuilding:
		return 1
	default:
		return 2
	}
}
