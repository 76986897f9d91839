package checks

import (
	"fmt"
	"reflect"
	"strings"

	"factory-planner/core/database"
	"factory-planner/feature/catalog/models"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the catalog tables with their models.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists the differences found for one table.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // ok, missing, error
}

// CheckSchema verifies every catalog table against its GORM model.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models.Tables() {
		tabler, ok := model.(interface{ TableName() string })
		if !ok {
			return nil, fmt.Errorf("model %T does not implement TableName", model)
		}
		table := tabler.TableName()

		actual, err := database.GetTableColumns(db, table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}

		tr := compareTable(reflect.TypeOf(model).Elem(), actual)
		if tr.Status != "ok" {
			report.Matched = false
		}
		report.Tables[table] = tr
	}

	return report, nil
}

func compareTable(model reflect.Type, actual []database.ColumnInfo) TableReport {
	tr := TableReport{MissingColumns: []string{}, TypeMismatches: []string{}, Status: "ok"}
	if len(actual) == 0 {
		tr.Status = "missing"
	}

	byName := make(map[string]database.ColumnInfo, len(actual))
	for _, col := range actual {
		byName[col.Field] = col
	}

	for i := 0; i < model.NumField(); i++ {
		tag := model.Field(i).Tag.Get("gorm")
		name := gormSetting(tag, "column")
		if name == "" {
			continue
		}

		col, ok := byName[name]
		if !ok {
			tr.MissingColumns = append(tr.MissingColumns, name)
			if tr.Status == "ok" {
				tr.Status = "error"
			}
			continue
		}

		// Only columns with an explicit type are compared
		want := strings.ToLower(gormSetting(tag, "type"))
		if want != "" && !strings.Contains(col.Type, want) {
			tr.TypeMismatches = append(tr.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", name, want, col.Type))
			tr.Status = "error"
		}
	}
	return tr
}

func gormSetting(tag, key string) string {
	for _, part := range strings.Split(tag, ";") {
		if v, ok := strings.CutPrefix(part, key+":"); ok {
			return v
		}
	}
	return ""
}
