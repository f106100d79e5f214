package schema

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// ColumnExpectation describes a column that must exist after a migration.
// DataType, when set, must match information_schema.columns.data_type.
type ColumnExpectation struct {
	Name     string `json:"name" validate:"required"`
	DataType string `json:"data_type,omitempty"`
}

// TableExpectation describes the expected end state of one table.
type TableExpectation struct {
	Name    string              `json:"name" validate:"required"`
	Columns []ColumnExpectation `json:"columns,omitempty" validate:"dive"`
	Indexes []string            `json:"indexes,omitempty"`
	MinRows *int64              `json:"min_rows,omitempty"`
}

// Expectations is the root of a schema expectations file.
type Expectations struct {
	Tables []TableExpectation `json:"tables" validate:"required,min=1,dive"`
}

// Validate checks that the expectations are structurally sound.
func (e *Expectations) Validate() error {
	validate := validator.New()

	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("validation failed for Expectations: %w", err)
	}

	return nil
}

// LoadExpectations reads and validates a JSON expectations file.
func LoadExpectations(path string) (*Expectations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read expectations file: %w", err)
	}

	var expectations Expectations
	if err := json.Unmarshal(data, &expectations); err != nil {
		return nil, fmt.Errorf("failed to parse expectations file: %w", err)
	}

	if err := expectations.Validate(); err != nil {
		return nil, err
	}

	return &expectations, nil
}
