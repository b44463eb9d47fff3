package useradmin

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/ordering"
)

// sortablePaths lists the order_by fields the users table accepts.
var sortablePaths = []string{"id", "email", "display_name", "role", "created_at", "updated_at"}

// defaultSort keeps newest accounts on top when no order is requested.
var defaultSort = SortState{Field: "created_at", Desc: true}

// SortState captures the single-column sort applied to the users table.
type SortState struct {
	Field string
	Desc  bool
}

// ParseSortState interprets an AIP-132 order_by expression limited to one
// sortable column. An empty expression yields the default sort.
func ParseSortState(raw string) (SortState, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultSort, nil
	}

	var orderBy ordering.OrderBy
	if err := orderBy.UnmarshalString(raw); err != nil {
		return SortState{}, fmt.Errorf("parse order_by: %w", err)
	}
	if err := orderBy.ValidateForPaths(sortablePaths...); err != nil {
		return SortState{}, fmt.Errorf("validate order_by: %w", err)
	}
	if len(orderBy.Fields) != 1 {
		return SortState{}, fmt.Errorf("order_by must name exactly one field, got %d", len(orderBy.Fields))
	}

	field := orderBy.Fields[0]
	return SortState{Field: field.Path, Desc: field.Desc}, nil
}

// OrderBy renders the state back into an order_by expression.
func (s SortState) OrderBy() string {
	if s.Field == "" {
		return ""
	}
	if s.Desc {
		return s.Field + " desc"
	}
	return s.Field
}

// NextFor returns the sort produced by clicking the header of field.
// A new column starts ascending; the current column flips direction.
func (s SortState) NextFor(field string) SortState {
	if s.Field != field {
		return SortState{Field: field}
	}
	return SortState{Field: field, Desc: !s.Desc}
}
