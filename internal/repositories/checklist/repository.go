// Package checklist provides the interface for per-item checklist
// state persistence. Unlike the list-valued stores, each toggle or
// field value lives under its own storage key.
package checklist

import "context"

// Repository persists per-item checkbox state and per-field
// select/input values
type Repository interface {
	// GetChecked reads the checkbox state for an item
	GetChecked(ctx context.Context, input GetCheckedInput) (*GetCheckedOutput, error)

	// SetChecked writes the checkbox state for an item
	SetChecked(ctx context.Context, input SetCheckedInput) (*SetCheckedOutput, error)

	// BulkCheck marks many items checked in one round trip
	BulkCheck(ctx context.Context, input BulkCheckInput) (*BulkCheckOutput, error)

	// GetValue reads a per-field value, falling back to a default
	GetValue(ctx context.Context, input GetValueInput) (*GetValueOutput, error)

	// SetValue writes a per-field value
	SetValue(ctx context.Context, input SetValueInput) (*SetValueOutput, error)
}

// GetCheckedInput defines the input for reading checkbox state
type GetCheckedInput struct {
	ItemID string
}

// GetCheckedOutput defines the output for reading checkbox state
type GetCheckedOutput struct {
	Checked bool
}

// SetCheckedInput defines the input for writing checkbox state
type SetCheckedInput struct {
	ItemID  string
	Checked bool
}

// SetCheckedOutput defines the output for writing checkbox state
type SetCheckedOutput struct{}

// BulkCheckInput defines the input for marking many items checked
type BulkCheckInput struct {
	ItemIDs []string
}

// BulkCheckOutput defines the output for marking many items checked
type BulkCheckOutput struct {
	Updated int
}

// GetValueInput defines the input for reading a field value
type GetValueInput struct {
	ItemID   string
	FieldKey string
	Default  string
}

// GetValueOutput defines the output for reading a field value
type GetValueOutput struct {
	Value string
}

// SetValueInput defines the input for writing a field value
type SetValueInput struct {
	ItemID   string
	FieldKey string
	Value    string
}

// SetValueOutput defines the output for writing a field value
type SetValueOutput struct{}
