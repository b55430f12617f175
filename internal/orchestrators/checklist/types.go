package checklist

// GetCheckedInput defines the input for reading an item's checkbox state
type GetCheckedInput struct {
	ItemID string
}

// GetCheckedOutput defines the output for reading an item's checkbox state
type GetCheckedOutput struct {
	Checked bool
}

// SetCheckedInput defines the input for toggling an item's checkbox state
type SetCheckedInput struct {
	ItemID  string
	Checked bool
}

// SetCheckedOutput defines the output for toggling an item's checkbox state
type SetCheckedOutput struct{}

// GetValueInput defines the input for reading an item field value
type GetValueInput struct {
	ItemID   string
	FieldKey string
	Default  string
}

// GetValueOutput defines the output for reading an item field value
type GetValueOutput struct {
	Value string
}

// SetValueInput defines the input for writing an item field value
type SetValueInput struct {
	ItemID   string
	FieldKey string
	Value    string
}

// SetValueOutput defines the output for writing an item field value
type SetValueOutput struct{}

// ImportCheckedInput defines the input for the bulk check-by-names
// import. Payload is newline-separated display names or ids.
type ImportCheckedInput struct {
	Payload string
}

// ImportCheckedOutput reports what the bulk import resolved. Matched
// items are checked; unmatched lines come back verbatim so the caller
// can show what was skipped.
type ImportCheckedOutput struct {
	Checked   []string
	Unmatched []string
}
