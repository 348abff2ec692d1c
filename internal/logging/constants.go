package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps log output easy to filter when reviewing an import.
const (
	FieldFile     = "file_path"
	FieldKind     = "entry_kind"
	FieldRow      = "row"
	FieldVehicle  = "vehicle"
	FieldCount    = "count"
	FieldErrors   = "errors"
	FieldWarnings = "warnings"
	FieldError    = "error"
	FieldPercent  = "percent"
)
