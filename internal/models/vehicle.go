package models

// Vehicle is the roster record entries are logged against. Identity is by
// ID; Name is the human-readable key used for CSV round-tripping.
type Vehicle struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
