package validator

import (
	"strings"

	"garagelog/internal/models"
)

// ResolveVehicle maps a human-readable vehicle name to its identifier using
// a case-insensitive exact match against the roster. When two vehicles share
// a display name the first roster entry wins; ambiguity is not reported.
func ResolveVehicle(name string, roster []models.Vehicle) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, v := range roster {
		if strings.ToLower(strings.TrimSpace(v.Name)) == needle {
			return v.ID, true
		}
	}
	return "", false
}
