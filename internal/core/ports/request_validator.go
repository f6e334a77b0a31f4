package ports

import "ordering/internal/pkg/results"

// RequestValidator checks an inbound request struct against its declared rules
// and reports every violation, not just the first.
type RequestValidator interface {
	// ValidateStruct returns one ValidationError per violated rule with a
	// user-facing message and the offending field's wire name. An empty slice
	// means the request is valid.
	ValidateStruct(request any) []results.ValidationError
}
