package search

import "recipebook/internal/ui/services/fetch"

// Source provides the fetch state the filter reads from
type Source interface {
	State() fetch.State
}
