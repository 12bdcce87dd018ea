package bazi

import (
	"strings"
	"sync"
)

// defaultOffset is used when the location is not in the lookup table.
// A known approximation, not a geocoding call.
const defaultOffset = "+05:00"

// cityOffsets maps lowercase city names to their UTC offsets. The
// chart calculation needs the birth instant in local time with an
// explicit offset; this table covers the cities the service is
// actually used from.
var cityOffsets = map[string]string{
	"karachi":   "+05:00",
	"lahore":    "+05:00",
	"islamabad": "+05:00",
	"beijing":   "+08:00",
	"shanghai":  "+08:00",
	"hong kong": "+08:00",
	"tokyo":     "+09:00",
	"new york":  "-05:00",
	"london":    "+00:00",
	"dubai":     "+04:00",
}

// OffsetResolver resolves a free-text location to a UTC offset. The
// cache of normalized lookups is shared across concurrent request
// chains, so access is mutex-guarded.
type OffsetResolver struct {
	mu    sync.RWMutex
	cache map[string]string
}

func NewOffsetResolver() *OffsetResolver {
	return &OffsetResolver{cache: make(map[string]string)}
}

func normalizeCity(location string) string {
	city := location
	if idx := strings.Index(city, ","); idx >= 0 {
		city = city[:idx]
	}
	return strings.ToLower(strings.TrimSpace(city))
}

func (r *OffsetResolver) Resolve(location string) string {
	city := normalizeCity(location)

	r.mu.RLock()
	offset, ok := r.cache[city]
	r.mu.RUnlock()
	if ok {
		return offset
	}

	offset, ok = cityOffsets[city]
	if !ok {
		offset = defaultOffset
	}

	r.mu.Lock()
	r.cache[city] = offset
	r.mu.Unlock()

	return offset
}
