package bazi

import (
	"sync"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     string
	}{
		{"known city with country", "Karachi, Pakistan", "+05:00"},
		{"known city alone", "Tokyo", "+09:00"},
		{"case insensitive", "LONDON, UK", "+00:00"},
		{"two-word city", "Hong Kong, China", "+08:00"},
		{"western offset", "New York, USA", "-05:00"},
		{"unknown falls back to default", "Smallville, Kansas", defaultOffset},
		{"surrounding whitespace", "  Dubai , UAE", "+04:00"},
	}

	r := NewOffsetResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.location))
		})
	}
}

func TestResolve_ConcurrentAccess(t *testing.T) {
	r := NewOffsetResolver()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Resolve("Karachi, Pakistan")
			r.Resolve("Beijing, China")
			r.Resolve("Nowhere City")
		}()
	}
	wg.Wait()

	assert.Equal(t, "+05:00", r.Resolve("Karachi, Pakistan"))
	assert.Equal(t, "+08:00", r.Resolve("Beijing, China"))
	assert.Equal(t, defaultOffset, r.Resolve("Nowhere City"))
}
