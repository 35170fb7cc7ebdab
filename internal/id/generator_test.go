package id

import (
	"testing"
	"time"
)

func TestGenerate_DistinctAcrossTicks(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		id := Generate()
		if id == "" {
			t.Fatal("Generated empty ID")
		}
		if seen[id] {
			t.Fatalf("Duplicate ID %q", id)
		}
		seen[id] = true
		time.Sleep(20 * time.Millisecond)
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default source is nil")
	}
	if Default().Generate() == "" {
		t.Error("Default source generated empty ID")
	}
}
