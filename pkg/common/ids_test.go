package common

import (
	"regexp"
	"testing"
)

func TestNewID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^prod_\d+_[0-9a-z]{7}$`)
	id := NewID("prod")
	if !pattern.MatchString(id) {
		t.Errorf("id %q does not match prefix_<millis>_<7 base36>", id)
	}
}

func TestNewID_PracticallyUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID("img")
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
