package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelections_Toggle(t *testing.T) {
	t.Run("inserts when absent", func(t *testing.T) {
		var s Selections
		s.Toggle(CategorySecurity, "No secrets in frontend")

		assert.Equal(t, []string{"No secrets in frontend"}, s.Security)
	})

	t.Run("removes when present, preserving order", func(t *testing.T) {
		var s Selections
		s.Toggle(CategoryStandards, "a")
		s.Toggle(CategoryStandards, "b")
		s.Toggle(CategoryStandards, "c")

		s.Toggle(CategoryStandards, "b")

		assert.Equal(t, []string{"a", "c"}, s.Standards)
	})

	t.Run("is its own inverse", func(t *testing.T) {
		var s Selections
		s.Toggle(CategoryEthics, "x")
		s.Toggle(CategoryEthics, "y")
		before := append([]string(nil), s.Ethics...)

		s.Toggle(CategoryEthics, "z")
		s.Toggle(CategoryEthics, "z")

		assert.Equal(t, before, s.Ethics)
	})

	t.Run("presence check is trim and case insensitive", func(t *testing.T) {
		var s Selections
		s.Toggle(CategorySecurity, "No PII")
		s.Toggle(CategorySecurity, "  no pii ")

		assert.Empty(t, s.Security)
	})

	t.Run("never stores two normalized-equal entries", func(t *testing.T) {
		var s Selections
		s.Toggle(CategoryProduct, "Safe defaults")
		s.Toggle(CategoryProduct, "SAFE DEFAULTS") // removes
		s.Toggle(CategoryProduct, "safe defaults") // re-adds

		assert.Len(t, s.Product, 1)
	})

	t.Run("unrecognized category is a silent no-op", func(t *testing.T) {
		var s Selections
		s.Toggle(Category("legal"), "value")

		assert.Equal(t, 0, s.Count())
	})
}

func TestSelections_Complete(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Selections)
		want bool
	}{
		{"empty", func(*Selections) {}, false},
		{"one category selection", func(s *Selections) {
			s.Toggle(CategorySecurity, "No secrets in frontend")
		}, true},
		{"other below minimum", func(s *Selections) {
			s.SetOther("short")
		}, false},
		{"other at minimum", func(s *Selections) {
			s.SetOther("take turns!")
		}, true},
		{"other padded with whitespace only", func(s *Selections) {
			s.SetOther("  short  \n\n\t   ")
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Selections
			tt.mut(&s)
			assert.Equal(t, tt.want, s.Complete())
		})
	}
}

func TestSelections_SetOther(t *testing.T) {
	// Wholesale replace with no write-time normalization.
	var s Selections
	s.SetOther("  keep everything local  ")

	assert.Equal(t, "  keep everything local  ", s.Other)
}
