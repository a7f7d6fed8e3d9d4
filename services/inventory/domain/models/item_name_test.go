package models

import "testing"

func TestNewItemName(t *testing.T) {
	t.Run("empty name rejected", func(t *testing.T) {
		if _, err := NewItemName(""); err == nil {
			t.Fatal("expected error for empty name")
		}
	})

	t.Run("anything non-empty accepted", func(t *testing.T) {
		for _, s := range []string{"Dish soap", "柔軟剤", " ", "a"} {
			name, err := NewItemName(s)
			if err != nil {
				t.Fatalf("NewItemName(%q) returned error: %v", s, err)
			}
			if name.String() != s {
				t.Fatalf("NewItemName(%q) = %q", s, name)
			}
		}
	})
}
