package models

import "fmt"

// ItemName is a value object for an item's short label. The only structural
// rule is that it must not be empty; everything else the household types is
// accepted as-is.
type ItemName string

// NewItemName constructs a valid ItemName or returns an error if the label is empty.
func NewItemName(s string) (ItemName, error) {
	if len(s) == 0 {
		return "", fmt.Errorf("item name must not be empty")
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
