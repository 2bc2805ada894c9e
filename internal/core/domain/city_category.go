package domain

import (
	"fmt"
	"strings"
)

// CityCategory is the destination cost tier. It drives which DA/incidental
// rate row and which entitlement row applies.
type CityCategory string

const (
	CategoryA CityCategory = "A" // metro / high cost
	CategoryB CityCategory = "B" // mid tier
	CategoryC CityCategory = "C" // everything else
)

// ParseCityCategory resolves a free-form category string (as it arrives from
// the request layer) into the canonical enum. Matching is case-insensitive.
// All internal code takes the enum, never a raw string.
func ParseCityCategory(s string) (CityCategory, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return CategoryA, nil
	case "B":
		return CategoryB, nil
	case "C":
		return CategoryC, nil
	default:
		return "", fmt.Errorf("unknown city category %q", s)
	}
}

func (c CityCategory) String() string {
	return string(c)
}
