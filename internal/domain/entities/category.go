package entities

import (
	"fmt"
	"math"
)

// Color is an RGB color with components in the 0..1 range.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// Hex returns the color in #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	v = math.Max(0, math.Min(1, v))
	return int(math.Round(v * 255))
}

// Category is a thematic grouping of names (e.g. "Mercy", "Majesty").
type Category struct {
	ID          string   // stable opaque identity
	Name        string   // display name
	Color       Color    // display color
	Names       []string // member transliterations in declared order
	Description string
}

// Contains reports whether the category lists the given name.
func (c Category) Contains(name string) bool {
	for _, n := range c.Names {
		if n == name {
			return true
		}
	}
	return false
}
