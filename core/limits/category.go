package limits

import "fmt"

// Category identifies which sub-table of the limits table a bound is
// resolved against.
type Category int

const (
	// Generator covers dispatchable and renewable generation capacity (MW).
	Generator Category = iota
	// StoragePower covers charge/discharge power ratings of storage units (MW).
	StoragePower
	// StorageEnergy covers energy capacity of storage units (MWh).
	StorageEnergy
	// Line covers AC transmission line apparent power (MVA).
	Line
	// Link covers HVDC and conversion link power (MW).
	Link
	// System covers aggregate system-wide ceilings.
	System
)

var categoryNames = map[Category]string{
	Generator:     "generator",
	StoragePower:  "storage-power",
	StorageEnergy: "storage-energy",
	Line:          "line",
	Link:          "link",
	System:        "system",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory converts a configuration string into a Category.
func ParseCategory(s string) (Category, error) {
	for c, n := range categoryNames {
		if n == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown component category %q", s)
}
