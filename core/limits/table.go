package limits

// DefaultKey is the per-category entry consulted when a carrier matches
// nothing else in the sub-table. Every carrier sub-table carries one.
const DefaultKey = "default"

// Well-known system limit names.
const (
	TotalRenewableCapacity = "total_renewable_capacity"
	TotalStoragePower      = "total_storage_power"
	TotalStorageEnergy     = "total_storage_energy"
	DefaultLifetime        = "default_lifetime"
	MaxOperationalHours    = "max_operational_hours"
)

// Table holds the technical capacity limits for every component category.
// It is built once, either from defaults or from a configuration document,
// and treated as read-only afterwards. Power values are MW, line ratings
// MVA, energy values MWh.
type Table struct {
	// Generators maps generation carrier to maximum unit capacity.
	Generators map[string]float64
	// StoragePower maps storage carrier to maximum power rating.
	StoragePower map[string]float64
	// StorageEnergy maps storage carrier to maximum energy capacity.
	StorageEnergy map[string]float64
	// LineCap and LineExtension bound AC line ratings and reinforcement.
	LineCap       float64
	LineExtension float64
	// LinkCap and LinkExtension bound HVDC link ratings and reinforcement.
	LinkCap       float64
	LinkExtension float64
	// System holds aggregate ceilings keyed by limit name.
	System map[string]float64
}

// Defaults returns the built-in technical limits used when no configuration
// document is supplied. Values reflect typical unit sizes of present-day
// technology (e.g. the largest EPR reactor block at 1650 MW).
func Defaults() *Table {
	return &Table{
		Generators: map[string]float64{
			DefaultKey:      5000,
			"nuclear":       1650,
			"coal":          1100,
			"lignite":       1100,
			"CCGT":          850,
			"OCGT":          400,
			"onwind":        500,
			"offwind-ac":    1200,
			"offwind-dc":    1400,
			"offwind-float": 500,
			"solar":         800,
			"solar-hsat":    800,
			"solar rooftop": 100,
			"ror":           400,
			"hydro":         1800,
			"biomass":       300,
			"geothermal":    100,
		},
		StoragePower: map[string]float64{
			DefaultKey:                 2000,
			"battery":                  2000,
			"H2":                       500,
			"PHS":                      1800,
			"Compressed-Air-Adiabatic": 500,
			"Iron-Air":                 200,
			"Li-Ion":                   2000,
			"Vanadium-Redox-Flow":      100,
		},
		StorageEnergy: map[string]float64{
			DefaultKey:                 50000,
			"battery":                  10000,
			"H2":                       2000000, // 2 TWh for seasonal storage
			"PHS":                      25000,
			"Compressed-Air-Adiabatic": 12000,
			"Iron-Air":                 2000,
			"Vanadium-Redox-Flow":      1000,
		},
		LineCap:       4000,
		LineExtension: 4000,
		LinkCap:       6000,
		LinkExtension: 6000,
		System: map[string]float64{
			TotalRenewableCapacity: 200000,
			TotalStoragePower:      100000,
			TotalStorageEnergy:     2000000,
			DefaultLifetime:        40,
			MaxOperationalHours:    1e6,
		},
	}
}

// carriers returns the carrier sub-table for cat, or nil when the category
// has no per-carrier entries (lines, links, system).
func (t *Table) carriers(cat Category) map[string]float64 {
	switch cat {
	case Generator:
		return t.Generators
	case StoragePower:
		return t.StoragePower
	case StorageEnergy:
		return t.StorageEnergy
	default:
		return nil
	}
}
