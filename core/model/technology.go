package model

// GeneratorTech describes a candidate generation technology for capacity
// expansion.
type GeneratorTech struct {
	// Carrier is the technology name, e.g. "solar" or "CCGT".
	Carrier string
	// CapitalCost is the annualized build cost per MW.
	CapitalCost float64
	// Availability is the average fraction of nameplate capacity that
	// contributes to meeting demand (capacity factor).
	Availability float64
}

// StorageTech describes a candidate storage technology. Charger,
// discharger and store are sized independently, subject to the policy.
type StorageTech struct {
	Carrier string
	// PowerCost is the annualized cost per MW of charge power.
	PowerCost float64
	// EnergyCost is the annualized cost per MWh of energy capacity.
	EnergyCost float64
	// Contribution is the fraction of discharge power counted towards
	// firm demand coverage.
	Contribution float64
	Policy       StoragePolicy
}
