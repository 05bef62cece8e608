package config

import (
	"os"

	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/maelcorre/gridcap/core/limits"
	"github.com/maelcorre/gridcap/core/logger"
)

// limitsDocument mirrors the on-disk shape of a technical limits file:
//
//	generators:
//	  p_nom_max: {solar: 800, default: 5000}
//	storage:
//	  p_nom_max: {battery: 2000, default: 2000}
//	  e_nom_max: {battery: 10000, default: 50000}
//	lines: {s_nom_max: 4000, max_extension: 4000}
//	links: {p_nom_max: 6000, max_extension: 6000}
//	system: {total_storage_power: 100000}
type limitsDocument struct {
	Generators struct {
		PNomMax map[string]float64 `json:"p_nom_max"`
	} `json:"generators"`
	Storage struct {
		PNomMax map[string]float64 `json:"p_nom_max"`
		ENomMax map[string]float64 `json:"e_nom_max"`
	} `json:"storage"`
	Lines struct {
		SNomMax      float64 `json:"s_nom_max"`
		MaxExtension float64 `json:"max_extension"`
	} `json:"lines"`
	Links struct {
		PNomMax      float64 `json:"p_nom_max"`
		MaxExtension float64 `json:"max_extension"`
	} `json:"links"`
	System map[string]float64 `json:"system"`
}

// LoadLimits reads the technical limits document at path. It never fails:
// an empty path, a missing file or a document that does not parse all
// degrade to the built-in defaults with a log line, so a broken limits
// file can never abort a run.
func LoadLimits(path string, log logger.Logger) *limits.Table {
	if path == "" {
		log.Infof("using default technical limits")
		return limits.Defaults()
	}
	if _, err := os.Stat(path); err != nil {
		log.Warnf("technical limits file not found: %s", path)
		log.Infof("using default technical limits")
		return limits.Defaults()
	}
	parser, err := parserFor(path)
	if err != nil {
		log.Warnf("failed to load technical limits from %s: %v", path, err)
		log.Infof("using default technical limits")
		return limits.Defaults()
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		log.Warnf("failed to load technical limits from %s: %v", path, err)
		log.Infof("using default technical limits")
		return limits.Defaults()
	}
	var doc limitsDocument
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		log.Warnf("failed to decode technical limits from %s: %v", path, err)
		log.Infof("using default technical limits")
		return limits.Defaults()
	}
	log.Infof("loaded technical limits from %s", path)
	return tableFrom(doc)
}

// tableFrom converts a parsed document into a limits table. Sub-tables
// present in the document replace the defaults wholesale; absent ones
// keep the defaults, and every carrier sub-table is guaranteed a
// "default" entry afterwards.
func tableFrom(doc limitsDocument) *limits.Table {
	t := limits.Defaults()
	if len(doc.Generators.PNomMax) > 0 {
		t.Generators = withDefault(doc.Generators.PNomMax, t.Generators[limits.DefaultKey])
	}
	if len(doc.Storage.PNomMax) > 0 {
		t.StoragePower = withDefault(doc.Storage.PNomMax, t.StoragePower[limits.DefaultKey])
	}
	if len(doc.Storage.ENomMax) > 0 {
		t.StorageEnergy = withDefault(doc.Storage.ENomMax, t.StorageEnergy[limits.DefaultKey])
	}
	if doc.Lines.SNomMax > 0 {
		t.LineCap = doc.Lines.SNomMax
	}
	if doc.Lines.MaxExtension > 0 {
		t.LineExtension = doc.Lines.MaxExtension
	}
	if doc.Links.PNomMax > 0 {
		t.LinkCap = doc.Links.PNomMax
	}
	if doc.Links.MaxExtension > 0 {
		t.LinkExtension = doc.Links.MaxExtension
	}
	for name, v := range doc.System {
		t.System[name] = v
	}
	return t
}

func withDefault(m map[string]float64, fallback float64) map[string]float64 {
	out := make(map[string]float64, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	if _, ok := out[limits.DefaultKey]; !ok {
		out[limits.DefaultKey] = fallback
	}
	return out
}
