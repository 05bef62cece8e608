package metrics

import "github.com/maelcorre/gridcap/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.Config `json:"sinks"`
	// PromListen, when set, exposes /metrics on this address.
	PromListen string `json:"prom_listen"`
}
