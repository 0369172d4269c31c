package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited is returned for endpoints that are never limited
var unlimited = EndpointConfig{}

// MatchEndpoint returns the configuration for a request, or nil when the
// default limit applies. Exact paths win over prefix paths.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if method == http.MethodGet && (path == "/health" || path == "/styles") {
		cfg := unlimited
		return &cfg
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}
	return nil
}
