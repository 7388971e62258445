package scutil

import (
	"strings"

	"github.com/ubahwin/vpnman/internal/logger"
)

// Expected listing line layout (whitespace-delimited, at least 6 tokens):
//
//	<idx> (Connected|Disconnected) <uuid> <serviceType> <kind> "<name>" ...
//
// The token positions are an external contract with scutil; anything past
// token 5 (including extra words of a multi-word name) is dropped.
const minListTokens = 6

// ParseList extracts VPN configurations from `scutil --nc list` output.
// Only lines containing "vpn" (case-insensitive) are considered. A
// considered line with fewer than 6 tokens yields a ParseError naming it.
func ParseList(raw string) ([]Configuration, error) {
	var configs []Configuration
	seen := make(map[string]bool)

	for _, line := range strings.Split(raw, "\n") {
		if !strings.Contains(strings.ToLower(line), "vpn") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < minListTokens {
			return nil, &ParseError{Line: line}
		}

		cfg := Configuration{
			Connected:   fields[1] == "(Connected)",
			ID:          fields[2],
			ServiceType: fields[3],
			Name:        unquote(fields[5]),
		}

		// scutil identifiers are assumed unique; if a listing ever
		// repeats one, the first record wins.
		if seen[cfg.ID] {
			logger.Warning("duplicate configuration id %s in listing, keeping first", cfg.ID)
			continue
		}
		seen[cfg.ID] = true

		configs = append(configs, cfg)
	}

	return configs, nil
}

// unquote strips surrounding whitespace and one layer of surrounding
// double quotes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}
