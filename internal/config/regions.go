package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Upstream sources a region can be wired to.
const (
	SourceFinnhub      = "finnhub"
	SourceAlphaVantage = "alphavantage"
	SourceNone         = "none"
)

//go:embed regions.yaml
var defaultRegions []byte

type Symbol struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
}

type RegionConfig struct {
	Source  string   `yaml:"source"`
	Symbols []Symbol `yaml:"symbols"`
}

// Regions maps a region name (USA, India, Japan) to the symbols fetched live for it.
type Regions map[string]RegionConfig

type regionsFile struct {
	Regions Regions `yaml:"regions"`
}

// LoadRegions reads the region table from path, or the embedded default when path is empty.
func LoadRegions(path string) (Regions, error) {
	raw := defaultRegions
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read regions file: %w", err)
		}
		raw = b
	}
	return ParseRegions(raw)
}

func ParseRegions(raw []byte) (Regions, error) {
	var f regionsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse regions: %w", err)
	}
	out := make(Regions, len(f.Regions))
	for name, rc := range f.Regions {
		rc.Source = strings.ToLower(strings.TrimSpace(rc.Source))
		if rc.Source == "" {
			rc.Source = SourceNone
		}
		switch rc.Source {
		case SourceFinnhub, SourceAlphaVantage, SourceNone:
		default:
			return nil, fmt.Errorf("region %s: unknown source %q", name, rc.Source)
		}
		for i, s := range rc.Symbols {
			if strings.TrimSpace(s.Symbol) == "" {
				return nil, fmt.Errorf("region %s: symbol %d is empty", name, i)
			}
			if s.Name == "" {
				rc.Symbols[i].Name = s.Symbol
			}
		}
		out[name] = rc
	}
	return out, nil
}

// Live reports whether region is served from upstream APIs rather than the store.
func (r Regions) Live(region string) bool {
	_, ok := r[region]
	return ok
}
