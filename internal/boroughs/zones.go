package boroughs

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ZoneTable maps TLC taxi zone IDs to canonical borough names. The table is
// externally supplied configuration; the embedded default covers the zones
// that dominate yellow-cab volume and a full table can be dropped in via
// config without a rebuild.
type ZoneTable struct {
	zones map[int]string
}

//go:embed zones.yaml
var defaultZonesYAML []byte

type zoneFile struct {
	Zones map[int]string `yaml:"zones"`
}

// LoadZoneTable reads a zone table from a YAML file. Entries naming an
// unknown borough are rejected so a bad table fails loudly at startup
// instead of silently dropping trips later.
func LoadZoneTable(path string) (*ZoneTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zone table: %w", err)
	}
	return parseZoneTable(data)
}

// DefaultZoneTable returns the embedded zone table.
func DefaultZoneTable() *ZoneTable {
	t, err := parseZoneTable(defaultZonesYAML)
	if err != nil {
		// The embedded table is validated by tests; reaching here means a
		// broken build.
		panic(fmt.Sprintf("embedded zone table invalid: %v", err))
	}
	return t
}

func parseZoneTable(data []byte) (*ZoneTable, error) {
	var f zoneFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse zone table: %w", err)
	}
	zones := make(map[int]string, len(f.Zones))
	for id, raw := range f.Zones {
		name, ok := Resolve(raw)
		if !ok {
			return nil, fmt.Errorf("zone %d: unknown borough %q", id, raw)
		}
		zones[id] = name
	}
	return &ZoneTable{zones: zones}, nil
}

// Borough resolves a zone ID to a canonical borough name.
func (t *ZoneTable) Borough(zoneID int) (string, bool) {
	b, ok := t.zones[zoneID]
	return b, ok
}

// Len returns the number of mapped zones.
func (t *ZoneTable) Len() int {
	return len(t.zones)
}
