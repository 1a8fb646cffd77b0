// Package mhwdata holds the static Monster Hunter: World reference dataset.
// The data ships embedded in the binary; lookups are read-only.
package mhwdata

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed monsters.toml
var raw []byte

// Hitzone is the damage multiplier table for one part of a monster.
type Hitzone struct {
	Part    string `toml:"part"`
	Sever   int    `toml:"sever"`
	Blunt   int    `toml:"blunt"`
	Shot    int    `toml:"shot"`
	Fire    int    `toml:"fire"`
	Water   int    `toml:"water"`
	Thunder int    `toml:"thunder"`
	Ice     int    `toml:"ice"`
	Dragon  int    `toml:"dragon"`
}

// Monster is one dataset entry.
type Monster struct {
	Name     string    `toml:"name"`
	Aliases  []string  `toml:"aliases"`
	Threat   int       `toml:"threat"`
	Hitzones []Hitzone `toml:"hitzones"`
}

// Dataset is the full monster table.
type Dataset struct {
	Monsters []Monster `toml:"monsters"`
}

// Load decodes the embedded dataset.
func Load() (*Dataset, error) {
	var d Dataset
	if err := toml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode monster dataset: %w", err)
	}
	if len(d.Monsters) == 0 {
		return nil, fmt.Errorf("monster dataset is empty")
	}
	return &d, nil
}

// Find looks a monster up by name or alias, case-insensitively.
func (d *Dataset) Find(name string) (*Monster, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i := range d.Monsters {
		m := &d.Monsters[i]
		if strings.ToLower(m.Name) == needle {
			return m, true
		}
		for _, a := range m.Aliases {
			if strings.ToLower(a) == needle {
				return m, true
			}
		}
	}
	return nil, false
}
