package config

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetData []byte

// Preset is a named Style shipped with the binary.
type Preset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Style       Style  `yaml:",inline"`
}

var (
	presetsOnce  sync.Once
	presetList   []Preset
	presetByName map[string]Preset
	presetErr    error
)

func loadPresets() {
	presetsOnce.Do(func() {
		var doc struct {
			Presets []Preset `yaml:"presets"`
		}
		if err := yaml.Unmarshal(presetData, &doc); err != nil {
			presetErr = fmt.Errorf("decode embedded presets: %w", err)
			return
		}
		presetList = doc.Presets
		presetByName = make(map[string]Preset, len(doc.Presets))
		for _, p := range doc.Presets {
			presetByName[p.Name] = p
		}
	})
}

// Presets returns the built-in presets in catalog order.
func Presets() ([]Preset, error) {
	loadPresets()
	if presetErr != nil {
		return nil, presetErr
	}
	out := make([]Preset, len(presetList))
	copy(out, presetList)
	return out, nil
}

// LookupPreset finds a built-in preset by name.
func LookupPreset(name string) (Preset, bool) {
	if name == "" {
		return Preset{}, false
	}
	loadPresets()
	p, ok := presetByName[name]
	return p, ok
}
