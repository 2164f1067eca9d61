package config

import (
	"fmt"

	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// Format decodes a key-value document into a flat field map.
type Format interface {
	// Ext is the resource extension without the leading dot.
	Ext() string
	Decode(data []byte) (map[string]string, error)
}

// PropertiesFormat reads "name=value" documents.
// Values are taken literally; ${...} references are not expanded.
type PropertiesFormat struct{}

func (PropertiesFormat) Ext() string { return "properties" }

func (PropertiesFormat) Decode(data []byte) (map[string]string, error) {
	l := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := l.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	return p.Map(), nil
}

// YAMLFormat reads a single flat YAML mapping of scalars.
// Scalars keep their literal text: "007" stays "007", "1.50" stays "1.50".
type YAMLFormat struct{}

func (YAMLFormat) Ext() string { return "yaml" }

func (YAMLFormat) Decode(data []byte) (map[string]string, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	fields := make(map[string]string, len(raw))
	for k, n := range raw {
		if n.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("field %q: only scalar values are supported", k)
		}
		if n.Tag == "!!null" {
			fields[k] = ""
			continue
		}
		fields[k] = n.Value
	}
	return fields, nil
}
