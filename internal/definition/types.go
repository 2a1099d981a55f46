package definition

import (
	"slices"

	"entity-exposure/exposure"
)

// File represents the root of a YAML definition file.
type File struct {
	// Version of the definition schema.
	Version string `yaml:"version,omitempty"`

	// Entities declared in the file.
	Entities []Entity `yaml:"entities"`
}

// Entity is a named group of exposures. Its inline scope options apply to
// every exposure it declares.
type Entity struct {
	Name  string `yaml:"name"`
	Scope `yaml:",inline"`
}

// Scope holds shared options, the exposures declared directly under them and
// nested blocks.
type Scope struct {
	Options   RawOptions `yaml:"options,omitempty"`
	Exposures []Exposure `yaml:"exposures,omitempty"`
	Blocks    []Scope    `yaml:"blocks,omitempty"`
}

// Exposure declares one or more attributes sharing the same options.
type Exposure struct {
	Attributes StringOrArray `yaml:"attributes"`
	Options    RawOptions    `yaml:"options,omitempty"`
}

// RawOptions is an unvalidated option set as written in the file.
type RawOptions map[string]any

// ToOptions converts the raw set to exposure options without validation.
func (r RawOptions) ToOptions() exposure.Options {
	out := make(exposure.Options, len(r))
	for k, v := range r {
		out[exposure.Key(k)] = v
	}

	return out
}

// StringOrArray is a list of strings that may be written as a single string.
type StringOrArray []string

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// ResolvedEntity is an entity with every exposure merged.
type ResolvedEntity struct {
	Name      string             `yaml:"name"`
	Exposures []ResolvedExposure `yaml:"exposures"`
}

// ResolvedExposure is the final option set of a single attribute.
type ResolvedExposure struct {
	Attribute string           `yaml:"attribute"`
	Options   exposure.Options `yaml:"options,omitempty"`
}

// Lookup returns the resolved exposure of attribute, if declared.
func (e ResolvedEntity) Lookup(attribute string) (ResolvedExposure, bool) {
	for _, x := range e.Exposures {
		if x.Attribute == attribute {
			return x, true
		}
	}

	return ResolvedExposure{}, false
}
