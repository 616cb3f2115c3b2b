package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/maps"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Errors used throughout
var (
	ErrMissingSection = errors.New("missing required section")
	ErrUnknownKey     = errors.New("unrecognized keyword")
	ErrBadValue       = errors.New("value out of range")
	ErrMissingPath    = errors.New("referenced file not found")
	ErrBadComposition = errors.New("malformed composition")
	ErrBadInput       = errors.New("invalid input")
)

// topLevelKeys is the complete set of recognized input sections.
var topLevelKeys = map[string]bool{
	"RunTitle":            true,
	"CompositionSpace":    true,
	"EnergyCode":          true,
	"NumCalcsAtOnce":      true,
	"InitialPopulation":   true,
	"Pool":                true,
	"Constraints":         true,
	"LatticeMatch":        true,
	"Substrate_prim_calc": true,
	"Geometry":            true,
	"StoppingCriteria":    true,
}

// LoadInput reads the YAML input file at path into a typed record
// with defaults applied. Defaults are layered first, then the file is
// merged over them. Any key the schema does not know aborts the load.
// Validation is a separate step, see Validate in validate.go.
func LoadInput(path string) (*Input, error) {
	in := defaultInput()

	parser := koanf.New(".")
	if err := parser.Load(structs.Provider(in, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}

	fk := koanf.New(".")
	if err := fk.Load(file.Provider(path), kyaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadInput, path, err)
	}

	raw := fk.Raw()
	maps.IntfaceKeysToStrings(raw)
	if err := checkTopLevelKeys(raw); err != nil {
		return nil, err
	}
	if err := parser.Load(confmap.Provider(raw, "."), nil); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadInput, path, err)
	}

	err := parser.UnmarshalWithConf("", in, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           in,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		},
	})
	if err != nil {
		// mapstructure reports both leftover keys and type
		// mismatches here
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}

	in.ApplyDefaults()
	return in, nil
}

func checkTopLevelKeys(raw map[string]any) error {
	var unknown []string
	for key := range raw {
		if !topLevelKeys[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	errs := make([]error, len(unknown))
	for i, key := range unknown {
		errs[i] = fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return errors.Join(errs...)
}
