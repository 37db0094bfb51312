package neat

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// yamlOptions mirrors the fields of Settings and HyperSettings with YAML
// tags, plus an optional logger level. inputs, outputs and pop_size are
// required (LoadYAMLOptions rejects a document without them); every other
// field is optional, and fields left unset in the document keep whatever
// default New/NewHyperSettings produced.
type yamlOptions struct {
	Inputs  *uint32 `yaml:"inputs"`
	Outputs *uint32 `yaml:"outputs"`
	PopSize *uint32 `yaml:"pop_size"`

	ConnMutRate interface{} `yaml:"conn_mut_rate"`
	NodeMutRate interface{} `yaml:"node_mut_rate"`
	WtMutRate   interface{} `yaml:"wt_mut_rate"`
	WtShiftRate interface{} `yaml:"wt_shift_rate"`

	OffGeneOnRate   interface{} `yaml:"off_gene_on_rate"`
	OffInBothOnRate interface{} `yaml:"off_in_both_on_rate"`
	OnlyMutRate     interface{} `yaml:"only_mut_rate"`

	DisjointCoeff    interface{} `yaml:"disjoint_coeff"`
	ExcessCoeff      interface{} `yaml:"excess_coeff"`
	WeightCoeff      interface{} `yaml:"weight_coeff"`
	ActivationCoeff  interface{} `yaml:"activation_coeff"`
	SpeciationThresh interface{} `yaml:"speciation_threshold"`
	AllowedStagnancy interface{} `yaml:"allowed_stagnancy"`

	MinWeight interface{} `yaml:"hyper_min_weight"`
	MaxWeight interface{} `yaml:"hyper_max_weight"`

	LogLevel string `yaml:"log_level"`
}

// LoadYAMLOptions reads Settings and HyperSettings overrides from a YAML
// document. Values are decoded loosely via github.com/spf13/cast, so a
// document that spells a rate as the string "0.05" parses the same as the
// float 0.05. inputs/outputs/pop_size are required; every rate and
// coefficient falls back to the New(...)/NewHyperSettings() default when
// absent from the document.
func LoadYAMLOptions(r io.Reader) (*Settings, *HyperSettings, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read NEAT options")
	}

	var doc yamlOptions
	if err = yaml.Unmarshal(content, &doc); err != nil {
		return nil, nil, errors.Wrap(err, "failed to decode NEAT options from YAML")
	}

	if doc.Inputs == nil || doc.Outputs == nil || doc.PopSize == nil {
		return nil, nil, errors.New("YAML options must specify inputs, outputs and pop_size")
	}

	sets := New(*doc.Inputs, *doc.Outputs, *doc.PopSize)
	applyRate(doc.ConnMutRate, &sets.ConnMutRate)
	applyRate(doc.NodeMutRate, &sets.NodeMutRate)
	applyRate(doc.WtMutRate, &sets.WtMutRate)
	applyRate(doc.WtShiftRate, &sets.WtShiftRate)
	applyRate(doc.OffGeneOnRate, &sets.OffGeneOnRate)
	applyRate(doc.OffInBothOnRate, &sets.OffInBothOnRate)
	applyRate(doc.OnlyMutRate, &sets.OnlyMutRate)
	applyRate(doc.DisjointCoeff, &sets.DisjointCoeff)
	applyRate(doc.ExcessCoeff, &sets.ExcessCoeff)
	applyRate(doc.WeightCoeff, &sets.WeightCoeff)
	applyRate(doc.ActivationCoeff, &sets.ActivationCoeff)
	applyRate(doc.SpeciationThresh, &sets.SpeciationThresh)
	if doc.AllowedStagnancy != nil {
		sets.AllowedStagnancy = cast.ToUint32(doc.AllowedStagnancy)
	}

	hyper := NewHyperSettings()
	applyRate(doc.MinWeight, &hyper.MinWeight)
	applyRate(doc.MaxWeight, &hyper.MaxWeight)

	if doc.LogLevel != "" {
		if err = InitLogger(doc.LogLevel); err != nil {
			return nil, nil, errors.Wrap(err, "failed to initialize logger")
		}
	}

	return sets, hyper, nil
}

// ReadSettingsFromFile loads YAML-encoded Settings/HyperSettings from the
// file at path.
func ReadSettingsFromFile(path string) (*Settings, *HyperSettings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open config file")
	}
	defer f.Close()
	return LoadYAMLOptions(f)
}

func applyRate(v interface{}, dst *float64) {
	if v == nil {
		return
	}
	*dst = cast.ToFloat64(v)
}
