// The recognized input sections. To add a new section, add its struct
// here with koanf and yaml tags, a field on Input, and its name to
// topLevelKeys in input.go. If it has composition-dependent defaults,
// extend ApplyDefaults below.
package main

import "sort"

// Input is the full structure-search input record. Pointer sections
// are optional in the file; nil means the section was absent.
type Input struct {
	RunTitle          string             `koanf:"RunTitle" yaml:"RunTitle"`
	CompositionSpace  []string           `koanf:"CompositionSpace" yaml:"CompositionSpace" validate:"omitempty,min=1"`
	EnergyCode        *EnergyCode        `koanf:"EnergyCode" yaml:"EnergyCode,omitempty"`
	NumCalcsAtOnce    int                `koanf:"NumCalcsAtOnce" yaml:"NumCalcsAtOnce" validate:"omitempty,gt=0"`
	InitialPopulation *InitialPopulation `koanf:"InitialPopulation" yaml:"InitialPopulation,omitempty"`
	Pool              *Pool              `koanf:"Pool" yaml:"Pool,omitempty"`
	Constraints       *Constraints       `koanf:"Constraints" yaml:"Constraints,omitempty"`
	LatticeMatch      *LatticeMatch      `koanf:"LatticeMatch" yaml:"LatticeMatch,omitempty"`
	SubstratePrim     *SubstratePrimCalc `koanf:"Substrate_prim_calc" yaml:"Substrate_prim_calc,omitempty"`
	Geometry          *Geometry          `koanf:"Geometry" yaml:"Geometry,omitempty"`
	Stopping          *StoppingCriteria  `koanf:"StoppingCriteria" yaml:"StoppingCriteria,omitempty"`
}

// EnergyCode selects the external energy-evaluation backend. Only
// vasp is recognized.
type EnergyCode struct {
	Vasp *VaspCode `koanf:"vasp" yaml:"vasp"`
}

// VaspCode holds the file references a vasp energy calculation needs:
// the INCAR parameter file, the KPOINTS sampling file, and one POTCAR
// per species in the composition space.
type VaspCode struct {
	Incar   string            `koanf:"incar" yaml:"incar" validate:"required"`
	Kpoints string            `koanf:"kpoints" yaml:"kpoints" validate:"required"`
	Potcars map[string]string `koanf:"potcars" yaml:"potcars" validate:"required,min=1"`
}

// InitialPopulation names the seed sources for the first generation.
// At least one of the two must be present.
type InitialPopulation struct {
	FromFiles *FromFiles `koanf:"from_files" yaml:"from_files,omitempty"`
	Random    *Random    `koanf:"random" yaml:"random,omitempty"`
}

// FromFiles seeds the population with pre-existing structures read
// from a folder.
type FromFiles struct {
	Number       int    `koanf:"number" yaml:"number" validate:"gt=0"`
	PathToFolder string `koanf:"path_to_folder" yaml:"path_to_folder" validate:"required"`
}

// Random seeds the population with randomly generated structures.
type Random struct {
	Number int `koanf:"number" yaml:"number" validate:"gt=0"`
}

// TotalSize returns the number of organisms in the initial
// population, summed over the sources present.
func (p *InitialPopulation) TotalSize() int {
	var n int
	if p.FromFiles != nil {
		n += p.FromFiles.Number
	}
	if p.Random != nil {
		n += p.Random.Number
	}
	return n
}

// Pool is the set of candidate structures carried between
// generations: a promotion set holding the best few, and a queue for
// the rest.
type Pool struct {
	Size        int        `koanf:"size" yaml:"size" validate:"omitempty,gt=0"`
	NumPromoted int        `koanf:"num_promoted" yaml:"num_promoted" validate:"omitempty,gte=0"`
	Selection   *Selection `koanf:"selection" yaml:"selection,omitempty"`
}

// Selection defines the probability distribution over pool fitnesses
// used to pick parents.
type Selection struct {
	NumParents int     `koanf:"num_parents" yaml:"num_parents" validate:"omitempty,gt=0"`
	Power      float64 `koanf:"power" yaml:"power" validate:"omitempty,gt=0"`
}

// Constraints bounds the structures the search is allowed to
// generate.
type Constraints struct {
	MinNumAtoms       int     `koanf:"min_num_atoms" yaml:"min_num_atoms" validate:"omitempty,gt=0"`
	MaxNumAtoms       int     `koanf:"max_num_atoms" yaml:"max_num_atoms" validate:"omitempty,gt=0,gtefield=MinNumAtoms"`
	MaxInterfaceAtoms int     `koanf:"max_interface_atoms" yaml:"max_interface_atoms" validate:"omitempty,gt=0,gtefield=MaxNumAtoms"`
	MaxLatticeLength  float64 `koanf:"max_lattice_length" yaml:"max_lattice_length" validate:"omitempty,gt=0"`
}

// LatticeMatch holds the tolerances for aligning the film lattice to
// the substrate. All numeric values are passed through to the engine
// untouched; only sign and range are checked here.
type LatticeMatch struct {
	MaxArea          float64 `koanf:"max_area" yaml:"max_area" validate:"omitempty,gt=0"`
	MaxMismatch      float64 `koanf:"max_mismatch" yaml:"max_mismatch" validate:"gte=0,lte=1"`
	MaxAngleDiff     float64 `koanf:"max_angle_diff" yaml:"max_angle_diff" validate:"gte=0"`
	R1R2Tol          float64 `koanf:"r1r2_tol" yaml:"r1r2_tol" validate:"gte=0"`
	Separation       float64 `koanf:"separation" yaml:"separation" validate:"required,gt=0"`
	NlayersSubstrate int     `koanf:"nlayers_substrate" yaml:"nlayers_substrate" validate:"required,gt=0"`
	Nlayers2D        int     `koanf:"nlayers_2d" yaml:"nlayers_2d" validate:"required,gt=0"`
	SdLayers         int     `koanf:"sd_layers" yaml:"sd_layers" validate:"gte=0"`
}

// SubstratePrimCalc is the reference energy of the substrate's
// primitive cell, used to normalize interface formation energies per
// substrate atom.
type SubstratePrimCalc struct {
	ESubPrim float64 `koanf:"E_sub_prim" yaml:"E_sub_prim"`
	NSubPrim int     `koanf:"n_sub_prim" yaml:"n_sub_prim" validate:"required,gt=0"`
}

// Geometry bounds the overall cell the search works in.
type Geometry struct {
	Shape   string  `koanf:"shape" yaml:"shape" validate:"omitempty,oneof=bulk sheet wire cluster interface"`
	MaxSize float64 `koanf:"max_size" yaml:"max_size" validate:"omitempty,gt=0"`
	Padding float64 `koanf:"padding" yaml:"padding" validate:"gte=0"`
}

// StoppingCriteria says when the search should stop: after a budget
// of energy calculations, on reaching an objective value, or on
// finding a given structure.
type StoppingCriteria struct {
	NumEnergyCalcs int     `koanf:"num_energy_calcs" yaml:"num_energy_calcs" validate:"omitempty,gt=0"`
	ValueAchieved  float64 `koanf:"value_achieved" yaml:"value_achieved,omitempty"`
	FoundStructure string  `koanf:"found_structure" yaml:"found_structure,omitempty"`
}

// budgetGiven reports whether any stopping criterion was set
// explicitly.
func (s *StoppingCriteria) budgetGiven() bool {
	return s.NumEnergyCalcs > 0 || s.ValueAchieved != 0 || s.FoundStructure != ""
}

// Default pool sizes and energy-calculation budgets, indexed by the
// number of endpoints in the composition space. One endpoint is a
// fixed-composition search; two through four are binary, ternary, and
// quaternary phase-diagram searches.
var (
	defaultPoolSize   = map[int]int{1: 20, 2: 25, 3: 75, 4: 150}
	defaultCalcBudget = map[int]int{1: 800, 2: 1000, 3: 3000, 4: 6000}
)

const (
	defaultNumPromoted    = 3
	defaultPower          = 1
	defaultNumCalcsAtOnce = 1
	defaultRunTitle       = "default"
)

// defaultInput returns an Input with the static defaults applied.
// Composition-dependent defaults are filled by ApplyDefaults once the
// composition space is known.
func defaultInput() *Input {
	return &Input{
		RunTitle:       defaultRunTitle,
		NumCalcsAtOnce: defaultNumCalcsAtOnce,
	}
}

// ApplyDefaults fills the fields left blank in the file with the
// composition-dependent defaults. Sections that were absent are
// materialized, matching the behavior of leaving a block blank.
// Unparseable composition spaces are left for Validate to report; the
// dynamic defaults are skipped in that case.
func (in *Input) ApplyDefaults() {
	if in.Pool == nil {
		in.Pool = &Pool{}
	}
	if in.Pool.NumPromoted == 0 {
		in.Pool.NumPromoted = defaultNumPromoted
	}
	if in.Pool.Selection == nil {
		in.Pool.Selection = &Selection{}
	}
	if in.Pool.Selection.Power == 0 {
		in.Pool.Selection.Power = defaultPower
	}
	if in.Stopping == nil {
		in.Stopping = &StoppingCriteria{}
	}

	cs, err := NewCompositionSpace(in.CompositionSpace)
	if err == nil {
		n := len(cs.Endpoints)
		if in.Pool.Size == 0 {
			in.Pool.Size = defaultPoolSize[n]
		}
		// a given value_achieved or found_structure suppresses
		// the calculation-budget default
		if !in.Stopping.budgetGiven() {
			in.Stopping.NumEnergyCalcs = defaultCalcBudget[n]
		}
	}
	if in.Pool.Selection.NumParents == 0 {
		in.Pool.Selection.NumParents = in.Pool.Size
	}
}

// Species returns the sorted element symbols named by the potcars
// mapping.
func (v *VaspCode) Species() []string {
	species := make([]string, 0, len(v.Potcars))
	for el := range v.Potcars {
		species = append(species, el)
	}
	sort.Strings(species)
	return species
}
