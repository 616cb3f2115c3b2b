package main

import (
	"io"

	"gopkg.in/yaml.v3"
)

// DumpInput writes the effective input record as YAML. Loading the
// dump back yields an identical record, so a dump is a complete,
// self-contained description of the run.
func DumpInput(w io.Writer, in *Input) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(in)
}

// inputTemplate is a starter input for an interface search, printed
// by -tmpl.
const inputTemplate = `RunTitle: default

CompositionSpace:
  - Si

EnergyCode:
  vasp:
    incar: /path/to/INCAR
    kpoints: /path/to/KPOINTS
    potcars:
      Si: /path/to/POTCAR.Si

NumCalcsAtOnce: 1

InitialPopulation:
  from_files:
    number: 10
    path_to_folder: /path/to/seed_structures
  random:
    number: 10

Pool:
  size: 20

Constraints:
  min_num_atoms: 2
  max_num_atoms: 30
  max_interface_atoms: 100
  max_lattice_length: 25.0

LatticeMatch:
  max_area: 200.0
  max_mismatch: 0.05
  max_angle_diff: 2.0
  r1r2_tol: 0.05
  separation: 2.0
  nlayers_substrate: 2
  nlayers_2d: 2
  sd_layers: 1

Substrate_prim_calc:
  E_sub_prim: -10.84
  n_sub_prim: 2

Geometry:
  shape: interface
  max_size: 30.0
  padding: 10.0

StoppingCriteria:
  num_energy_calcs: 80
`
