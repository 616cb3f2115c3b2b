package main

import "testing"

func minimalInput(endpoints ...string) *Input {
	potcars := make(map[string]string)
	cs, err := NewCompositionSpace(endpoints)
	if err == nil {
		for _, el := range cs.Elements() {
			potcars[el] = "testfiles/POTCAR." + el
		}
	}
	return &Input{
		RunTitle:         defaultRunTitle,
		NumCalcsAtOnce:   defaultNumCalcsAtOnce,
		CompositionSpace: endpoints,
		EnergyCode: &EnergyCode{Vasp: &VaspCode{
			Incar:   "testfiles/INCAR",
			Kpoints: "testfiles/KPOINTS",
			Potcars: potcars,
		}},
		InitialPopulation: &InitialPopulation{Random: &Random{Number: 10}},
	}
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		msg        string
		in         *Input
		size       int
		promoted   int
		numParents int
		power      float64
		calcs      int
	}{
		{
			msg:        "fixed composition",
			in:         minimalInput("Si"),
			size:       20,
			promoted:   3,
			numParents: 20,
			power:      1,
			calcs:      800,
		},
		{
			msg:        "binary phase diagram",
			in:         minimalInput("Si", "SiO2"),
			size:       25,
			promoted:   3,
			numParents: 25,
			power:      1,
			calcs:      1000,
		},
		{
			msg:        "ternary phase diagram",
			in:         minimalInput("Mg", "Si", "O"),
			size:       75,
			promoted:   3,
			numParents: 75,
			power:      1,
			calcs:      3000,
		},
		{
			msg: "explicit values kept",
			in: func() *Input {
				in := minimalInput("Si")
				in.Pool = &Pool{Size: 40, Selection: &Selection{NumParents: 10, Power: 2}}
				in.Stopping = &StoppingCriteria{NumEnergyCalcs: 80}
				return in
			}(),
			size:       40,
			promoted:   3,
			numParents: 10,
			power:      2,
			calcs:      80,
		},
		{
			msg: "value_achieved suppresses the calc budget",
			in: func() *Input {
				in := minimalInput("Si")
				in.Stopping = &StoppingCriteria{ValueAchieved: -5.4}
				return in
			}(),
			size:       20,
			promoted:   3,
			numParents: 20,
			power:      1,
			calcs:      0,
		},
	}
	for _, test := range tests {
		test.in.ApplyDefaults()
		in := test.in
		if in.Pool.Size != test.size {
			t.Errorf("%s: size: got %v, wanted %v\n", test.msg, in.Pool.Size, test.size)
		}
		if in.Pool.NumPromoted != test.promoted {
			t.Errorf("%s: num_promoted: got %v, wanted %v\n",
				test.msg, in.Pool.NumPromoted, test.promoted)
		}
		if in.Pool.Selection.NumParents != test.numParents {
			t.Errorf("%s: num_parents: got %v, wanted %v\n",
				test.msg, in.Pool.Selection.NumParents, test.numParents)
		}
		if in.Pool.Selection.Power != test.power {
			t.Errorf("%s: power: got %v, wanted %v\n",
				test.msg, in.Pool.Selection.Power, test.power)
		}
		if in.Stopping.NumEnergyCalcs != test.calcs {
			t.Errorf("%s: num_energy_calcs: got %v, wanted %v\n",
				test.msg, in.Stopping.NumEnergyCalcs, test.calcs)
		}
	}
}

func TestTotalSize(t *testing.T) {
	pop := &InitialPopulation{
		FromFiles: &FromFiles{Number: 10, PathToFolder: "testfiles/seeds"},
		Random:    &Random{Number: 15},
	}
	if got := pop.TotalSize(); got != 25 {
		t.Errorf("got %v, wanted %v\n", got, 25)
	}
}
