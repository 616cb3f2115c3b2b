package main

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// elements holds every recognized element symbol.
var elements = func() map[string]bool {
	m := make(map[string]bool)
	for _, s := range strings.Fields(`
	H He Li Be B C N O F Ne Na Mg Al Si P S Cl Ar K Ca Sc Ti V Cr Mn Fe
	Co Ni Cu Zn Ga Ge As Se Br Kr Rb Sr Y Zr Nb Mo Tc Ru Rh Pd Ag Cd In
	Sn Sb Te I Xe Cs Ba La Ce Pr Nd Pm Sm Eu Gd Tb Dy Ho Er Tm Yb Lu Hf
	Ta W Re Os Ir Pt Au Hg Tl Pb Bi Po At Rn Fr Ra Ac Th Pa U Np Pu Am
	Cm Bk Cf Es Fm Md No Lr Rf Db Sg Bh Hs Mt Ds Rg Cn Nh Fl Mc Lv Ts Og
	`) {
		m[s] = true
	}
	return m
}()

var formulaRe = regexp.MustCompile(`([A-Z][a-z]?)([0-9]*)`)

// A Composition maps element symbols to their (reduced) counts in a
// formula unit.
type Composition map[string]int

// ParseComposition parses a formula like Si or Mg2SiO4 into a reduced
// composition. Counts are divided by their greatest common divisor,
// so Si2O4 and SiO2 parse equal.
func ParseComposition(formula string) (Composition, error) {
	formula = strings.TrimSpace(formula)
	if formula == "" {
		return nil, fmt.Errorf("empty formula")
	}
	comp := make(Composition)
	var matched int
	for _, m := range formulaRe.FindAllStringSubmatch(formula, -1) {
		sym, count := m[1], 1
		if !elements[sym] {
			return nil, fmt.Errorf("unknown element %q in formula %q", sym, formula)
		}
		if m[2] != "" {
			count, _ = strconv.Atoi(m[2])
			if count < 1 {
				return nil, fmt.Errorf("zero count for %s in formula %q", sym, formula)
			}
		}
		comp[sym] += count
		matched += len(m[0])
	}
	if matched != len(formula) {
		return nil, fmt.Errorf("malformed formula %q", formula)
	}
	return comp.reduce(), nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func (c Composition) reduce() Composition {
	var g int
	for _, n := range c {
		g = gcd(g, n)
	}
	if g <= 1 {
		return c
	}
	red := make(Composition, len(c))
	for el, n := range c {
		red[el] = n / g
	}
	return red
}

// Equal reports whether two reduced compositions are the same.
func (c Composition) Equal(other Composition) bool {
	if len(c) != len(other) {
		return false
	}
	for el, n := range c {
		if other[el] != n {
			return false
		}
	}
	return true
}

// String renders the composition in Hill-ish sorted order, counts of
// one omitted.
func (c Composition) String() string {
	syms := make([]string, 0, len(c))
	for el := range c {
		syms = append(syms, el)
	}
	sort.Strings(syms)
	var buf strings.Builder
	for _, el := range syms {
		buf.WriteString(el)
		if c[el] > 1 {
			fmt.Fprintf(&buf, "%d", c[el])
		}
	}
	return buf.String()
}

// CompositionSpace is the set of composition endpoints the search
// covers: one endpoint for a fixed-composition search, more for a
// phase-diagram search.
type CompositionSpace struct {
	Endpoints []Composition
}

// NewCompositionSpace parses the endpoint formulas. All malformed
// endpoints are reported, not just the first.
func NewCompositionSpace(formulas []string) (*CompositionSpace, error) {
	if len(formulas) == 0 {
		return nil, fmt.Errorf("no composition endpoints")
	}
	cs := &CompositionSpace{}
	var errs []string
	for _, f := range formulas {
		comp, err := ParseComposition(f)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		cs.Endpoints = append(cs.Endpoints, comp)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return cs, nil
}

// Objective infers the objective function from the endpoints: energy
// per atom ("epa") for a single composition, phase-diagram ("pd") as
// soon as any two endpoints differ. Identical duplicated endpoints
// still mean an epa search.
func (cs *CompositionSpace) Objective() string {
	for _, a := range cs.Endpoints {
		for _, b := range cs.Endpoints {
			if !a.Equal(b) {
				return "pd"
			}
		}
	}
	return "epa"
}

// Elements returns the sorted set of element symbols appearing in any
// endpoint.
func (cs *CompositionSpace) Elements() []string {
	set := make(map[string]bool)
	for _, comp := range cs.Endpoints {
		for el := range comp {
			set[el] = true
		}
	}
	els := make([]string, 0, len(set))
	for el := range set {
		els = append(els, el)
	}
	sort.Strings(els)
	return els
}
