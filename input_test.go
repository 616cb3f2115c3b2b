package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadInput(t *testing.T) {
	in, err := LoadInput("testfiles/ga_input.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if got := in.RunTitle; got != "default" {
		t.Errorf("RunTitle: got %q, wanted %q\n", got, "default")
	}
	if got, want := in.CompositionSpace, []string{"Si"}; !reflect.DeepEqual(got, want) {
		t.Errorf("CompositionSpace: got %v, wanted %v\n", got, want)
	}
	if got := in.Pool.Size; got != 20 {
		t.Errorf("Pool.size: got %v, wanted %v\n", got, 20)
	}
	if got := in.Stopping.NumEnergyCalcs; got != 80 {
		t.Errorf("num_energy_calcs: got %v, wanted %v\n", got, 80)
	}
	if got := in.NumCalcsAtOnce; got != 2 {
		t.Errorf("NumCalcsAtOnce: got %v, wanted %v\n", got, 2)
	}
	if got := in.LatticeMatch.MaxMismatch; got != 0.05 {
		t.Errorf("max_mismatch: got %v, wanted %v\n", got, 0.05)
	}
	if got := in.LatticeMatch.NlayersSubstrate; got != 2 {
		t.Errorf("nlayers_substrate: got %v, wanted %v\n", got, 2)
	}
	if got, want := in.EnergyCode.Vasp.Potcars,
		map[string]string{"Si": "testfiles/POTCAR.Si"}; !reflect.DeepEqual(got, want) {
		t.Errorf("potcars: got %v, wanted %v\n", got, want)
	}
	if got := in.Geometry.Shape; got != "interface" {
		t.Errorf("shape: got %q, wanted %q\n", got, "interface")
	}
	if got := in.SubstratePrim.ESubPrim; got != -10.84 {
		t.Errorf("E_sub_prim: got %v, wanted %v\n", got, -10.84)
	}
	// defaults filled on sections the file left out
	if got := in.Pool.Selection.NumParents; got != 20 {
		t.Errorf("num_parents default: got %v, wanted %v\n", got, 20)
	}
	if got := in.Pool.NumPromoted; got != 3 {
		t.Errorf("num_promoted default: got %v, wanted %v\n", got, 3)
	}
	// the fixture refers to real files, so the full check passes
	if err := in.Validate(true); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadInputUnknownKey(t *testing.T) {
	_, err := LoadInput("testfiles/unknown_key.yaml")
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("got %v, wanted ErrUnknownKey\n", err)
	}
	for _, key := range []string{"PoolSize", "Stopping"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not name key %q\n", err, key)
		}
	}
}

func TestLoadInputMissingFile(t *testing.T) {
	if _, err := LoadInput("testfiles/nonexistent.yaml"); err == nil {
		t.Error("got nil, wanted error\n")
	}
}

func TestLoadInputBadType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	doc := `CompositionSpace:
  - Si
Pool:
  size: twenty
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInput(path); !errors.Is(err, ErrBadInput) {
		t.Errorf("got %v, wanted ErrBadInput\n", err)
	}
}

func TestMissingSection(t *testing.T) {
	in, err := LoadInput("testfiles/missing_section.yaml")
	if err != nil {
		t.Fatal(err)
	}
	err = in.Validate(false)
	if !errors.Is(err, ErrMissingSection) {
		t.Fatalf("got %v, wanted ErrMissingSection\n", err)
	}
	if !strings.Contains(err.Error(), "CompositionSpace") {
		t.Errorf("error %q does not name CompositionSpace\n", err)
	}
}

func TestDumpRoundTrip(t *testing.T) {
	in, err := LoadInput("testfiles/ga_input.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := DumpInput(&buf, in); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "dump.yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	again, err := LoadInput(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, again) {
		t.Errorf("round trip:\ngot %#v\nwad %#v\n", again, in)
	}
}
