package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var vdt = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report violations under the file's key names, not the Go
	// field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("koanf"), ",", 2)[0]
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks the whole record and reports every violated
// constraint, joined into a single error. checkPaths additionally
// requires every referenced file to exist; it is an existence check
// only, the contents are never parsed.
func (in *Input) Validate(checkPaths bool) error {
	var errs []error

	if in.CompositionSpace == nil {
		errs = append(errs, fmt.Errorf("%w: CompositionSpace", ErrMissingSection))
	}
	if in.EnergyCode == nil {
		errs = append(errs, fmt.Errorf("%w: EnergyCode", ErrMissingSection))
	} else if in.EnergyCode.Vasp == nil {
		errs = append(errs, fmt.Errorf("%w: EnergyCode names no recognized engine (supported: vasp)",
			ErrMissingSection))
	}

	if err := vdt.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, fieldError(fe))
			}
		} else {
			errs = append(errs, err)
		}
	}

	var cs *CompositionSpace
	if in.CompositionSpace != nil {
		var err error
		cs, err = NewCompositionSpace(in.CompositionSpace)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %v", ErrBadComposition, err))
		}
	}

	errs = append(errs, in.checkSpecies(cs)...)
	errs = append(errs, in.checkConsistency(cs)...)
	if checkPaths {
		errs = append(errs, in.checkPaths()...)
	}

	return errors.Join(errs...)
}

// checkSpecies requires the potcar keys to match the element set of
// the composition space exactly, in both directions.
func (in *Input) checkSpecies(cs *CompositionSpace) (errs []error) {
	if cs == nil || in.EnergyCode == nil || in.EnergyCode.Vasp == nil {
		return nil
	}
	want := make(map[string]bool)
	for _, el := range cs.Elements() {
		want[el] = true
		if _, ok := in.EnergyCode.Vasp.Potcars[el]; !ok {
			errs = append(errs, fmt.Errorf(
				"%w: no potcar for element %s in the composition space",
				ErrBadValue, el))
		}
	}
	for _, el := range in.EnergyCode.Vasp.Species() {
		if !want[el] {
			errs = append(errs, fmt.Errorf(
				"%w: potcar for %s, which is not in the composition space",
				ErrBadValue, el))
		}
	}
	return errs
}

// checkConsistency holds the cross-section rules that single-field
// tags cannot express.
func (in *Input) checkConsistency(cs *CompositionSpace) (errs []error) {
	if in.InitialPopulation != nil &&
		in.InitialPopulation.FromFiles == nil && in.InitialPopulation.Random == nil {
		errs = append(errs, fmt.Errorf(
			"%w: InitialPopulation names no seed source (from_files or random)",
			ErrBadValue))
	}
	if in.Pool != nil && in.Pool.Selection != nil &&
		in.Pool.Size > 0 && in.Pool.Selection.NumParents > in.Pool.Size {
		errs = append(errs, fmt.Errorf(
			"%w: Pool.selection.num_parents (%d) exceeds Pool.size (%d)",
			ErrBadValue, in.Pool.Selection.NumParents, in.Pool.Size))
	}
	if cs != nil {
		n := len(cs.Endpoints)
		if in.Pool != nil && in.Pool.Size == 0 && n > len(defaultPoolSize) {
			errs = append(errs, fmt.Errorf(
				"%w: no default pool size for a %d-endpoint composition space, set Pool.size",
				ErrBadValue, n))
		}
		if in.Stopping != nil && in.Stopping.ValueAchieved != 0 && cs.Objective() == "pd" {
			// values only make sense for fixed-composition
			// searches; keep the setting but flag it
			logger.Warn().
				Float64("value_achieved", in.Stopping.ValueAchieved).
				Msg("value_achieved is ignored by phase-diagram searches")
		}
	}
	if in.SubstratePrim != nil && in.SubstratePrim.ESubPrim > 0 {
		logger.Warn().
			Float64("E_sub_prim", in.SubstratePrim.ESubPrim).
			Msg("positive substrate reference energy, check the sign")
	}
	return errs
}

// checkPaths stats every referenced file.
func (in *Input) checkPaths() (errs []error) {
	stat := func(field, path string, wantDir bool) {
		if path == "" {
			return
		}
		fi, err := os.Stat(path)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%w: %s: %s", ErrMissingPath, field, path))
		case wantDir != fi.IsDir():
			kind := "file"
			if wantDir {
				kind = "directory"
			}
			errs = append(errs, fmt.Errorf("%w: %s: %s is not a %s",
				ErrMissingPath, field, path, kind))
		}
	}
	if in.EnergyCode != nil && in.EnergyCode.Vasp != nil {
		stat("EnergyCode.vasp.incar", in.EnergyCode.Vasp.Incar, false)
		stat("EnergyCode.vasp.kpoints", in.EnergyCode.Vasp.Kpoints, false)
		for _, el := range in.EnergyCode.Vasp.Species() {
			stat("EnergyCode.vasp.potcars."+el, in.EnergyCode.Vasp.Potcars[el], false)
		}
	}
	if in.InitialPopulation != nil && in.InitialPopulation.FromFiles != nil {
		stat("InitialPopulation.from_files.path_to_folder",
			in.InitialPopulation.FromFiles.PathToFolder, true)
	}
	if in.Stopping != nil {
		stat("StoppingCriteria.found_structure", in.Stopping.FoundStructure, false)
	}
	return errs
}

// fieldError turns a tag violation into a readable message under the
// file's key path.
func fieldError(fe validator.FieldError) error {
	path := strings.TrimPrefix(fe.Namespace(), "Input.")
	var what string
	switch fe.Tag() {
	case "required":
		what = "is required"
	case "min":
		what = "needs at least " + fe.Param() + " entries"
	case "gt":
		what = "must be greater than " + fe.Param()
	case "gte":
		what = "must be at least " + fe.Param()
	case "lte":
		what = "must be at most " + fe.Param()
	case "gtefield":
		what = "must not be less than " + keyName(fe.Param())
	case "oneof":
		what = "must be one of: " + fe.Param()
	default:
		what = "fails " + fe.Tag()
	}
	return fmt.Errorf("%w: %s %s (got %v)", ErrBadValue, path, what, fe.Value())
}

// keyName maps a Go field name referenced by a cross-field tag back
// to its key in the file.
func keyName(field string) string {
	switch field {
	case "MinNumAtoms":
		return "min_num_atoms"
	case "MaxNumAtoms":
		return "max_num_atoms"
	}
	return field
}
