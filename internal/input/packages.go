// Package input supplies workout packages to the batch tool.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"example.com/workouts/internal/domain"
)

// ErrNoPackages is returned when a batch file declares no packages.
var ErrNoPackages = errors.New("no packages declared")

// File is the TOML layout of a batch file:
//
//	[[package]]
//	code = "RUN"
//	args = [15000, 1, 75]
type File struct {
	Packages []Entry `toml:"package"`
}

// Entry is one package table.
type Entry struct {
	Code string    `toml:"code"`
	Args []float64 `toml:"args"`
}

// Samples returns the reference readings of one swim, one run and one walk.
func Samples() []domain.Package {
	return []domain.Package{
		{Code: string(domain.CodeSwimming), Args: []float64{720, 1, 80, 25, 40}},
		{Code: string(domain.CodeRunning), Args: []float64{15000, 1, 75}},
		{Code: string(domain.CodeSportsWalking), Args: []float64{9000, 1, 75, 180}},
	}
}

// Decode reads a batch file from r.
func Decode(r io.Reader) ([]domain.Package, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode packages: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("decode packages: unknown keys %s", strings.Join(keys, ", "))
	}
	if len(f.Packages) == 0 {
		return nil, ErrNoPackages
	}

	out := make([]domain.Package, 0, len(f.Packages))
	for _, entry := range f.Packages {
		out = append(out, domain.Package{Code: entry.Code, Args: entry.Args})
	}
	return out, nil
}

// LoadFile reads a batch file from disk.
func LoadFile(path string) ([]domain.Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pkgs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pkgs, nil
}
