package project

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
)

// POMFile is the Maven descriptor looked up in project directories.
const POMFile = "pom.xml"

// DefaultSourceDirs are the Maven main and test source roots.
var DefaultSourceDirs = []string{"src/main/java", "src/test/java"}

// POM holds the parts of a pom.xml the arrangement needs.
type POM struct {
	XMLName   xml.Name `xml:"project"`
	Packaging string   `xml:"packaging"`
	Build     struct {
		SourceDirectory     string `xml:"sourceDirectory"`
		TestSourceDirectory string `xml:"testSourceDirectory"`
	} `xml:"build"`
}

// ReadPOM reads the pom.xml of dir. It returns nil and no error when there
// is none.
func ReadPOM(dir string) (*POM, error) {
	data, err := os.ReadFile(filepath.Join(dir, POMFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var pom POM
	if err := xml.Unmarshal(data, &pom); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Join(dir, POMFile), err)
	}
	return &pom, nil
}

// SourceDirs returns the source roots declared in the build section, with
// the Maven defaults for the missing ones.
func (p *POM) SourceDirs() []string {
	dirs := append([]string(nil), DefaultSourceDirs...)
	if p == nil {
		return dirs
	}
	if d := trimBaseDir(p.Build.SourceDirectory); d != "" {
		dirs[0] = d
	}
	if d := trimBaseDir(p.Build.TestSourceDirectory); d != "" {
		dirs[1] = d
	}
	return dirs
}

func trimBaseDir(dir string) string {
	dir = strings.TrimSpace(dir)
	for _, prefix := range []string{"${project.basedir}/", "${basedir}/"} {
		dir = strings.TrimPrefix(dir, prefix)
	}
	return dir
}

// ProjectOptions configures RunProject.
type ProjectOptions struct {
	// Dir is the project directory, the one holding pom.xml.
	Dir string

	// Skip disables the arrangement.
	Skip bool

	// SourceDirs overrides the source roots, relative to Dir.
	SourceDirs []string
}

// RunProject arranges the source roots of a project. Projects with "pom"
// packaging have no sources and are skipped. Source roots that do not exist
// are ignored.
func (r *Runner) RunProject(ctx context.Context, options ProjectOptions) (Result, error) {
	if options.Skip {
		r.log.Info("Skipping arrangement because skip is set.")
		return Result{}, nil
	}

	pom, err := ReadPOM(options.Dir)
	if err != nil {
		return Result{}, err
	}
	if pom != nil && pom.Packaging == "pom" {
		r.log.Info("Skipping arrangement because project uses 'pom' packaging.")
		return Result{}, nil
	}

	dirs := options.SourceDirs
	if len(dirs) == 0 {
		dirs = pom.SourceDirs()
	}

	var (
		result Result
		errs   error
	)
	for _, dir := range dirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(options.Dir, dir)
		}
		if stat, err := os.Stat(dir); err != nil || !stat.IsDir() {
			r.log.Warnf("Source directory '%s' does not exist, ignoring.", dir)
			continue
		}
		res, err := r.Run(ctx, dir)
		result = result.Add(res)
		errs = multierr.Append(errs, err)
	}

	r.log.Info(result.String())
	return result, errs
}
