package crowdfund

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadProject reads, validates, and builds a project from a YAML
// configuration file.
func LoadProject(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open project file %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("project file %q: %w", path, err)
	}
	project, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("project file %q: %w", path, err)
	}
	return project, nil
}

// FindProject locates the project configuration matching query under dir and
// loads it. A project name is its relative path from dir without the .yaml
// extension. An empty query matches when there is exactly one project file.
func FindProject(dir, query string) (*Project, error) {
	paths, err := findProjectPaths(dir, query)
	if err != nil {
		return nil, err
	}
	switch len(paths) {
	case 0:
		return nil, fmt.Errorf("could not find project %q in %q", query, dir)
	case 1:
		return LoadProject(paths[0])
	default:
		return nil, fmt.Errorf("multiple projects found for %q in %q", query, dir)
	}
}

// findProjectPaths scans dir for project configuration files (.yaml) matching
// the query.
func findProjectPaths(dir, query string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".yaml") {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(rel, ".yaml")
		if query == "" || name == query {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not scan %q for projects: %w", dir, err)
	}
	return paths, nil
}
