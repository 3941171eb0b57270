package roleset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"legacy2pbr/internal/services"
)

// Listing holds the matched file paths per role, each list sorted by name so
// pairing does not depend on directory-enumeration order.
type Listing struct {
	Normal   []string
	Specular []string
	Ambient  []string
	Diffuse  []string
}

// Set is one conversion unit: the four role paths paired for a single
// NMO/BCR output pair, plus the shared filename stem.
type Set struct {
	Stem     string
	Normal   string
	Specular string
	Ambient  string
	Diffuse  string
}

// Filter groups candidate names by role. It is a pure function over the
// provided names so the matching grammar can be tested without a filesystem.
func Filter(names []string) Listing {
	var listing Listing
	for _, name := range names {
		if Match(name, RoleNormal) {
			listing.Normal = append(listing.Normal, name)
		}
		if Match(name, RoleSpecular) {
			listing.Specular = append(listing.Specular, name)
		}
		if Match(name, RoleAmbient) {
			listing.Ambient = append(listing.Ambient, name)
		}
		if Match(name, RoleDiffuse) {
			listing.Diffuse = append(listing.Diffuse, name)
		}
	}
	listing.sort()
	return listing
}

// Scan reads the source directory and groups its files by role.
func Scan(dir string) (Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, services.Wrap(services.ErrFilesystem, "scan", "read source directory", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, filepath.Join(dir, entry.Name()))
	}
	return Filter(names), nil
}

func (l *Listing) sort() {
	sort.Strings(l.Normal)
	sort.Strings(l.Specular)
	sort.Strings(l.Ambient)
	sort.Strings(l.Diffuse)
}

// Validate checks the fail-fast precondition: every role must have at least
// one file before any set is processed.
func (l Listing) Validate() error {
	var missing []string
	if len(l.Normal) == 0 {
		missing = append(missing, RoleNormal.Suffix())
	}
	if len(l.Specular) == 0 {
		missing = append(missing, RoleSpecular.Suffix())
	}
	if len(l.Ambient) == 0 {
		missing = append(missing, RoleAmbient.Suffix())
	}
	if len(l.Diffuse) == 0 {
		missing = append(missing, RoleDiffuse.Suffix())
	}
	if len(missing) == 0 {
		return nil
	}
	return services.Wrap(
		services.ErrMissingRole,
		"scan",
		"validate roles",
		fmt.Sprintf("no files match %s", strings.Join(missing, ", ")),
		nil,
	)
}

// Sets pairs the role lists into conversion units. The normal-map list
// defines the count; shorter role lists are cycled by index modulo so a
// single shared specular or ambient map services many normal maps.
func (l Listing) Sets() []Set {
	if l.Validate() != nil {
		return nil
	}
	sets := make([]Set, 0, len(l.Normal))
	for i, normal := range l.Normal {
		sets = append(sets, Set{
			Stem:     Stem(normal),
			Normal:   normal,
			Specular: l.Specular[i%len(l.Specular)],
			Ambient:  l.Ambient[i%len(l.Ambient)],
			Diffuse:  l.Diffuse[i%len(l.Diffuse)],
		})
	}
	return sets
}
