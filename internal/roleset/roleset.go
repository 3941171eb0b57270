package roleset

import (
	"path/filepath"
	"strings"
)

// Role identifies one of the four legacy texture map categories.
type Role string

const (
	// RoleNormal is the legacy normal/height map ("_nohq"). It is the
	// primary role: its file list drives the batch iteration count and its
	// dimensions define every output's dimensions.
	RoleNormal Role = "nohq"
	// RoleSpecular is the legacy specular/gloss map ("_smdi").
	RoleSpecular Role = "smdi"
	// RoleAmbient is the legacy ambient/shadow map ("_as").
	RoleAmbient Role = "as"
	// RoleDiffuse is the legacy base-color map ("_co").
	RoleDiffuse Role = "co"
)

// Output map suffixes.
const (
	SuffixNMO = "_NMO"
	SuffixBCR = "_BCR"
)

// Roles returns the four required roles in a stable order.
func Roles() []Role {
	return []Role{RoleNormal, RoleSpecular, RoleAmbient, RoleDiffuse}
}

// Suffix returns the literal filename token identifying the role.
func (r Role) Suffix() string {
	return "_" + string(r)
}

// SupportedExtension reports whether the file name carries one of the
// recognized image extensions. Matching is case-insensitive.
func SupportedExtension(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tga", ".tif", ".tiff", ".png":
		return true
	}
	return false
}

// Match reports whether the file name fulfils the given role: the role suffix
// token appears anywhere in the base name and the extension is supported.
// Both checks are case-insensitive, so Rock_NoHQ.TGA and rock_nohq.tga are
// the same role.
func Match(name string, role Role) bool {
	if !SupportedExtension(name) {
		return false
	}
	base := strings.ToLower(filepath.Base(name))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.Contains(base, role.Suffix())
}

// MatchOutput reports whether the file name is a packed NMO or BCR map with a
// supported extension. The relocation step uses this to pick up freshly
// written results.
func MatchOutput(name string) bool {
	if !SupportedExtension(name) {
		return false
	}
	base := strings.ToLower(filepath.Base(name))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.Contains(base, strings.ToLower(SuffixNMO)) ||
		strings.Contains(base, strings.ToLower(SuffixBCR))
}

// Stem derives the shared name stem from a role file name by stripping the
// extension and the last underscore-delimited token. A name without an
// underscore is returned whole; output names are built as
// <stem>_NMO.<ext> and <stem>_BCR.<ext>.
func Stem(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if idx := strings.LastIndex(base, "_"); idx >= 0 {
		return base[:idx]
	}
	return base
}

// OutputNames returns the NMO and BCR file names for a stem and extension.
func OutputNames(stem, ext string) (nmo, bcr string) {
	ext = strings.TrimPrefix(ext, ".")
	return stem + SuffixNMO + "." + ext, stem + SuffixBCR + "." + ext
}
