package profile

import (
	"strings"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// Built-in profile names.
const (
	Game   = "Game"
	VFX    = "VFX"
	Mobile = "Mobile"
)

// builtinNames keeps the display order of the built-ins.
var builtinNames = []string{Game, VFX, Mobile}

// Defaults returns fresh copies of the built-in profiles keyed by name.
func Defaults() map[string]assetpack.Profile {
	return map[string]assetpack.Profile{
		Game: assetpack.NewProfile(Game,
			[]string{"geo", "tex", "export", "source"},
			[]string{
				"fbx", "obj", "gltf", "glb", "usd", "usda", "usdc",
				"png", "jpg", "jpeg", "tga", "tif", "tiff", "exr",
				"json", "txt", "md", "pdf",
				"zip", "7z",
			},
			assetpack.AllRules()),
		VFX: assetpack.NewProfile(VFX,
			[]string{"geo", "tex", "rig", "cache", "export", "source", "docs"},
			[]string{
				"ma", "mb", "max", "blend",
				"abc", "fbx", "usd", "usda", "usdc", "obj",
				"png", "jpg", "jpeg", "tga", "tif", "tiff", "exr", "hdr",
				"json", "xml", "txt", "md", "pdf", "csv",
				"mtl",
				"zip", "7z", "rar",
			},
			assetpack.AllRules()),
		Mobile: assetpack.NewProfile(Mobile,
			[]string{"geo", "tex", "export", "docs"},
			[]string{
				"fbx", "gltf", "glb",
				"png", "jpg", "jpeg",
				"json", "txt", "md", "pdf",
				"zip",
			},
			assetpack.AllRules()),
	}
}

// BuiltinNames returns the built-in profile names in display order.
func BuiltinNames() []string {
	return append([]string(nil), builtinNames...)
}

// Lookup resolves a built-in profile by name, ignoring case and surrounding space.
func Lookup(name string) (assetpack.Profile, bool) {
	wanted := strings.TrimSpace(name)
	for key, p := range Defaults() {
		if strings.EqualFold(key, wanted) {
			return p, true
		}
	}
	return assetpack.Profile{}, false
}

// LookupOrDefault resolves a built-in profile, falling back to VFX for unknown names.
func LookupOrDefault(name string) assetpack.Profile {
	if p, ok := Lookup(name); ok {
		return p
	}
	return Defaults()[VFX]
}

// IsBuiltin reports whether name refers to a built-in profile.
func IsBuiltin(name string) bool {
	_, ok := Lookup(name)
	return ok
}
