package planner

import (
	"strings"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// Delivery categories.
const (
	CategoryTextures    = "textures"
	CategoryDocs        = "docs"
	CategorySourceMaya  = "source/maya"
	CategorySourceMax   = "source/max"
	CategorySourceOther = "source/other"
	CategoryOther       = "other"
)

var (
	textureExts = setOf("png", "jpg", "jpeg", "tga", "tif", "tiff", "exr", "hdr", "bmp")
	docExts     = setOf("md", "txt", "pdf", "csv", "json", "xml", "yml", "yaml")
	mayaExts    = setOf("ma", "mb")
	maxExts     = setOf("max")

	exportCategories = map[string]string{
		"fbx":  "export/fbx",
		"abc":  "export/abc",
		"usd":  "export/usd",
		"usda": "export/usd",
		"usdc": "export/usd",
		"obj":  "export/obj",
		"gltf": "export/gltf",
		"glb":  "export/gltf",
	}
)

func setOf(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, item := range items {
		m[item] = struct{}{}
	}
	return m
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

// Categorize picks the delivery category of a file. Folder hints in the
// relative path win over the extension. The result is never empty.
func Categorize(f assetpack.FileRecord) string {
	ext := strings.ToLower(f.Ext)

	segments := make(map[string]struct{})
	for _, seg := range strings.Split(strings.ToLower(strings.ReplaceAll(f.RelPath, "\\", "/")), "/") {
		segments[seg] = struct{}{}
	}

	switch {
	case has(segments, "tex") || has(segments, "textures"):
		return CategoryTextures
	case has(segments, "docs") || has(segments, "doc"):
		return CategoryDocs
	case has(segments, "source"):
		switch {
		case has(mayaExts, ext) || has(segments, "maya"):
			return CategorySourceMaya
		case has(maxExts, ext) || has(segments, "max"):
			return CategorySourceMax
		default:
			return CategorySourceOther
		}
	}

	switch {
	case has(textureExts, ext):
		return CategoryTextures
	case has(docExts, ext):
		return CategoryDocs
	case has(mayaExts, ext):
		return CategorySourceMaya
	case has(maxExts, ext):
		return CategorySourceMax
	}
	if category, ok := exportCategories[ext]; ok {
		return category
	}
	return CategoryOther
}
