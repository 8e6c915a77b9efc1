// Package identity derives deterministic UUIDs for deliveries and the files
// inside them, so repeated packs of the same delivery produce the same IDs.
package identity

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// NamespaceDelivery is the UUID v5 namespace for delivery IDs, derived from
// the URL namespace and "assetpack/delivery/v1".
var NamespaceDelivery = uuid.NewSHA1(uuid.NameSpaceURL, []byte("assetpack/delivery/v1"))

// DeliveryID returns the UUID v5 of the project/asset/version triple.
// Fields are trimmed and compared case-insensitively.
//
// Examples:
//   - {Proj, CrateA, v001} and {proj, cratea, V001} share an ID
//   - {Proj, CrateA, v002} gets a different ID
func DeliveryID(id assetpack.Identity) uuid.UUID {
	name := strings.Join([]string{
		normalize(id.Project),
		normalize(id.Asset),
		normalize(id.Version),
	}, "/")
	return uuid.NewSHA1(NamespaceDelivery, []byte(name))
}

// ItemID returns the UUID v5 of a file inside a delivery. relDst is the
// destination relative to the delivery folder, e.g. "export/fbx/CrateA_v001.fbx".
// The delivery ID is the namespace, so the same relative path in two
// deliveries yields two IDs.
func ItemID(delivery uuid.UUID, relDst string) uuid.UUID {
	return uuid.NewSHA1(delivery, []byte(normalizePath(relDst)))
}

// RelativeDestination returns dst relative to deliveryDir with forward
// slashes, or dst itself when it lies outside deliveryDir.
func RelativeDestination(deliveryDir, dst string) string {
	rel, err := filepath.Rel(deliveryDir, dst)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(dst)
	}
	return filepath.ToSlash(rel)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizePath lowercases, forces '/' and drops a leading "./".
func normalizePath(p string) string {
	p = strings.ToLower(strings.ReplaceAll(p, "\\", "/"))
	return strings.TrimPrefix(p, "./")
}
