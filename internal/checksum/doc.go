// Package checksum provides streaming file content hashing.
//
// Two algorithms are supported:
//
//   - sha1 (default): 160-bit digest used for delivery integrity checks
//   - md5: faster, weaker 128-bit alternative
//
// Files are read in fixed-size chunks so arbitrarily large scene caches and
// texture sets hash in constant memory.
//
// # Example Usage
//
//	calculator, err := checksum.New(assetpack.HashSHA1)
//	digest, err := calculator.HashFile(fsys, "/drop/geo/CrateA_v001.fbx")
//
// # Thread Safety
//
// Calculator values hold no state between calls and are safe for concurrent use.
package checksum
