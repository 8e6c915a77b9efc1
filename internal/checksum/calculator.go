package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// Calculator computes hex digests of file content.
type Calculator interface {
	// Algorithm returns the hash algorithm in use.
	Algorithm() assetpack.HashAlgorithm

	// HashReader consumes r and returns the hex digest of its bytes.
	HashReader(r io.Reader) (string, error)

	// HashFile returns the hex digest of the file at path.
	HashFile(fsys filesystem.FileSystem, path string) (string, error)
}

// Streaming implements Calculator with fixed-size chunked reads.
// Streaming is a small value type and is safe for concurrent use.
type Streaming struct {
	algo      assetpack.HashAlgorithm
	chunkSize int
}

// New creates a calculator for algo. An empty algo selects the default.
func New(algo assetpack.HashAlgorithm) (Streaming, error) {
	parsed, err := assetpack.ParseHashAlgorithm(string(algo))
	if err != nil {
		return Streaming{}, err
	}
	return Streaming{algo: parsed, chunkSize: assetpack.HashChunkSize}, nil
}

// MustNew is like New but panics on an unsupported algorithm.
func MustNew(algo assetpack.HashAlgorithm) Streaming {
	c, err := New(algo)
	if err != nil {
		panic(err)
	}
	return c
}

// Algorithm returns the hash algorithm in use.
func (c Streaming) Algorithm() assetpack.HashAlgorithm {
	return c.algo
}

// HashReader consumes r and returns the hex digest of its bytes.
func (c Streaming) HashReader(r io.Reader) (string, error) {
	h := c.newHash()
	buf := make([]byte, c.bufferSize())
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashFile returns the hex digest of the file at path.
func (c Streaming) HashFile(fsys filesystem.FileSystem, path string) (string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	digest, err := c.HashReader(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return digest, nil
}

// HashBytes returns the hex digest of content.
func (c Streaming) HashBytes(content []byte) string {
	h := c.newHash()
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

func (c Streaming) newHash() hash.Hash {
	if c.algo == assetpack.HashMD5 {
		return md5.New()
	}
	return sha1.New()
}

func (c Streaming) bufferSize() int {
	if c.chunkSize <= 0 {
		return assetpack.HashChunkSize
	}
	return c.chunkSize
}

// Verify Streaming implements the interface at compile time
var _ Calculator = Streaming{}
