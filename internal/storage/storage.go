// Package storage reads source text and reads and writes compressed
// artifacts on the local filesystem.
//
// Writes go to a temporary file in the destination directory which is then
// renamed over the destination, so a failed operation never leaves partial
// output behind.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	huffman "github.com/ilindan-dev/huff-cli"
)

var log = logging.MustGetLogger("huff/storage")

// Alphabet is the set of bytes accepted as source text.
type Alphabet int

const (
	// ASCII accepts bytes 0x00 .. 0x7f.
	ASCII Alphabet = iota

	// Bytes accepts every byte.
	Bytes
)

// Contains reports whether b belongs to the alphabet.
func (alphabet Alphabet) Contains(b byte) bool {
	switch alphabet {
	case Bytes:
		return true
	default:
		return b < 0x80
	}
}

func (alphabet Alphabet) String() string {
	switch alphabet {
	case ASCII:
		return "ascii"
	case Bytes:
		return "bytes"
	default:
		return fmt.Sprintf("Alphabet(%d)", int(alphabet))
	}
}

// EncodingError reports the first byte of a source file outside the
// accepted Alphabet.  It matches huffman.ErrInputEncoding under errors.Is.
type EncodingError struct {
	Path     string
	Offset   int
	Byte     byte
	Alphabet Alphabet
}

func (err *EncodingError) Error() string {
	return fmt.Sprintf("%v: %s: byte 0x%02x at offset %d is not %s", huffman.ErrInputEncoding, err.Path, err.Byte, err.Offset, err.Alphabet)
}

// Unwrap returns huffman.ErrInputEncoding.
func (err *EncodingError) Unwrap() error {
	return huffman.ErrInputEncoding
}

// FileStore implements text and artifact storage on the local filesystem.
type FileStore struct {
	// Alphabet restricts the bytes ReadText accepts.
	Alphabet Alphabet
}

// ReadText reads the whole file at path.  A missing file is reported as
// huffman.ErrInputNotFound and a byte outside the store's Alphabet as an
// *EncodingError.
func (store FileStore) ReadText(path string) ([]byte, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	for index, b := range data {
		if !store.Alphabet.Contains(b) {
			return nil, &EncodingError{Path: path, Offset: index, Byte: b, Alphabet: store.Alphabet}
		}
	}
	log.Debugf("read %d bytes of text from %s", len(data), path)
	return data, nil
}

// WriteText replaces the file at path with text.
func (store FileStore) WriteText(path string, text []byte) error {
	return writeAtomic(path, text)
}

// ReadArtifact reads and parses the artifact at path.  A missing file is
// reported as huffman.ErrInputNotFound and an unparseable one as
// huffman.ErrArtifactCorrupt.
func (store FileStore) ReadArtifact(path string) (huffman.Artifact, error) {
	data, err := readFile(path)
	if err != nil {
		return huffman.Artifact{}, err
	}

	var a huffman.Artifact
	if err := a.UnmarshalBinary(data); err != nil {
		return huffman.Artifact{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("read artifact from %s: %d table entries, %d packed bytes", path, len(a.Frequencies), len(a.Packed))
	return a, nil
}

// WriteArtifact serializes a and replaces the file at path with it.
func (store FileStore) WriteArtifact(path string, a huffman.Artifact) error {
	raw, err := a.MarshalBinary()
	if err != nil {
		return err
	}
	return writeAtomic(path, raw)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", huffman.ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func writeAtomic(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	log.Debugf("wrote %d bytes to %s", len(data), path)
	return nil
}
