// Package workflow drives the codec for the huff command: read the input,
// run the core, optionally draw the tree, and write the output.
package workflow

import (
	"fmt"
	"io"

	"github.com/op/go-logging"

	huffman "github.com/ilindan-dev/huff-cli"
)

var log = logging.MustGetLogger("huff/workflow")

// TextStore supplies source text and accepts decoded text.
type TextStore interface {
	ReadText(path string) ([]byte, error)
	WriteText(path string, text []byte) error
}

// ArtifactStore persists compressed artifacts.
type ArtifactStore interface {
	ReadArtifact(path string) (huffman.Artifact, error)
	WriteArtifact(path string, a huffman.Artifact) error
}

// Store combines TextStore and ArtifactStore.
type Store interface {
	TextStore
	ArtifactStore
}

// Options configures one Encode or Decode run.
type Options struct {
	Input  string
	Output string

	// PrintTree writes the Huffman tree to TreeOutput.
	PrintTree  bool
	TreeOutput io.Writer
}

// Stats summarizes an Encode run.
type Stats struct {
	OriginalSize   int
	CompressedSize int
}

// Ratio returns OriginalSize / CompressedSize, or 0 when nothing was
// compressed.
func (stats Stats) Ratio() float64 {
	if stats.CompressedSize == 0 {
		return 0
	}
	return float64(stats.OriginalSize) / float64(stats.CompressedSize)
}

// Encode compresses opts.Input into an artifact at opts.Output.  Empty input
// produces the empty artifact.
func Encode(store Store, opts Options) (Stats, error) {
	log.Infof("reading file: %s", opts.Input)
	text, err := store.ReadText(opts.Input)
	if err != nil {
		return Stats{}, err
	}

	if len(text) == 0 {
		log.Notice("file is empty, creating an empty compressed file")
		empty, _ := huffman.Compress(nil)
		return Stats{}, store.WriteArtifact(opts.Output, empty)
	}

	log.Info("building Huffman tree and generating codes")
	var e huffman.Encoder
	e.Init(huffman.CountFrequencies(text))
	if log.IsEnabledFor(logging.DEBUG) {
		codes := e.Codes()
		log.Debugf("%d symbols, code lengths %d .. %d bits", len(codes), codes.MinSize(), codes.MaxSize())
	}

	if opts.PrintTree {
		if err := printTree(opts.TreeOutput, "Encode", e.Tree()); err != nil {
			return Stats{}, err
		}
	}

	packed, err := e.Encode(text)
	if err != nil {
		return Stats{}, err
	}

	a := huffman.Artifact{Frequencies: e.Frequencies(), Packed: packed}
	if err := store.WriteArtifact(opts.Output, a); err != nil {
		return Stats{}, err
	}

	stats := Stats{OriginalSize: len(text), CompressedSize: len(packed)}
	log.Info("encoding complete")
	log.Infof("original size: %d bytes", stats.OriginalSize)
	log.Infof("compressed size: %d bytes", stats.CompressedSize)
	log.Infof("compression ratio: %.2fx", stats.Ratio())
	return stats, nil
}

// Decode restores the text of the artifact at opts.Input into opts.Output.
// An empty artifact produces an empty file without rebuilding a tree.
func Decode(store Store, opts Options) error {
	log.Infof("reading compressed file: %s", opts.Input)
	a, err := store.ReadArtifact(opts.Input)
	if err != nil {
		return err
	}

	if a.IsEmpty() {
		log.Notice("compressed file is empty, creating an empty output file")
		text, err := huffman.Decompress(a)
		if err != nil {
			return err
		}
		return store.WriteText(opts.Output, text)
	}

	log.Info("rebuilding Huffman tree and decoding data")
	var d huffman.Decoder
	d.Init(a.Frequencies)

	if opts.PrintTree {
		if err := printTree(opts.TreeOutput, "Decode", d.Tree()); err != nil {
			return err
		}
	}

	text, err := d.Decode(a.Packed)
	if err != nil {
		return err
	}
	if err := store.WriteText(opts.Output, text); err != nil {
		return err
	}

	log.Infof("decoding complete, output saved to: %s", opts.Output)
	return nil
}

func printTree(w io.Writer, direction string, root huffman.Node) error {
	if w == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\n--- Huffman Tree (%s) ---\n", direction); err != nil {
		return err
	}
	if err := huffman.RenderTree(w, root); err != nil {
		return err
	}
	_, err := io.WriteString(w, "---------------------------\n\n")
	return err
}
