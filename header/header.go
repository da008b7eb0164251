// Package header renders a palette as a C header with a statically initialized array.
package header

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/larschri/palettegen/palette"
)

const (
	DefaultInput  = "doom_palette.csv"
	DefaultOutput = "src/doom_palette.h"

	prologue = "// THIS IS GENERATED CODE\n\n" +
		"#include <stdint.h>\n\n" +
		"static const uint8_t DOOM_PALETTE[256][3] = {\n"
	epilogue = "};\n"
)

// Options controls a Generate run
type Options struct {
	Input  string
	Output string

	// Strict rejects palettes that are not exactly palette.Size valid colors
	Strict bool
}

// Write writes the header for p to w
func Write(w io.Writer, p palette.Palette) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(prologue)
	for _, rec := range p {
		fmt.Fprintf(bw, "  {%s, %s, %s},\n", rec.R, rec.G, rec.B)
	}
	bw.WriteString(epilogue)
	return bw.Flush()
}

// Generate reads opts.Input and writes the header to opts.Output.
// The output is written to a temporary file in the same directory and renamed
// into place once complete, so a failed run leaves any existing output as it was.
func Generate(opts Options) error {
	p, err := palette.ReadFile(opts.Input)
	if err != nil {
		return err
	}

	if opts.Strict {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%s: %w", opts.Input, err)
		}
	} else if len(p) != palette.Size {
		log.Printf("warning: %s has %d entries but the array is declared with %d", opts.Input, len(p), palette.Size)
	}

	return writeFile(opts.Output, p)
}

func writeFile(path string, p palette.Palette) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, p); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	mode := os.FileMode(0644)
	if fi, statErr := os.Stat(path); statErr == nil {
		mode = fi.Mode().Perm()
	}
	if err = tmp.Chmod(mode); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
