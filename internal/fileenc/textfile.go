// Package fileenc encodes and decodes whole files through any Encoder:
// plain text files line by line, JSON files via their string leaves.
package fileenc

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/cipherpipe-go/internal/cipher"
	"github.com/cipherpipe-go/internal/errors"
)

// TextFile encodes and decodes .txt files line by line
type TextFile struct {
	enc cipher.Encoder
}

// NewTextFile creates a text file encoder over the given Encoder
func NewTextFile(enc cipher.Encoder) *TextFile {
	return &TextFile{enc: enc}
}

// Encode reads inPath, encodes each line, and writes the result to
// outPath. An empty outPath overwrites inPath.
func (t *TextFile) Encode(inPath, outPath string) error {
	return t.processLines(inPath, outPath, t.enc.Encode, "encoded")
}

// Decode reverses Encode line by line
func (t *TextFile) Decode(inPath, outPath string) error {
	return t.processLines(inPath, outPath, t.enc.Decode, "decoded")
}

func (t *TextFile) processLines(inPath, outPath string, fn func(string) (string, error), action string) error {
	if outPath == "" {
		outPath = inPath
	}
	if err := checkExt(inPath, ".txt"); err != nil {
		return err
	}
	if err := checkExt(outPath, ".txt"); err != nil {
		return err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return errors.NewInternalWithCause("failed to open input file", err)
	}
	defer in.Close()

	var b strings.Builder
	lines := 0
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line, err := fn(scanner.Text())
		if err != nil {
			return err
		}
		b.WriteString(line)
		b.WriteByte('\n')
		lines++
	}
	if err := scanner.Err(); err != nil {
		return errors.NewInternalWithCause("failed to read input file", err)
	}

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		return errors.NewInternalWithCause("failed to write output file", err)
	}

	log.Debug().
		Str("in", inPath).
		Str("out", outPath).
		Int("lines", lines).
		Msgf("%s text file", action)
	return nil
}

func checkExt(path, want string) error {
	if filepath.Ext(path) != want {
		return errors.NewValidationf("only %s files are supported, got %q", want, path)
	}
	return nil
}
