package fileenc

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/cipherpipe-go/internal/cipher"
	"github.com/cipherpipe-go/internal/errors"
	"github.com/cipherpipe-go/internal/walker"
)

// JSONFile encodes and decodes the string leaves of .json files while
// preserving structure, keys, and non-string values
type JSONFile struct {
	walker *walker.Walker
}

// NewJSONFile creates a JSON file encoder over the given Encoder
func NewJSONFile(enc cipher.Encoder) *JSONFile {
	return &JSONFile{walker: walker.New(enc)}
}

// Encode reads inPath, encodes every string leaf, and writes the result
// to outPath. An empty outPath overwrites inPath.
func (j *JSONFile) Encode(inPath, outPath string) error {
	return j.process(inPath, outPath, j.walker.Encode, "encoded")
}

// Decode reverses Encode over the same structure
func (j *JSONFile) Decode(inPath, outPath string) error {
	return j.process(inPath, outPath, j.walker.Decode, "decoded")
}

func (j *JSONFile) process(inPath, outPath string, fn func(any) (any, error), action string) error {
	if outPath == "" {
		outPath = inPath
	}
	if err := checkExt(inPath, ".json"); err != nil {
		return err
	}
	if err := checkExt(outPath, ".json"); err != nil {
		return err
	}

	raw, err := os.ReadFile(inPath)
	if err != nil {
		return errors.NewInternalWithCause("failed to read input file", err)
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return errors.NewValidationf("input is not valid JSON: %v", err)
	}

	data, err = fn(data)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.NewInternalWithCause("failed to marshal output", err)
	}

	if err := os.WriteFile(outPath, append(out, '\n'), 0o644); err != nil {
		return errors.NewInternalWithCause("failed to write output file", err)
	}

	log.Debug().
		Str("in", inPath).
		Str("out", outPath).
		Msgf("%s json file", action)
	return nil
}
