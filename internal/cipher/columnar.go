package cipher

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/cipherpipe-go/internal/errors"
)

// Columnar writes text row-wise into a grid of len(key) columns, padding
// the final row with filler, then reads columns off in key order. Column
// order comes from a stable sort of the key characters, ties broken by
// original column index, so repeated key characters are allowed.
type Columnar struct {
	key    string
	filler byte
	// colAt[rank] is the original column read at that rank
	colAt []int
}

// NewColumnar creates a Columnar Transposition cipher. The key is
// case-insensitive and must be non-empty; the filler must be a printable
// ASCII character.
func NewColumnar(key string, filler byte) (*Columnar, error) {
	if key == "" {
		return nil, errors.NewValidation("columnar key cannot be empty")
	}
	if filler < domainLo || filler > domainHi {
		return nil, errors.NewValidationf("columnar filler %q is outside printable ASCII", filler)
	}

	key = strings.ToUpper(key)
	return &Columnar{key: key, filler: filler, colAt: columnOrder(key)}, nil
}

// Encode reads the padded grid column by column in key order
func (c *Columnar) Encode(text string) (string, error) {
	if err := checkDomain(text); err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}
	if strings.IndexByte(text, c.filler) >= 0 {
		log.Warn().Str("filler", string(c.filler)).Msg("filler character present in plaintext, decode may strip real characters")
	}

	cols := len(c.key)
	rows := (len(text) + cols - 1) / cols

	out := make([]byte, 0, rows*cols)
	for _, col := range c.colAt {
		for row := 0; row < rows; row++ {
			i := row*cols + col
			if i < len(text) {
				out = append(out, text[i])
			} else {
				out = append(out, c.filler)
			}
		}
	}
	return string(out), nil
}

// Decode inverts the column permutation and strips trailing filler
func (c *Columnar) Decode(text string) (string, error) {
	if err := checkDomain(text); err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}

	cols := len(c.key)
	rows := len(text) / cols

	out := make([]byte, rows*cols)
	pos := 0
	for _, col := range c.colAt {
		for row := 0; row < rows; row++ {
			out[row*cols+col] = text[pos]
			pos++
		}
	}
	return strings.TrimRight(string(out), string(c.filler)), nil
}

// columnOrder returns the columns in read order: key characters sorted,
// ties kept in original column order
func columnOrder(key string) []int {
	cols := make([]int, len(key))
	for i := range cols {
		cols[i] = i
	}
	sort.SliceStable(cols, func(a, b int) bool {
		return key[cols[a]] < key[cols[b]]
	})
	return cols
}
