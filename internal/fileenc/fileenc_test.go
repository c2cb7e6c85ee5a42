package fileenc

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cipherpipe-go/internal/cipher"
	"github.com/cipherpipe-go/internal/errors"
)

func TestTextFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "plain.txt")
	enc := filepath.Join(dir, "encoded.txt")
	dec := filepath.Join(dir, "decoded.txt")

	content := "first line\nsecond line\nthird: !@#$%\n"
	if err := os.WriteFile(in, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	tf := NewTextFile(cipher.NewCaesar(5, false))
	if err := tf.Encode(in, enc); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	encoded, err := os.ReadFile(enc)
	if err != nil {
		t.Fatalf("failed to read encoded file: %v", err)
	}
	if string(encoded) == content {
		t.Error("Encode did not change the file contents")
	}

	if err := tf.Decode(enc, dec); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	decoded, err := os.ReadFile(dec)
	if err != nil {
		t.Fatalf("failed to read decoded file: %v", err)
	}
	if string(decoded) != content {
		t.Errorf("round-trip = %q, want %q", decoded, content)
	}
}

func TestTextFileInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	content := "overwrite me\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	tf := NewTextFile(cipher.NewAtbash(false))
	if err := tf.Encode(path, ""); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := tf.Decode(path, ""); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(got) != content {
		t.Errorf("round-trip = %q, want %q", got, content)
	}
}

func TestTextFileExtensionCheck(t *testing.T) {
	tf := NewTextFile(cipher.NewCaesar(3, false))
	if err := tf.Encode("notes.md", ""); !errors.IsValidation(err) {
		t.Errorf("expected validation error for non-txt input, got %v", err)
	}
	if err := tf.Encode("notes.txt", "out.bin"); !errors.IsValidation(err) {
		t.Errorf("expected validation error for non-txt output, got %v", err)
	}
}

func TestJSONFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "plain.json")
	enc := filepath.Join(dir, "encoded.json")
	dec := filepath.Join(dir, "decoded.json")

	doc := map[string]any{
		"title": "secret document",
		"count": float64(2),
		"items": []any{"alpha", "beta"},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := os.WriteFile(in, raw, 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	jf := NewJSONFile(cipher.NewCaesar(7, false))
	if err := jf.Encode(in, enc); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// the encoded file must stay valid JSON with non-string values intact
	encRaw, err := os.ReadFile(enc)
	if err != nil {
		t.Fatalf("failed to read encoded file: %v", err)
	}
	var encDoc map[string]any
	if err := json.Unmarshal(encRaw, &encDoc); err != nil {
		t.Fatalf("encoded file is not valid JSON: %v", err)
	}
	if encDoc["title"] == "secret document" {
		t.Error("string leaf was not encoded")
	}
	if encDoc["count"] != float64(2) {
		t.Error("numeric leaf should pass through untouched")
	}

	if err := jf.Decode(enc, dec); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	decRaw, err := os.ReadFile(dec)
	if err != nil {
		t.Fatalf("failed to read decoded file: %v", err)
	}
	var decDoc map[string]any
	if err := json.Unmarshal(decRaw, &decDoc); err != nil {
		t.Fatalf("decoded file is not valid JSON: %v", err)
	}
	if decDoc["title"] != "secret document" {
		t.Errorf("title = %q, want %q", decDoc["title"], "secret document")
	}
}

func TestJSONFileInvalidInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	jf := NewJSONFile(cipher.NewCaesar(3, false))
	if err := jf.Encode(path, ""); !errors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestJSONFileExtensionCheck(t *testing.T) {
	jf := NewJSONFile(cipher.NewCaesar(3, false))
	if err := jf.Encode("data.txt", ""); !errors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}
