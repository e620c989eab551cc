package converter

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"testing/quick"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

var literalPattern = regexp.MustCompile(`0x([0-9a-f]{2}), `)

// decodeLiterals recovers the bytes declared in a rendered header.
func decodeLiterals(t *testing.T, text string) []byte {
	t.Helper()
	var out []byte
	for _, m := range literalPattern.FindAllStringSubmatch(text, -1) {
		b, err := hex.DecodeString(m[1])
		if err != nil {
			t.Fatalf("bad literal %q: %v", m[0], err)
		}
		out = append(out, b...)
	}
	return out
}

func writeInput(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

type fakePlatform struct{ cause string }

func (p fakePlatform) Name() string           { return "fake" }
func (p fakePlatform) Cause(err error) string { return p.cause }

func TestConvert_WritesHeader(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	data := []byte{0x00, 0x0a, 0xff, 0x42}
	input := writeInput(t, inDir, "DA_Config.obk", data)

	c := New(zaptest.NewLogger(t), WithOutputDir(outDir))
	res, err := c.Convert(input)
	if err != nil {
		t.Fatal(err)
	}

	wantPath := filepath.Join(outDir, "DA_Config.h")
	if res.OutputPath != wantPath {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, wantPath)
	}
	if res.Identifier != "DA_Config" {
		t.Errorf("Identifier = %q, want DA_Config", res.Identifier)
	}
	if res.Size != len(data) {
		t.Errorf("Size = %d, want %d", res.Size, len(data))
	}

	got, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "const unsigned char DA_Config[] = {\n\n    0x00, 0x0a, 0xff, 0x42, \n};"
	if string(got) != want {
		t.Errorf("header = %q, want %q", got, want)
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := New(zap.NewNop(), WithOutputDir(dir))

	roundTrip := func(data []byte) bool {
		if len(data) == 0 {
			return true
		}
		input := writeInput(t, dir, "blob.bin", data)
		res, err := c.Convert(input)
		if err != nil {
			t.Log(err)
			return false
		}
		text, err := os.ReadFile(res.OutputPath)
		if err != nil {
			t.Log(err)
			return false
		}
		return bytes.Equal(decodeLiterals(t, string(text)), data)
	}
	if err := quick.Check(roundTrip, nil); err != nil {
		t.Error(err)
	}
}

func TestConvert_EmptyInput(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "empty.bin", nil)

	res, err := New(zaptest.NewLogger(t), WithOutputDir(dir)).Convert(input)
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(res.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "const unsigned char empty[] = {\n\n};" {
		t.Errorf("header = %q", got)
	}
	if n := len(decodeLiterals(t, string(got))); n != 0 {
		t.Errorf("literals = %d, want 0", n)
	}
}

func TestConvert_MultipleExtensions(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "a.tar.gz", []byte{1})

	res, err := New(zaptest.NewLogger(t), WithOutputDir(dir)).Convert(input)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(res.OutputPath) != "a.tar.h" {
		t.Errorf("output = %q, want a.tar.h", res.OutputPath)
	}
	got, _ := os.ReadFile(res.OutputPath)
	if !bytes.HasPrefix(got, []byte("const unsigned char a.tar[] = {")) {
		t.Errorf("identifier not used verbatim: %q", got)
	}
}

func TestConvert_OverwritesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "key.obk", []byte{0xde, 0xad})
	stale := filepath.Join(dir, "key.h")
	if err := os.WriteFile(stale, bytes.Repeat([]byte("stale"), 100), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(zaptest.NewLogger(t), WithOutputDir(dir)).Convert(input); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(stale)
	if string(got) != Render("key", []byte{0xde, 0xad}) {
		t.Errorf("existing file not replaced: %q", got)
	}
}

func TestConvert_MissingInput(t *testing.T) {
	dir := t.TempDir()
	c := New(zaptest.NewLogger(t), WithOutputDir(dir))

	_, err := c.Convert(filepath.Join(dir, "missing.obk"))
	var rerr *InputReadError
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want *InputReadError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v should wrap fs.ErrNotExist", err)
	}
	if rerr.Cause != "not found" {
		t.Errorf("Cause = %q, want not found", rerr.Cause)
	}
	if _, err := os.Stat(filepath.Join(dir, "missing.h")); !os.IsNotExist(err) {
		t.Errorf("output file should not exist, stat err = %v", err)
	}
}

func TestConvert_DirectoryAsInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "image.obk")
	if err := os.Mkdir(input, 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := New(zaptest.NewLogger(t), WithOutputDir(t.TempDir())).Convert(input)
	var rerr *InputReadError
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want *InputReadError", err)
	}
}

func TestConvert_UnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "DA_Config.obk", []byte{1, 2, 3})
	outDir := filepath.Join(dir, "no", "such", "dir")

	c := New(zaptest.NewLogger(t), WithOutputDir(outDir), WithPlatform(fakePlatform{cause: "disk full"}))
	_, err := c.Convert(input)

	var werr *OutputWriteError
	if !errors.As(err, &werr) {
		t.Fatalf("error = %v, want *OutputWriteError", err)
	}
	if werr.Path != filepath.Join(outDir, "DA_Config.h") {
		t.Errorf("Path = %q", werr.Path)
	}
	if werr.Cause != "disk full" {
		t.Errorf("Cause = %q, want value from platform", werr.Cause)
	}
	var rerr *InputReadError
	if errors.As(err, &rerr) {
		t.Error("write failure must not be reported as a read failure")
	}
}

func TestConvert_Logging(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "DA_Config.obk", []byte{1, 2, 3})

	core, logs := observer.New(zapcore.DebugLevel)
	if _, err := New(zap.New(core), WithOutputDir(dir)).Convert(input); err != nil {
		t.Fatal(err)
	}

	written := logs.FilterMessage("Header written").All()
	if len(written) != 1 {
		t.Fatalf("got %d 'Header written' entries, want 1", len(written))
	}
	entry := written[0]
	if entry.LoggerName != "converter" {
		t.Errorf("LoggerName = %q, want converter", entry.LoggerName)
	}
	fields := entry.ContextMap()
	if fields["identifier"] != "DA_Config" {
		t.Errorf("identifier field = %v", fields["identifier"])
	}
	if fields["bytes"] != int64(3) {
		t.Errorf("bytes field = %v (%T), want 3", fields["bytes"], fields["bytes"])
	}

	_, err := New(zap.New(core), WithOutputDir(dir)).Convert(filepath.Join(dir, "absent.bin"))
	if err == nil {
		t.Fatal("expected error")
	}
	failed := logs.FilterMessage("Failed to read input").All()
	if len(failed) != 1 || failed[0].Level != zapcore.ErrorLevel {
		t.Errorf("read failure not logged at error level: %+v", failed)
	}
}
