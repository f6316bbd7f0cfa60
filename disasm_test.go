package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeozeozeo/gotegra/emulator"
)

func TestDisassemble(t *testing.T) {
	words := []uint32{
		emulator.BuildCommandHeader(0x200, 0, 2, emulator.MODE_INCREASING),
		0xa, 0xb,
		emulator.BuildCommandHeader(0x6c, 1, 0x42, emulator.MODE_INLINE),
	}

	var sb strings.Builder
	if err := disassemble(&sb, words); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	want := []string{
		"000000: [increasing] method 0x0200 subch 0 args 2",
		"000004:   0x0200 <- 0x0000000a",
		"000008:   0x0201 <- 0x0000000b",
		"00000c: [inline] method 0x006c subch 1 value 0x0042",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), sb.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d:\nexpected %q\ngot      %q", i, want[i], lines[i])
		}
	}
}

func TestDisassembleUnknownMode(t *testing.T) {
	if err := disassemble(&strings.Builder{}, []uint32{7 << 29}); err == nil {
		t.Error("expected an error for mode 7")
	}
}

func TestLoadWordsIgnoresTrailingBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream.bin")
	// 9 bytes is 2 words, the trailing byte is dropped
	data := []byte{0x78, 0x56, 0x34, 0x12, 2, 0, 0, 0, 3}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	words, err := loadWords(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 2 || words[0] != 0x12345678 || words[1] != 2 {
		t.Errorf("unexpected words: %#v", words)
	}
}
