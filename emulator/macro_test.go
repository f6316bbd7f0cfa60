package emulator

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMacroUploadLifecycle(t *testing.T) {
	macro := NewMacroUpload()

	if macro.Uploading {
		t.Error("new upload state should be idle")
	}
	if err := macro.Push(1); !errors.Is(err, ErrMacroCodeWithoutEntry) {
		t.Errorf("push while idle: expected ErrMacroCodeWithoutEntry, got %v", err)
	}

	macro.Begin(7)
	for _, w := range []uint32{0x10, 0x20, 0x30} {
		if err := macro.Push(w); err != nil {
			t.Fatal(err)
		}
	}

	entry, code := macro.Take()
	if entry != 7 {
		t.Errorf("expected entry 7, got %d", entry)
	}
	if diff := cmp.Diff([]uint32{0x10, 0x20, 0x30}, code); diff != "" {
		t.Errorf("code mismatch (-want +got):\n%s", diff)
	}
	if macro.Uploading {
		t.Error("upload state should be idle after Take")
	}
}

func TestMacroUploadBeginResets(t *testing.T) {
	macro := NewMacroUpload()

	macro.Begin(1)
	macro.Push(0xaa)
	macro.Push(0xbb)

	// a new entry silently discards the partial upload
	macro.Begin(2)
	macro.Push(0xcc)

	entry, code := macro.Take()
	if entry != 2 {
		t.Errorf("expected entry 2, got %d", entry)
	}
	if diff := cmp.Diff([]uint32{0xcc}, code); diff != "" {
		t.Errorf("code mismatch (-want +got):\n%s", diff)
	}
}

func TestMacroUploadTakeCopies(t *testing.T) {
	macro := NewMacroUpload()
	macro.Begin(1)
	macro.Push(0x11)

	_, code := macro.Take()

	// reusing the state must not alias the handed out slice
	macro.Begin(2)
	macro.Push(0x99)
	if code[0] != 0x11 {
		t.Errorf("taken code was clobbered: 0x%x", code[0])
	}
}
