package emulator

import "fmt"

// MemoryAccess is the port the command processor uses to reach the
// memory its command streams live in
type MemoryAccess interface {
	// Translates a GPU virtual address into an offset in the linear
	// address space
	Translate(addr uint64) (uint32, error)
	// Loads the 32 bit little endian word at a translated offset
	Load32(offset uint32) uint32
}

// One window of the GPU virtual address space mapped onto RAM
type Mapping struct {
	Range Range  // GPU virtual window
	Base  uint32 // Offset of the window in the backing RAM
}

// Maps GPU virtual address windows onto linear RAM. It stores all of
// the mappings created by the surrounding emulator
type MemoryManager struct {
	Ram      *RAM      // Backing storage
	Mappings []Mapping // Active windows, checked in order
}

// Creates a new memory manager instance backed by `ram`
func NewMemoryManager(ram *RAM) *MemoryManager {
	return &MemoryManager{Ram: ram}
}

// Maps `length` bytes of the GPU virtual address space starting at
// `gpuAddr` onto RAM starting at `base`
func (mm *MemoryManager) Map(gpuAddr uint64, base, length uint32) {
	mm.Mappings = append(mm.Mappings, Mapping{
		Range: NewRange(gpuAddr, uint64(length)),
		Base:  base,
	})
}

// Translates a GPU virtual address into the offset of the backing RAM
func (mm *MemoryManager) Translate(addr uint64) (uint32, error) {
	for i := range mm.Mappings {
		mapping := &mm.Mappings[i]
		if mapping.Range.Contains(addr) {
			return mapping.Base + uint32(mapping.Range.Offset(addr)), nil
		}
	}
	return 0, fmt.Errorf("memory: address 0x%x: %w", addr, ErrUnmappedAddress)
}

// Returns the 32 bit little endian word at `offset`
func (mm *MemoryManager) Load32(offset uint32) uint32 {
	return mm.Ram.Load32(offset)
}
