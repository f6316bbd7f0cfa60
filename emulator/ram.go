package emulator

const (
	RAM_DEFAULT_SIZE = 4 * 1024 * 1024 // Default GPU-visible memory: 4MB
)

// Linear little endian memory the command streams live in
type RAM struct {
	Data []byte // RAM buffer
}

// Creates a new RAM instance of `size` bytes filled with garbage
// values, so uninitialized reads are easy to spot
func NewRAM(size uint32) *RAM {
	ram := &RAM{Data: make([]byte, size)}
	for i := 0; i < len(ram.Data); i++ {
		ram.Data[i] = 0xcd
	}
	return ram
}

// Load a 32 bit little endian word at `offset`
func (ram *RAM) Load32(offset uint32) uint32 {
	var v uint32
	for i := uint32(0); i < 4; i++ {
		v |= uint32(ram.Data[offset+i]) << (i * 8)
	}
	return v
}

// Store a 32 bit little endian word `val` into `offset`
func (ram *RAM) Store32(offset, val uint32) {
	for i := uint32(0); i < 4; i++ {
		ram.Data[offset+i] = byte(val >> (i * 8))
	}
}

// Copies `data` into RAM starting at `offset`
func (ram *RAM) WriteSlice(offset uint32, data []byte) {
	copy(ram.Data[offset:], data)
}

// Stores the words of `words` as a little endian sequence starting at
// `offset`
func (ram *RAM) WriteWords(offset uint32, words []uint32) {
	for i, word := range words {
		ram.Store32(offset+uint32(i)*4, word)
	}
}
