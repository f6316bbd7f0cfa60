package emulator

// A window in the GPU virtual address space
type Range struct {
	Start  uint64 // Start address
	Length uint64 // Length of the mapping
}

func NewRange(start uint64, length uint64) Range {
	return Range{Start: start, Length: length}
}

// Returns whether `addr` is located inside this range
func (r *Range) Contains(addr uint64) bool {
	return addr >= r.Start && addr < r.Start+r.Length
}

// Returns the offset between `addr` and the `Start` of the range.
// Does not check if the range contains the address, so if `addr`
// is smaller than `Start`, there will be an overflow
func (r *Range) Offset(addr uint64) uint64 {
	return addr - r.Start
}
