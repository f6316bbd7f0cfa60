package main

import (
	"github.com/BurntSushi/toml"

	"github.com/zeozeozeo/gotegra/emulator"
)

// sessionConfig describes a replay session: how much GPU-visible
// memory to allocate, which windows of the GPU virtual address space
// map onto it, and which command lists to process, in order.
type sessionConfig struct {
	// RAMSize is the size of the backing memory in bytes. Defaults to
	// 4MB when omitted.
	RAMSize uint32 `toml:"ram_size"`
	// Mappings are the GPU virtual address windows to create before
	// processing starts.
	Mappings []mappingConfig `toml:"mapping"`
	// CommandLists are processed in the order they appear.
	CommandLists []commandListConfig `toml:"commandlist"`
}

type mappingConfig struct {
	GPUAddr uint64 `toml:"gpu_addr"` // Start of the window in the GPU address space
	Base    uint32 `toml:"base"`     // Offset of the window in the backing memory
	Length  uint32 `toml:"length"`   // Window length in bytes
}

type commandListConfig struct {
	File    string `toml:"file"`     // Binary file of little endian command words
	GPUAddr uint64 `toml:"gpu_addr"` // Where the list lives in the GPU address space
	Words   uint32 `toml:"words"`    // Word count to process; 0 means the whole file
}

// loadConfig loads a replay session config from a TOML file.
func loadConfig(path string) (*sessionConfig, error) {
	c := sessionConfig{RAMSize: emulator.RAM_DEFAULT_SIZE}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
