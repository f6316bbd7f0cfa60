package emulator

// Identifies an engine that can be bound to a subchannel. The values
// are the NVIDIA class ids the guest passes to BindObject
type EngineID uint32

const (
	ENGINE_FERMI_TWOD_A      EngineID = 0x902d // 2D blit engine
	ENGINE_MAXWELL_B         EngineID = 0xb197 // 3D graphics engine
	ENGINE_MAXWELL_COMPUTE_B EngineID = 0xb1c0 // Compute engine
)

func (id EngineID) String() string {
	switch id {
	case ENGINE_FERMI_TWOD_A:
		return "FERMI_TWOD_A"
	case ENGINE_MAXWELL_B:
		return "MAXWELL_B"
	case ENGINE_MAXWELL_COMPUTE_B:
		return "MAXWELL_COMPUTE_B"
	}
	return "unknown"
}

// Register write capability shared by all engines
type Engine interface {
	WriteRegister(method, value uint32)
}

// Capability set of the 3D engine. Its register writes also observe
// how many arguments are left in the current run, and it accepts
// uploaded macro programs
type Engine3D interface {
	WriteRegister(method, value, remaining uint32)
	SubmitMacroCode(entry uint32, code []uint32)
}
