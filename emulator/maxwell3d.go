package emulator

import "github.com/sirupsen/logrus"

const (
	MAXWELL3D_NUM_REGS = 0xe00 // Register file size of the MAXWELL_B class
)

// The 3D graphics engine. Register writes and uploaded macro programs
// are stored; drawing and macro execution are not emulated here
type Maxwell3D struct {
	Regs   [MAXWELL3D_NUM_REGS]uint32 // Register file
	Macros map[uint32][]uint32        // Uploaded macro programs by entry
	Log    *logrus.Entry
}

func NewMaxwell3D(log *logrus.Entry) *Maxwell3D {
	return &Maxwell3D{
		Macros: make(map[uint32][]uint32),
		Log:    log.WithField("engine", "maxwell3d"),
	}
}

// Handles a register write to this engine. `remaining` is the number
// of argument words left in the current run; the 3D engine is the only
// one that observes it, since macro call arguments arrive as a run and
// the engine must know when the last one lands
func (engine *Maxwell3D) WriteRegister(method, value, remaining uint32) {
	if method >= MAXWELL3D_NUM_REGS {
		engine.Log.Errorf("register 0x%x out of range, write dropped", method)
		return
	}
	engine.Regs[method] = value
	engine.Log.Tracef("register 0x%x <- 0x%08x (%d remaining)", method, value, remaining)
}

// Stores an uploaded macro program under `entry`, replacing any
// previous program at that entry
func (engine *Maxwell3D) SubmitMacroCode(entry uint32, code []uint32) {
	engine.Log.Debugf("macro entry 0x%x uploaded, %d words", entry, len(code))
	engine.Macros[entry] = code
}

// Returns the current value of a register
func (engine *Maxwell3D) Register(method uint32) uint32 {
	return engine.Regs[method]
}

// Returns the macro program uploaded under `entry`, or nil
func (engine *Maxwell3D) MacroCode(entry uint32) []uint32 {
	return engine.Macros[entry]
}
