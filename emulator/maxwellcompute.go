package emulator

import "github.com/sirupsen/logrus"

const (
	COMPUTE_NUM_REGS = 0xcf8 // Register file size of the MAXWELL_COMPUTE_B class
)

// The compute engine. Register writes are stored; kernel dispatch is
// not emulated here
type MaxwellCompute struct {
	Regs [COMPUTE_NUM_REGS]uint32 // Register file
	Log  *logrus.Entry
}

func NewMaxwellCompute(log *logrus.Entry) *MaxwellCompute {
	return &MaxwellCompute{Log: log.WithField("engine", "compute")}
}

// Handles a register write to this engine
func (engine *MaxwellCompute) WriteRegister(method, value uint32) {
	if method >= COMPUTE_NUM_REGS {
		engine.Log.Errorf("register 0x%x out of range, write dropped", method)
		return
	}
	engine.Regs[method] = value
	engine.Log.Tracef("register 0x%x <- 0x%08x", method, value)
}

// Returns the current value of a register
func (engine *MaxwellCompute) Register(method uint32) uint32 {
	return engine.Regs[method]
}
