package emulator

import "github.com/sirupsen/logrus"

const (
	FERMI2D_NUM_REGS = 0x258 // Register file size of the FERMI_TWOD_A class
)

// The 2D blit engine. Register writes are stored; the blit operations
// themselves are not emulated here
type Fermi2D struct {
	Regs [FERMI2D_NUM_REGS]uint32 // Register file
	Log  *logrus.Entry
}

func NewFermi2D(log *logrus.Entry) *Fermi2D {
	return &Fermi2D{Log: log.WithField("engine", "fermi2d")}
}

// Handles a register write to this engine
func (engine *Fermi2D) WriteRegister(method, value uint32) {
	if method >= FERMI2D_NUM_REGS {
		engine.Log.Errorf("register 0x%x out of range, write dropped", method)
		return
	}
	engine.Regs[method] = value
	engine.Log.Tracef("register 0x%x <- 0x%08x", method, value)
}

// Returns the current value of a register
func (engine *Fermi2D) Register(method uint32) uint32 {
	return engine.Regs[method]
}
