package emulator

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// The command-stream front end of the GPU. It decodes command words
// fetched through the memory port and routes the register writes they
// describe to the engine bound to the target subchannel.
//
// A GPU instance owns its binding table and macro upload state, both of
// which persist across ProcessCommandList calls. It is not safe for
// concurrent use; independent command streams need independent
// instances
type GPU struct {
	Memory         MemoryAccess        // Port used to fetch command words
	Fermi2D        Engine              // 2D blit engine
	Maxwell3D      Engine3D            // 3D graphics engine
	MaxwellCompute Engine              // Compute engine
	BoundEngines   map[uint32]EngineID // Subchannel bindings created by BindObject
	Macro          *MacroUpload        // In-flight macro upload
	Log            *logrus.Entry
}

// Creates a new GPU command processor. The engines are the targets
// register writes are forwarded to once their subchannel is bound
func NewGPU(memory MemoryAccess, fermi2d Engine, maxwell3d Engine3D, compute Engine, log *logrus.Entry) *GPU {
	return &GPU{
		Memory:         memory,
		Fermi2D:        fermi2d,
		Maxwell3D:      maxwell3d,
		MaxwellCompute: compute,
		BoundEngines:   make(map[uint32]EngineID),
		Macro:          NewMacroUpload(),
		Log:            log.WithField("component", "gpu"),
	}
}

// Applies one decoded register write. Control methods (below 0x100)
// are handled here; everything else requires the subchannel to be
// bound and is forwarded to that engine. `remaining` is the number of
// argument words left in the current run
func (gpu *GPU) WriteReg(method, subchannel, value, remaining uint32) error {
	gpu.Log.Tracef("method 0x%04x subchannel %d value 0x%08x remaining %d",
		method, subchannel, value, remaining)

	switch ClassifyMethod(method) {
	case CLASS_MACRO_ENTRY:
		// prepare to upload a new macro, discarding any partial one
		gpu.Log.Debugf("uploading macro entry 0x%x", value)
		gpu.Macro.Begin(value)

	case CLASS_MACRO_ARG:
		if err := gpu.Macro.Push(value); err != nil {
			return err
		}
		// no more code words incoming, hand the macro to the 3D engine
		if remaining == 0 {
			entry, code := gpu.Macro.Take()
			gpu.Maxwell3D.SubmitMacroCode(entry, code)
		}

	case CLASS_BIND:
		if bound, ok := gpu.BoundEngines[subchannel]; ok {
			return fmt.Errorf("subchannel %d to %s: %w", subchannel, bound, ErrSubchannelBound)
		}
		gpu.Log.Debugf("binding subchannel %d to engine %s", subchannel, EngineID(value))
		gpu.BoundEngines[subchannel] = EngineID(value)

	case CLASS_OTHER_CONTROL:
		// SetGraphMacroCode (0x45) and the rest of the reserved range
		// have no known behavior yet
		gpu.Log.Warnf("unimplemented buffer method 0x%02x, skipped", method)

	case CLASS_ENGINE:
		engine, ok := gpu.BoundEngines[subchannel]
		if !ok {
			return fmt.Errorf("method 0x%04x on subchannel %d: %w", method, subchannel, ErrSubchannelUnbound)
		}
		switch engine {
		case ENGINE_FERMI_TWOD_A:
			gpu.Fermi2D.WriteRegister(method, value)
		case ENGINE_MAXWELL_B:
			gpu.Maxwell3D.WriteRegister(method, value, remaining)
		case ENGINE_MAXWELL_COMPUTE_B:
			gpu.MaxwellCompute.WriteRegister(method, value)
		default:
			return fmt.Errorf("subchannel %d: %w 0x%x", subchannel, ErrUnknownEngine, uint32(engine))
		}
	}
	return nil
}

// Walks the command list of `size` words starting at the GPU virtual
// address `addr`, decoding each header and dispatching the register
// writes its submission mode implies. A protocol violation aborts the
// remainder of the stream: there is no way to resynchronize after one
func (gpu *GPU) ProcessCommandList(addr uint64, size uint32) error {
	base, err := gpu.Memory.Translate(addr)
	if err != nil {
		return err
	}

	cursor := base
	end := base + size*4
	for cursor < end {
		header := DecodeCommandHeader(gpu.Memory.Load32(cursor))
		cursor += 4

		switch header.Mode {
		case MODE_INCREASING_OLD, MODE_INCREASING:
			// increase the method value with each argument
			for i := uint32(0); i < header.ArgCount; i++ {
				err := gpu.WriteReg(header.Method+i, header.Subchannel,
					gpu.Memory.Load32(cursor), header.ArgCount-i-1)
				if err != nil {
					return err
				}
				cursor += 4
			}

		case MODE_NON_INCREASING_OLD, MODE_NON_INCREASING:
			// use the same method value for all arguments
			for i := uint32(0); i < header.ArgCount; i++ {
				err := gpu.WriteReg(header.Method, header.Subchannel,
					gpu.Memory.Load32(cursor), header.ArgCount-i-1)
				if err != nil {
					return err
				}
				cursor += 4
			}

		case MODE_INCREASE_ONCE:
			if header.ArgCount < 1 {
				return fmt.Errorf("method 0x%04x: %w", header.Method, ErrNoArguments)
			}

			// the original method for the first argument, the next
			// method for all other arguments
			err := gpu.WriteReg(header.Method, header.Subchannel,
				gpu.Memory.Load32(cursor), header.ArgCount-1)
			if err != nil {
				return err
			}
			cursor += 4

			for i := uint32(1); i < header.ArgCount; i++ {
				err := gpu.WriteReg(header.Method+1, header.Subchannel,
					gpu.Memory.Load32(cursor), header.ArgCount-i-1)
				if err != nil {
					return err
				}
				cursor += 4
			}

		case MODE_INLINE:
			// the value is embedded in the header, no argument words
			err := gpu.WriteReg(header.Method, header.Subchannel, header.InlineData, 0)
			if err != nil {
				return err
			}

		default:
			return fmt.Errorf("command list at offset 0x%x: %w %d", cursor-4, ErrUnknownMode, header.Mode)
		}
	}
	return nil
}
