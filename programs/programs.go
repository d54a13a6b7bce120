package programs

import (
	"errors"
	"image"

	"github.com/geri1245/fractalpass/surface"
)

var ErrNoCPUImplementation = errors.New("fractal does not have a CPU implementation")

func NumPrograms() int {
	return len(programs)
}

func GetProgram(i int) Program {
	return programs[i]
}

func GetProgramByName(name string) (Program, bool) {
	for _, p := range programs {
		if p.Name == name {
			return p, true
		}
	}
	return Program{}, false
}

func NewProgram(p Program) {
	programs = append(programs, p)
}

var programs []Program

// KernelFunc is one kernel invocation; it must write exactly one color to
// out at pos and touch nothing else. The input texture and sampler are
// read-only, so a host may run any number of invocations concurrently as
// long as they target distinct positions.
type KernelFunc func(uniforms Uniforms, pos image.Point, out *surface.Pixmap, in *surface.Texture, smp surface.Sampler)

// Program pairs the GPU shader source of a fractal pass with a host-side
// kernel that computes the same thing without a GPU.
type Program struct {
	Name          string
	ComputeShader string
	Invoke        KernelFunc
}
