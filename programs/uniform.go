package programs

// WriteMode selects which color a kernel writes to the output surface.
type WriteMode uint32

const (
	// WriteComposite passes the input-surface sample through unchanged.
	WriteComposite WriteMode = iota
	// WriteVisualize writes the escape value as grayscale, ignoring the
	// input surface.
	WriteVisualize
)

// DefaultIterations is the build-time iteration budget.
const DefaultIterations = 50

type Uniforms struct {
	Iterations uint32
	Mode       WriteMode
}

func (u *Uniforms) DefaultValues() {
	u.Iterations = DefaultIterations
	u.Mode = WriteComposite
}
