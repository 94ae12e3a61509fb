package camera

import "github.com/go-gl/mathgl/mgl32"

const (
	// FramesPerPhase is how long the camera moves along one side of the path.
	FramesPerPhase = 200
	// CycleFrames is the length of one full lap.
	CycleFrames = FramesPerPhase * phaseCount
	// Speed is the distance travelled per frame, in world units.
	Speed = 0.02

	StartX = 1.9
	StartY = 3
	StartZ = 1.9

	side = Speed * FramesPerPhase
)

// Phase is one side of the rectangular path in the XZ plane.
type Phase int

const (
	PhaseWest  Phase = iota // x decreases
	PhaseNorth              // z decreases
	PhaseEast               // x increases
	PhaseSouth              // z increases

	phaseCount = 4
)

func (p Phase) String() string {
	switch p {
	case PhaseWest:
		return "west"
	case PhaseNorth:
		return "north"
	case PhaseEast:
		return "east"
	case PhaseSouth:
		return "south"
	}
	return "unknown"
}

// Delta returns the per-frame change of x and z while in phase p.
func (p Phase) Delta() (dx, dz float32) {
	switch p {
	case PhaseWest:
		return -Speed, 0
	case PhaseNorth:
		return 0, -Speed
	case PhaseEast:
		return Speed, 0
	case PhaseSouth:
		return 0, Speed
	}
	return 0, 0
}

// PhaseAt maps a frame iteration to its phase. Iterations outside [0, CycleFrames) wrap.
func PhaseAt(iteration int) Phase {
	return Phase(wrap(iteration) / FramesPerPhase)
}

// DeltaAt returns the movement applied on the given iteration.
func DeltaAt(iteration int) (dx, dz float32) {
	return PhaseAt(iteration).Delta()
}

func wrap(iteration int) int {
	i := iteration % CycleFrames
	if i < 0 {
		i += CycleFrames
	}
	return i
}

// Path drives the eye position around a closed square at constant height.
// The zero value is a valid path at its starting corner.
type Path struct {
	phase    Phase
	progress int
}

// New returns a path at iteration 0, eye (1.9, 3, 1.9).
func New() *Path {
	return &Path{}
}

// Iteration is the frame counter within the current lap, always in [0, CycleFrames).
func (p *Path) Iteration() int {
	return int(p.phase)*FramesPerPhase + p.progress
}

func (p *Path) Phase() Phase {
	return p.phase
}

// Eye returns the current camera position. Coordinates are derived from the phase and the
// progress within it, so every lap passes through exactly the same points.
func (p *Path) Eye() mgl32.Vec3 {
	t := Speed * float32(p.progress)
	x, z := float32(StartX), float32(StartZ)
	switch p.phase {
	case PhaseWest:
		x -= t
	case PhaseNorth:
		x -= side
		z -= t
	case PhaseEast:
		x += t - side
		z -= side
	case PhaseSouth:
		z += t - side
	}
	return mgl32.Vec3{x, StartY, z}
}

// Step advances the path by one frame.
func (p *Path) Step() {
	p.progress++
	if p.progress < FramesPerPhase {
		return
	}
	p.progress = 0
	p.phase = (p.phase + 1) % phaseCount
}

// Reset moves the camera back to the starting corner.
func (p *Path) Reset() {
	p.phase, p.progress = PhaseWest, 0
}
