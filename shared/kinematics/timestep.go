package kinematics

// DefaultFPS is used when a Timestep has no usable TargetFPS.
const DefaultFPS = 60

// Timestep is the fixed simulation rate: SubSteps physics ticks per rendered
// frame at TargetFPS frames per second.
type Timestep struct {
	TargetFPS int
	SubSteps  int
}

// Dt is the duration of one physics sub-step in seconds.
func (t Timestep) Dt() float64 {
	return 1 / float64(t.FPS()*t.subSteps())
}

// FPS is TargetFPS, or DefaultFPS when TargetFPS is not positive.
func (t Timestep) FPS() int {
	if t.TargetFPS < 1 {
		return DefaultFPS
	}
	return t.TargetFPS
}

func (t Timestep) subSteps() int {
	if t.SubSteps < 1 {
		return 1
	}
	return t.SubSteps
}

// Stepper drives sub-steps for each rendered frame and counts them.
type Stepper struct {
	Timestep
	Ticks uint64
}

// Frame runs every sub-step of one rendered frame to completion. step gets
// the sub-step index within the frame.
func (s *Stepper) Frame(step func(i int, dt float64)) {
	dt := s.Dt()
	for i := 0; i < s.subSteps(); i++ {
		step(i, dt)
		s.Ticks++
	}
}

// Elapsed returns the simulated time so far.
func (s *Stepper) Elapsed() float64 {
	return float64(s.Ticks) * s.Dt()
}
