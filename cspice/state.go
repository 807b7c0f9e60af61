package cspice

// State is a position (km) and velocity (km/s) vector.
type State [6]float64

// Position returns the position half of the state.
func (s State) Position() Position {
	return Position{s[0], s[1], s[2]}
}

// Velocity returns the velocity half of the state.
func (s State) Velocity() [3]float64 {
	return [3]float64{s[3], s[4], s[5]}
}

// Position is a position vector in km.
type Position [3]float64

// Rotation is a 3x3 rotation matrix.
type Rotation [3][3]float64

// StateOf returns the state of target relative to observer in frame ref,
// corrected by abcorr ("NONE", "LT", "LT+S", ...), and the one-way light
// time in seconds.
func (t *Toolkit) StateOf(target string, et float64, ref, abcorr, observer string) (State, float64, error) {
	var (
		state [6]float64
		lt    float64
	)
	err := t.call("spkezr_c", func(lib bridge) {
		state, lt = lib.spkezr(target, et, ref, abcorr, observer)
	})
	if err != nil {
		return State{}, 0, err
	}
	return State(state), lt, nil
}

// PositionOf is StateOf without velocity.
func (t *Toolkit) PositionOf(target string, et float64, ref, abcorr, observer string) (Position, float64, error) {
	var (
		pos [3]float64
		lt  float64
	)
	err := t.call("spkpos_c", func(lib bridge) {
		pos, lt = lib.spkpos(target, et, ref, abcorr, observer)
	})
	if err != nil {
		return Position{}, 0, err
	}
	return Position(pos), lt, nil
}

// FrameTransform returns the matrix rotating position vectors from frame
// from to frame to at et.
func (t *Toolkit) FrameTransform(from, to string, et float64) (Rotation, error) {
	var rot [3][3]float64
	err := t.call("pxform_c", func(lib bridge) {
		rot = lib.pxform(from, to, et)
	})
	if err != nil {
		return Rotation{}, err
	}
	return Rotation(rot), nil
}
