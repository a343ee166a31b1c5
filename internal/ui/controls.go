package ui

import (
	"math"
	"strconv"

	"vista/internal/core"
)

// controlState tracks one adjustable HUD row.
type controlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool
}

func newControlStates(t core.Tunable) []controlState {
	if t == nil {
		return nil
	}
	controls := t.ParameterControls()
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl, value: "--"}
	}
	return states
}

// refreshControls copies current values from snap into the control rows.
func refreshControls(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.value = formatControl(state.control, parsed)
		state.hasValue = true
	}
}

func controlStep(ctrl core.ParameterControl) float64 {
	step := ctrl.Step
	if step > 0 {
		return step
	}
	if ctrl.Type == core.ParamTypeInt {
		return 1
	}
	return 0.05
}

// nextValue returns the value one step in direction, clamped to the control
// bounds, and whether it differs from the current one.
func nextValue(state *controlState, direction int) (float64, bool) {
	if state == nil || direction == 0 || !state.hasValue {
		return state.floatValueOrZero(), false
	}
	target := state.floatValue + float64(direction)*controlStep(state.control)
	if state.control.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	if state.control.Max > state.control.Min {
		target = math.Max(state.control.Min, math.Min(state.control.Max, target))
	}
	return target, math.Abs(target-state.floatValue) >= 1e-9
}

func (s *controlState) floatValueOrZero() float64 {
	if s == nil {
		return 0
	}
	return s.floatValue
}

// adjustControl pushes one step through t. It reports whether the value
// changed.
func adjustControl(t core.Tunable, state *controlState, direction int) bool {
	if t == nil {
		return false
	}
	target, ok := nextValue(state, direction)
	if !ok {
		return false
	}
	if !t.SetFloatParameter(state.control.Key, target) {
		return false
	}
	state.floatValue = target
	state.value = formatControl(state.control, target)
	return true
}

func formatControl(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	step := controlStep(ctrl)
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
