package ndarray

// Interval is an inclusive index range along one axis. Stop is included
// in the range. Step may be negative; slicing canonicalises it with
// Forward. A zero Step is treated as 1.
type Interval struct {
	Start int
	Stop  int
	Step  int
}

// NewInterval returns the interval [start, stop] with step 1.
func NewInterval(start, stop int) Interval {
	return Interval{Start: start, Stop: stop, Step: 1}
}

// Index returns the single-element interval at i. This is the "omitted
// stop defaults to start" construction form.
func Index(i int) Interval {
	return Interval{Start: i, Stop: i, Step: 1}
}

// Stepped returns the interval [start, stop] with the given step.
func Stepped(start, stop, step int) Interval {
	return Interval{Start: start, Stop: stop, Step: step}
}

// Forward canonicalises the interval to a positive step, swapping the
// endpoints when the step is negative.
func (iv Interval) Forward() Interval {
	if iv.Step < 0 {
		return Interval{Start: iv.Stop, Stop: iv.Start, Step: -iv.Step}
	}
	return iv
}

// Reverse flips the direction of the interval.
func (iv Interval) Reverse() Interval {
	return Interval{Start: iv.Stop, Stop: iv.Start, Step: -iv.Step}
}

// Modulo wraps Start and Stop into [0, n). The step is unchanged.
func (iv Interval) Modulo(n int) Interval {
	return Interval{Start: Modulo(iv.Start, n), Stop: Modulo(iv.Stop, n), Step: iv.Step}
}

// normalized applies the construction default of step 1 for a zero step.
func (iv Interval) normalized() Interval {
	if iv.Step == 0 {
		iv.Step = 1
	}
	return iv
}
