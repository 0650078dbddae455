package clock

import "time"

// Clock supplies "now" to handlers so services receive it as an explicit asOf.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
