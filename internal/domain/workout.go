package domain

import "math"

const (
	metersInKm    = 1000
	minutesInHour = 60

	strideLengthM = 0.65
	strokeLengthM = 1.38
)

// Kind identifies a workout variant. Its String form is the label printed in summaries.
type Kind int

const (
	KindRunning Kind = iota + 1
	KindSportsWalking
	KindSwimming
)

func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindSportsWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return "Unknown"
	}
}

// Workout is a single recorded training session. The set of implementations is closed.
type Workout interface {
	Kind() Kind
	DurationHours() float64
	DistanceKm() float64
	MeanSpeedKmh() float64
	CaloriesBurned() float64

	sealed()
}

// session carries the readings every workout has.
type session struct {
	action        int
	durationHours float64
	weightKg      float64
}

func (s session) DurationHours() float64 { return s.durationHours }

func (s session) distanceKm(lengthM float64) float64 {
	return float64(s.action) * lengthM / metersInKm
}

func (s session) minutes() float64 {
	return s.durationHours * minutesInHour
}

// Running is a workout measured in steps.
type Running struct {
	session
}

// NewRunning constructs a Running workout.
func NewRunning(action int, durationHours, weightKg float64) Running {
	return Running{session{action: action, durationHours: durationHours, weightKg: weightKg}}
}

func (Running) Kind() Kind { return KindRunning }
func (Running) sealed() {}

func (r Running) DistanceKm() float64 { return r.distanceKm(strideLengthM) }

func (r Running) MeanSpeedKmh() float64 { return r.DistanceKm() / r.durationHours }

func (r Running) CaloriesBurned() float64 {
	const (
		speedMultiplier = 18
		speedShift      = 20
	)
	return (speedMultiplier*r.MeanSpeedKmh() - speedShift) * r.weightKg / metersInKm * r.minutes()
}

// SportsWalking is a workout measured in steps that also takes the athlete's height into account.
type SportsWalking struct {
	session
	heightCm float64
}

// NewSportsWalking constructs a SportsWalking workout.
func NewSportsWalking(action int, durationHours, weightKg, heightCm float64) SportsWalking {
	return SportsWalking{
		session:  session{action: action, durationHours: durationHours, weightKg: weightKg},
		heightCm: heightCm,
	}
}

func (SportsWalking) Kind() Kind { return KindSportsWalking }
func (SportsWalking) sealed() {}

func (w SportsWalking) DistanceKm() float64 { return w.distanceKm(strideLengthM) }

func (w SportsWalking) MeanSpeedKmh() float64 { return w.DistanceKm() / w.durationHours }

// CaloriesBurned floors speed²/height before scaling it; the truncation is part of the formula.
func (w SportsWalking) CaloriesBurned() float64 {
	const (
		baseWeightRate  = 0.035
		speedWeightRate = 0.029
	)
	speed := w.MeanSpeedKmh()
	ratio := math.Floor(speed * speed / w.heightCm)
	return (baseWeightRate*w.weightKg + ratio*speedWeightRate*w.weightKg) * w.minutes()
}

// Swimming is a workout measured in strokes. Its speed comes from the pool geometry.
type Swimming struct {
	session
	poolLengthM  float64
	poolLapCount int
}

// NewSwimming constructs a Swimming workout.
func NewSwimming(action int, durationHours, weightKg, poolLengthM float64, poolLapCount int) Swimming {
	return Swimming{
		session:      session{action: action, durationHours: durationHours, weightKg: weightKg},
		poolLengthM:  poolLengthM,
		poolLapCount: poolLapCount,
	}
}

func (Swimming) Kind() Kind { return KindSwimming }
func (Swimming) sealed() {}

// DistanceKm reports the stroke-based distance, not the pool distance.
func (s Swimming) DistanceKm() float64 { return s.distanceKm(strokeLengthM) }

func (s Swimming) MeanSpeedKmh() float64 {
	return s.poolLengthM * float64(s.poolLapCount) / metersInKm / s.durationHours
}

func (s Swimming) CaloriesBurned() float64 {
	const (
		speedShift = 1.1
		multiplier = 2
	)
	return (s.MeanSpeedKmh() + speedShift) * multiplier * s.weightKg
}
