package domain

// Summary holds the metrics computed for one workout.
type Summary struct {
	TrainingType  string
	DurationHours float64
	DistanceKm    float64
	SpeedKmh      float64
	Calories      float64
}

// Summarize computes every metric of w once.
func Summarize(w Workout) Summary {
	return Summary{
		TrainingType:  w.Kind().String(),
		DurationHours: w.DurationHours(),
		DistanceKm:    w.DistanceKm(),
		SpeedKmh:      w.MeanSpeedKmh(),
		Calories:      w.CaloriesBurned(),
	}
}
