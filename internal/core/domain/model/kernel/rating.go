package kernel

// Rating is an average score with the number of reviews behind it.
type Rating struct {
	Score float64
	Count int
}
