package vector

// Slack returns the number of allocated but unoccupied slots.
func (v *Vector[T]) Slack() int {
	return v.Cap() - v.size
}

// Utilization returns the ratio of live elements to buffer capacity
// (0.0 to 1.0). Returns 0.0 if the vector has no buffer.
func (v *Vector[T]) Utilization() float64 {
	c := v.Cap()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Len:         v.Len(),
		Cap:         v.Cap(),
		Slack:       v.Slack(),
		Utilization: v.Utilization(),
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Len         int     // Live elements
	Cap         int     // Allocated slots
	Slack       int     // Allocated but unoccupied slots
	Utilization float64 // Ratio of live to allocated (0.0-1.0)
}
