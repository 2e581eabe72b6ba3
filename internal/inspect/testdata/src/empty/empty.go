package empty

// Plain has no error types anywhere near it.
type Plain struct {
	Value int
}
