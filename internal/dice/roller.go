package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for sampling individual dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll returns a uniformly distributed integer in [1, sides]
	Roll(sides int) (int, error)
}
