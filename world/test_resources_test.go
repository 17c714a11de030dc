package world_test

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Counter struct {
	Value int
}
