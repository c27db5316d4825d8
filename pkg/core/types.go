package core

// Size describes the dimensions of a simulation grid. W counts columns and H
// counts rows.
type Size struct {
	W int
	H int
}

// Cell addresses a single grid cell.
type Cell struct {
	Row int
	Col int
}

// Sim defines the minimal contract a driver needs to advance a simulation.
type Sim interface {
	Name() string
	Size() Size
	Step()
	Generation() uint64
}
