package game

import "junqi/utils"

// Graph is a static undirected adjacency structure over board cells.
type Graph struct {
	adjacent map[Coordinate][]Coordinate
}

// NewGraph creates and returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		adjacent: make(map[Coordinate][]Coordinate),
	}
}

// AddBorder adds a bidirectional edge between two cells.
func (g *Graph) AddBorder(a, b Coordinate) {
	if utils.FindIndex(g.adjacent[a], b) < 0 {
		g.adjacent[a] = append(g.adjacent[a], b)
	}
	if utils.FindIndex(g.adjacent[b], a) < 0 {
		g.adjacent[b] = append(g.adjacent[b], a)
	}
}

// Neighbors returns the cells joined to c. The slice must not be modified.
func (g *Graph) Neighbors(c Coordinate) []Coordinate {
	return g.adjacent[c]
}

// Has reports whether c is an endpoint of at least one edge.
func (g *Graph) Has(c Coordinate) bool {
	_, ok := g.adjacent[c]
	return ok
}

func (g *Graph) Connected(a, b Coordinate) bool {
	return utils.FindIndex(g.adjacent[a], b) >= 0
}

type connection [2][2]int

// Quarter templates, rotated to cover the four quadrants.
var roadQuarter = []connection{
	{{4, 0}, {4, 1}}, {{4, 0}, {5, 0}}, {{5, 0}, {5, 1}}, {{5, 0}, {6, 0}}, {{6, 0}, {6, 1}},
	{{5, 2}, {4, 1}}, {{5, 2}, {4, 2}}, {{5, 2}, {4, 3}}, {{5, 2}, {5, 1}}, {{5, 2}, {5, 3}},
	{{5, 2}, {6, 1}}, {{5, 2}, {6, 2}}, {{5, 2}, {6, 3}},
}

var railQuarter = []connection{
	{{4, 1}, {4, 2}}, {{4, 2}, {4, 3}}, {{4, 3}, {4, 4}}, {{4, 3}, {3, 4}},
	{{5, 1}, {4, 1}}, {{5, 1}, {6, 1}},
	{{5, 3}, {4, 3}}, {{5, 3}, {6, 3}}, {{5, 3}, {5, 4}},
	{{6, 1}, {6, 2}}, {{6, 2}, {6, 3}}, {{6, 3}, {6, 4}}, {{6, 3}, {7, 4}},
	{{6, 4}, {5, 4}}, {{6, 4}, {6, 5}}, {{6, 5}, {5, 5}},
}

// Group 0 slots, front row first.
var startingQuarter = [UnitsPerGroup][2]int{
	{4, 3}, {5, 3}, {6, 3},
	{4, 2}, {6, 2},
	{4, 1}, {5, 1}, {6, 1},
	{4, 0}, {5, 0}, {6, 0},
}

var (
	Roads = createGraph(roadQuarter)
	Rails = createGraph(railQuarter)
)

// joint licenses a turn on the rails: a slide arriving with direction from
// continues with direction to.
type joint struct {
	from, to Delta
}

var joints = map[Coordinate]joint{
	NewCoordinate(4, 3): {Delta{1, 0}, Delta{0, -1}},
	NewCoordinate(3, 4): {Delta{0, 1}, Delta{-1, 0}},
	NewCoordinate(6, 3): {Delta{-1, 0}, Delta{0, -1}},
	NewCoordinate(7, 4): {Delta{0, 1}, Delta{1, 0}},
	NewCoordinate(4, 7): {Delta{1, 0}, Delta{0, 1}},
	NewCoordinate(3, 6): {Delta{0, -1}, Delta{-1, 0}},
	NewCoordinate(6, 7): {Delta{-1, 0}, Delta{0, 1}},
	NewCoordinate(7, 6): {Delta{0, -1}, Delta{1, 0}},
}

var camps = []Coordinate{
	NewCoordinate(5, 2), NewCoordinate(8, 5),
	NewCoordinate(2, 5), NewCoordinate(5, 8),
}

// IsCamp reports whether c is a camp cell.
func IsCamp(c Coordinate) bool {
	return utils.FindIndex(camps, c) >= 0
}

func rotate(c Coordinate, times int) Coordinate {
	for i := 0; i < times; i++ {
		c = c.RotateCounterClockwise()
	}
	return c
}

func createGraph(quarter []connection) *Graph {
	g := NewGraph()
	for quadrant := 0; quadrant < GroupCount; quadrant++ {
		for _, con := range quarter {
			a := NewCoordinate(con[0][0], con[0][1])
			b := NewCoordinate(con[1][0], con[1][1])
			g.AddBorder(rotate(a, quadrant), rotate(b, quadrant))
		}
	}
	return g
}

// StartingCoordinates returns the cells of a group's quadrant in slot order.
func StartingCoordinates(group Group) []Coordinate {
	coords := make([]Coordinate, 0, UnitsPerGroup)
	for _, xy := range startingQuarter {
		coords = append(coords, rotate(NewCoordinate(xy[0], xy[1]), int(group)))
	}
	return coords
}
