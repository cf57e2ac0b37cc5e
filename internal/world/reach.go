package world

import "github.com/zyedidia/generic/mapset"

// Reachable returns every floor cell 4-connected to from, including from itself.
// The set is empty when from cannot be entered.
func Reachable(g *Grid, from Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !g.CanEnter(from) {
		return visited
	}

	queue := []Point{from}
	visited.Put(from)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		neighbors := [4]Point{
			current.Add(Point{X: 0, Y: -1}),
			current.Add(Point{X: 1, Y: 0}),
			current.Add(Point{X: 0, Y: 1}),
			current.Add(Point{X: -1, Y: 0}),
		}
		for _, n := range neighbors {
			if g.CanEnter(n) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return visited
}

// Connected reports whether every room center is reachable from the dungeon start.
func (d *Dungeon) Connected() bool {
	reached := Reachable(d.Grid, d.Start)
	for _, room := range d.Rooms {
		if !reached.Has(room.Center()) {
			return false
		}
	}
	return true
}
