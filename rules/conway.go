package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// NextState applies the same rules to the byte encoding used by the grid surfaces
func NextState(current uint8, neighbors int) uint8 {
	if ApplyConwayRules(neighbors, current != 0) {
		return 1
	}
	return 0
}
