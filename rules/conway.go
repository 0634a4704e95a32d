package rules

/*
Apply applies Conway's Game of Life rules to determine the next state of a cell.

Birth on exactly three live neighbors, survival on two or three:
(alive && neighbors == 2) || neighbors == 3
*/
func Apply(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
