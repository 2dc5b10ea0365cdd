package battleship

var orthogonalSteps = [4]Coordinates{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// ChooseTarget picks the next cell to fire at on the opponent's board.
//
// While there are hits that do not belong to a sunk ship the computer is in
// target mode: it extends any straight run of two or more hits, or else
// probes the orthogonal neighbors of isolated hits. Otherwise it hunts on the
// even checkerboard cells first. When fleet is non-nil, hits on sunk ships
// are considered resolved and the ring around every sunk ship is skipped
// while hunting. (0,0) is returned only when every cell was attacked.
func ChooseTarget(board Board, fleet Fleet, rnd Random) Coordinates {
	if target, ok := chooseFollowUp(board, fleet, rnd); ok {
		return target
	}
	return chooseHunt(board, fleet, rnd)
}

func pick(rnd Random, pool []Coordinates) Coordinates {
	return pool[rnd.Intn(len(pool))]
}

func isOpen(board Board, row, col int) bool {
	return board.InBounds(row, col) && !board[row][col].IsAttacked()
}

// resolvedCells marks the positions of every sunk ship.
func resolvedCells(board Board, fleet Fleet) map[Coordinates]bool {
	resolved := make(map[Coordinates]bool)
	for _, ship := range fleet {
		if !ship.IsSunk(board) {
			continue
		}
		for _, pos := range ship.Positions {
			resolved[pos] = true
		}
	}
	return resolved
}

// pendingHits returns hit cells in row-major order, without the
// ones known to belong to sunk ships.
func pendingHits(board Board, fleet Fleet) []Coordinates {
	resolved := resolvedCells(board, fleet)

	hits := make([]Coordinates, 0)
	for row := range board {
		for col, cell := range board[row] {
			c := NewCoordinates(row, col)
			if cell == CellHit && !resolved[c] {
				hits = append(hits, c)
			}
		}
	}
	return hits
}

func chooseFollowUp(board Board, fleet Fleet, rnd Random) (Coordinates, bool) {
	hits := pendingHits(board, fleet)
	if len(hits) == 0 {
		return Coordinates{}, false
	}

	if probes := lineProbes(board, hits); len(probes) > 0 {
		return pick(rnd, probes), true
	}

	seen := make(map[Coordinates]bool)
	neighbors := make([]Coordinates, 0, len(hits)*4)
	for _, hit := range hits {
		for _, step := range orthogonalSteps {
			c := NewCoordinates(hit.Row+step.Row, hit.Col+step.Col)
			if seen[c] || !isOpen(board, c.Row, c.Col) {
				continue
			}
			seen[c] = true
			neighbors = append(neighbors, c)
		}
	}

	if len(neighbors) == 0 {
		return Coordinates{}, false
	}
	return pick(rnd, neighbors), true
}

// lineProbes finds every contiguous run of two or more hits along a row
// or a column and returns the open cells just beyond either end.
func lineProbes(board Board, hits []Coordinates) []Coordinates {
	size := board.Size()
	colsByRow := make([][]int, size)
	rowsByCol := make([][]int, size)

	// hits are row-major, so both index lists come out sorted
	for _, hit := range hits {
		colsByRow[hit.Row] = append(colsByRow[hit.Row], hit.Col)
		rowsByCol[hit.Col] = append(rowsByCol[hit.Col], hit.Row)
	}

	probes := make([]Coordinates, 0)
	add := func(row, col int) {
		if isOpen(board, row, col) {
			probes = append(probes, NewCoordinates(row, col))
		}
	}

	for row, cols := range colsByRow {
		for _, r := range contiguousRuns(cols) {
			add(row, r[0]-1)
			add(row, r[1]+1)
		}
	}
	for col, rows := range rowsByCol {
		for _, r := range contiguousRuns(rows) {
			add(r[0]-1, col)
			add(r[1]+1, col)
		}
	}
	return probes
}

// contiguousRuns returns [first, last] of every run of at least two
// consecutive integers in a sorted slice.
func contiguousRuns(sorted []int) [][2]int {
	runs := make([][2]int, 0)
	for start := 0; start < len(sorted); {
		end := start
		for end+1 < len(sorted) && sorted[end+1] == sorted[end]+1 {
			end++
		}
		if end > start {
			runs = append(runs, [2]int{sorted[start], sorted[end]})
		}
		start = end + 1
	}
	return runs
}

// avoidZone marks the 8-neighborhood of every sunk ship.
func avoidZone(board Board, fleet Fleet) map[Coordinates]bool {
	zone := make(map[Coordinates]bool)
	for _, ship := range fleet {
		if !ship.IsSunk(board) {
			continue
		}
		for _, pos := range ship.Positions {
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					zone[NewCoordinates(pos.Row+dr, pos.Col+dc)] = true
				}
			}
		}
	}
	return zone
}

func chooseHunt(board Board, fleet Fleet, rnd Random) Coordinates {
	zone := avoidZone(board, fleet)

	var even, odd, evenInZone, oddInZone []Coordinates
	for row := range board {
		for col := range board[row] {
			if !isOpen(board, row, col) {
				continue
			}

			c := NewCoordinates(row, col)
			switch {
			case zone[c] && c.IsEven():
				evenInZone = append(evenInZone, c)
			case zone[c]:
				oddInZone = append(oddInZone, c)
			case c.IsEven():
				even = append(even, c)
			default:
				odd = append(odd, c)
			}
		}
	}

	// the avoid zone only narrows the search; if it swallowed
	// every open cell the zone itself is searched
	for _, pool := range [][]Coordinates{even, odd, evenInZone, oddInZone} {
		if len(pool) > 0 {
			return pick(rnd, pool)
		}
	}
	return NewCoordinates(0, 0)
}
