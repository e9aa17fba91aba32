package spectral

// LabelComponents labels the 8-connected regions of the set cells with
// consecutive positive integers; background cells stay 0. Returns the label
// grid and the number of regions found.
func LabelComponents(binary [][]bool) ([][]int, int) {
	rows := len(binary)
	if rows == 0 {
		return nil, 0
	}
	cols := len(binary[0])

	labels := make([][]int, rows)
	for i := range labels {
		labels[i] = make([]int, cols)
	}

	type cell struct{ y, x int }
	next := 0
	queue := make([]cell, 0, rows)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if !binary[y][x] || labels[y][x] != 0 {
				continue
			}
			next++
			labels[y][x] = next
			queue = append(queue[:0], cell{y, x})
			for len(queue) > 0 {
				c := queue[0]
				queue = queue[1:]
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						ny, nx := c.y+dy, c.x+dx
						if ny < 0 || ny >= rows || nx < 0 || nx >= cols {
							continue
						}
						if binary[ny][nx] && labels[ny][nx] == 0 {
							labels[ny][nx] = next
							queue = append(queue, cell{ny, nx})
						}
					}
				}
			}
		}
	}
	return labels, next
}
