package flood_test

import (
	"fmt"

	"github.com/katalvlaran/basins/flood"
)

// ExampleFill fills the open room around the seed, stopping at walls.
//
//	#######
//	#..#..#
//	#..#..#
//	#######
func ExampleFill() {
	rows := []string{
		"#######",
		"#..#..#",
		"#..#..#",
		"#######",
	}
	inside := func(x, y int, visited flood.Set) bool {
		if y < 0 || y >= len(rows) || x < 0 || x >= len(rows[y]) {
			return false
		}
		return rows[y][x] == '.' && !visited.Contains(x, y)
	}

	room, _ := flood.Fill(flood.Point{X: 1, Y: 1}, inside,
		flood.WithOnSpan(func(y, lx, rx int) {
			fmt.Printf("span y=%d [%d,%d]\n", y, lx, rx)
		}))
	fmt.Println("cells:", room.Len())
	fmt.Println(room.Points())

	// Output:
	// span y=1 [1,2]
	// span y=2 [1,2]
	// cells: 4
	// [{1 1} {2 1} {1 2} {2 2}]
}
