package disc

// mostTable plots graph 1 (Most) counts.
var mostTable = newCoordinateTable(map[int][4]float64{
	0:  {-6, -7, -5.7, -6},
	1:  {-5.3, -4.6, -4.3, -4.7},
	2:  {-4, -2.5, -3.5, -3.5},
	3:  {-2.5, -1.3, -1.5, -1.5},
	4:  {-1.7, 1, -0.7, 0.5},
	5:  {-1.3, 3, 0.5, 2},
	6:  {0, 3.5, 1, 3},
	7:  {0.5, 5.3, 2.5, 5.3},
	8:  {1, 5.7, 3, 5.7},
	9:  {2, 6, 4, 6},
	10: {3, 6.5, 4.6, 6.3},
	11: {3.5, 7, 5, 6.5},
	12: {4, 7, 5.7, 6.7},
	13: {4.7, 7, 6, 7},
	14: {5.3, 7, 6.5, 7.3},
	15: {6.5, 7, 6.5, 7.3},
	16: {7, 7.5, 7, 7.3},
	17: {7, 7.5, 7, 7.5},
	18: {7, 7.5, 7, 8},
	19: {7.5, 7.5, 7.5, 8},
	20: {7.5, 8, 7.5, 8},
})

// leastTable plots graph 2 (Least) counts. More least picks push a
// dimension down.
var leastTable = newCoordinateTable(map[int][4]float64{
	0:  {7.5, 7, 7.5, 7.5},
	1:  {5.3, 5, 6.5, 6},
	2:  {4, 3.5, 5.3, 4.7},
	3:  {2.5, 1.5, 3.5, 3},
	4:  {1.5, 0, 2.5, 1.5},
	5:  {0.5, -1, 1.5, 0.5},
	6:  {0, -2, 0.5, 0},
	7:  {-1.3, -3, 0, -1},
	8:  {-1.5, -4.3, -1.3, -2},
	9:  {-2.5, -5.3, -2.3, -3.5},
	10: {-3, -6, -3, -4.3},
	11: {-3.5, -6.5, -4, -5},
	12: {-4.3, -7, -4.5, -5.5},
	13: {-5.3, -7.3, -5.3, -6},
	14: {-5.7, -7.5, -6, -6.5},
	15: {-6, -7.5, -6.5, -6.7},
	16: {-6.5, -7.5, -7, -7},
	17: {-6.7, -7.7, -7.3, -7.3},
	18: {-7, -7.7, -7.5, -7.5},
	19: {-7.3, -8, -7.5, -7.7},
	20: {-7.5, -8, -8, -8},
})

// changeTable plots graph 3 (Change), keyed by most minus least.
var changeTable = newCoordinateTable(map[int][4]float64{
	-22: {-7.9, -7.8, -7.9, -8.8},
	-21: {-7.8, -7.8, -7.8, -8.8},
	-20: {-7.8, -7.8, -7.8, -8.8},
	-19: {-7.7, -7.7, -7.7, -8.7},
	-18: {-7.7, -7.7, -7.7, -8.7},
	-17: {-7.6, -7.6, -7.6, -8.6},
	-16: {-7.6, -7.5, -7.6, -8.5},
	-15: {-7.5, -7.4, -7.5, -8.4},
	-14: {-7.4, -7.3, -7.4, -8.3},
	-13: {-7.2, -7.2, -7.2, -8.2},
	-12: {-7.1, -7, -7.1, -8},
	-11: {-6.9, -6.8, -6.9, -7.8},
	-10: {-6.7, -6.6, -6.7, -7.6},
	-9:  {-6.4, -6.3, -6.4, -7.3},
	-8:  {-6.1, -6, -6.1, -7},
	-7:  {-5.8, -5.6, -5.8, -6.6},
	-6:  {-5.3, -5.1, -5.3, -6.1},
	-5:  {-4.8, -4.6, -4.8, -5.6},
	-4:  {-4.1, -3.9, -4.1, -4.9},
	-3:  {-3.4, -3.1, -3.4, -4.1},
	-2:  {-2.4, -2.1, -2.4, -3.1},
	-1:  {-1.3, -0.9, -1.3, -1.9},
	0:   {0, 0.5, 0, -0.5},
	1:   {1.3, 1.9, 1.3, 0.9},
	2:   {2.4, 3.1, 2.4, 2.1},
	3:   {3.4, 4.1, 3.4, 3.1},
	4:   {4.1, 4.9, 4.1, 3.9},
	5:   {4.8, 5.6, 4.8, 4.6},
	6:   {5.3, 6.1, 5.3, 5.1},
	7:   {5.8, 6.6, 5.8, 5.6},
	8:   {6.1, 7, 6.1, 6},
	9:   {6.4, 7.3, 6.4, 6.3},
	10:  {6.7, 7.6, 6.7, 6.6},
	11:  {6.9, 7.8, 6.9, 6.8},
	12:  {7.1, 8, 7.1, 7},
	13:  {7.2, 8.2, 7.2, 7.2},
	14:  {7.4, 8.3, 7.4, 7.3},
	15:  {7.5, 8.4, 7.5, 7.4},
	16:  {7.6, 8.5, 7.6, 7.5},
	17:  {7.6, 8.6, 7.6, 7.6},
	18:  {7.7, 8.7, 7.7, 7.7},
	19:  {7.7, 8.7, 7.7, 7.7},
	20:  {7.8, 8.8, 7.8, 7.8},
	21:  {7.8, 8.8, 7.8, 7.8},
	22:  {7.9, 8.8, 7.9, 7.8},
})
