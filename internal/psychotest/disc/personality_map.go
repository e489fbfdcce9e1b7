package disc

// personalityMap resolves a 1-based option position to the dimension it
// scores, separately for the most and least columns of each question.
var personalityMap = map[int]questionKey{
	1:  {most: [4]Dimension{S, I, N, C}, least: [4]Dimension{S, I, D, C}},
	2:  {most: [4]Dimension{I, C, D, S}, least: [4]Dimension{I, C, D, N}},
	3:  {most: [4]Dimension{N, D, C, I}, least: [4]Dimension{S, D, C, I}},
	4:  {most: [4]Dimension{C, S, N, D}, least: [4]Dimension{C, S, I, D}},
	5:  {most: [4]Dimension{D, C, I, S}, least: [4]Dimension{D, N, I, S}},
	6:  {most: [4]Dimension{C, I, N, S}, least: [4]Dimension{C, I, D, S}},
	7:  {most: [4]Dimension{N, S, C, D}, least: [4]Dimension{I, S, C, D}},
	8:  {most: [4]Dimension{D, I, S, N}, least: [4]Dimension{D, I, S, C}},
	9:  {most: [4]Dimension{I, C, D, N}, least: [4]Dimension{I, C, N, S}},
	10: {most: [4]Dimension{S, D, N, I}, least: [4]Dimension{S, D, C, I}},
	11: {most: [4]Dimension{I, S, C, D}, least: [4]Dimension{N, S, C, D}},
	12: {most: [4]Dimension{I, N, D, S}, least: [4]Dimension{I, C, D, S}},
	13: {most: [4]Dimension{D, I, N, C}, least: [4]Dimension{D, I, S, N}},
	14: {most: [4]Dimension{C, D, I, S}, least: [4]Dimension{C, D, I, N}},
	15: {most: [4]Dimension{N, S, D, C}, least: [4]Dimension{I, S, D, C}},
	16: {most: [4]Dimension{I, S, N, C}, least: [4]Dimension{I, S, D, C}},
	17: {most: [4]Dimension{C, N, D, I}, least: [4]Dimension{C, S, D, I}},
	18: {most: [4]Dimension{I, D, S, C}, least: [4]Dimension{I, D, N, C}},
	19: {most: [4]Dimension{S, D, C, N}, least: [4]Dimension{S, D, C, I}},
	20: {most: [4]Dimension{N, D, S, I}, least: [4]Dimension{C, D, S, N}},
	21: {most: [4]Dimension{I, S, C, D}, least: [4]Dimension{I, N, C, D}},
	22: {most: [4]Dimension{S, N, D, C}, least: [4]Dimension{S, I, D, N}},
	23: {most: [4]Dimension{D, C, I, S}, least: [4]Dimension{N, C, I, S}},
	24: {most: [4]Dimension{I, C, S, D}, least: [4]Dimension{I, C, N, D}},
}
