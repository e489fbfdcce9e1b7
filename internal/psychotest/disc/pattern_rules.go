package disc

// patternRules is evaluated top to bottom and the first hit wins. Ties
// between positive dimensions satisfy more than one rule, so the order is
// part of the scoring key and must not be rearranged.
var patternRules = []patternRule{
	{1, func(d, i, s, c float64) bool { return d <= 0 && i <= 0 && s <= 0 && c > 0 }},
	{2, func(d, i, s, c float64) bool { return d > 0 && i <= 0 && s <= 0 && c <= 0 }},
	{3, func(d, i, s, c float64) bool { return d <= 0 && i > 0 && s <= 0 && c <= 0 }},
	{4, func(d, i, s, c float64) bool { return d <= 0 && i <= 0 && s > 0 && c <= 0 }},
	{5, func(d, i, s, c float64) bool { return d > 0 && i > 0 && s <= 0 && c <= 0 && d >= i }},
	{6, func(d, i, s, c float64) bool { return d > 0 && i <= 0 && s > 0 && c <= 0 && d >= s }},
	{7, func(d, i, s, c float64) bool { return d > 0 && i <= 0 && s <= 0 && c > 0 && d >= c }},
	{8, func(d, i, s, c float64) bool { return d > 0 && i > 0 && s <= 0 && c <= 0 && i >= d }},
	{9, func(d, i, s, c float64) bool { return d <= 0 && i > 0 && s > 0 && c <= 0 && i >= s }},
	{10, func(d, i, s, c float64) bool { return d <= 0 && i > 0 && s <= 0 && c > 0 && i >= c }},
	{11, func(d, i, s, c float64) bool { return d > 0 && i <= 0 && s > 0 && c <= 0 && s >= d }},
	{12, func(d, i, s, c float64) bool { return d <= 0 && i > 0 && s > 0 && c <= 0 && s >= i }},
	{13, func(d, i, s, c float64) bool { return d <= 0 && i <= 0 && s > 0 && c > 0 && s >= c }},
	{14, func(d, i, s, c float64) bool { return d > 0 && i <= 0 && s <= 0 && c > 0 && c >= d }},
	{15, func(d, i, s, c float64) bool { return d <= 0 && i > 0 && s <= 0 && c > 0 && c >= i }},
	{16, func(d, i, s, c float64) bool { return d <= 0 && i <= 0 && s > 0 && c > 0 && c >= s }},
	{17, func(d, i, s, c float64) bool { return d > 0 && i > 0 && s > 0 && c <= 0 && d >= i && i >= s }},
	{18, func(d, i, s, c float64) bool { return d > 0 && i > 0 && s <= 0 && c > 0 && d >= i && i >= c }},
	{19, func(d, i, s, c float64) bool { return d > 0 && i > 0 && s > 0 && c <= 0 && d >= s && s >= i }},
	{20, func(d, i, s, c float64) bool { return d > 0 && i <= 0 && s > 0 && c > 0 && d >= s && s >= c }},
	{21, func(d, i, s, c float64) bool { return d > 0 && i > 0 && s <= 0 && c > 0 && d >= c && c >= i }},
	{22, func(d, i, s, c float64) bool { return d > 0 && i <= 0 && s > 0 && c > 0 && d >= c && c >= s }},
	{23, func(d, i, s, c float64) bool { return d > 0 && i > 0 && s > 0 && c <= 0 && i >= d && d >= s }},
	{24, func(d, i, s, c float64) bool { return d > 0 && i > 0 && s <= 0 && c > 0 && i >= d && d >= c }},
	{25, func(d, i, s, c float64) bool { return d > 0 && i > 0 && s > 0 && c <= 0 && i >= s && s >= d }},
	{26, func(d, i, s, c float64) bool { return d <= 0 && i > 0 && s > 0 && c > 0 && i >= s && s >= c }},
	{27, func(d, i, s, c float64) bool { return d > 0 && i > 0 && s <= 0 && c > 0 && i >= c && c >= d }},
	{28, func(d, i, s, c float64) bool { return d <= 0 && i > 0 && s > 0 && c > 0 && i >= c && c >= s }},
	{29, func(d, i, s, c float64) bool { return d > 0 && i > 0 && s > 0 && c <= 0 && s >= d && d >= i }},
	{30, func(d, i, s, c float64) bool { return d > 0 && i <= 0 && s > 0 && c > 0 && s >= d && d >= c }},
	{31, func(d, i, s, c float64) bool { return d > 0 && i > 0 && s > 0 && c <= 0 && s >= i && i >= d }},
	{32, func(d, i, s, c float64) bool { return d <= 0 && i > 0 && s > 0 && c > 0 && s >= i && i >= c }},
	{33, func(d, i, s, c float64) bool { return d > 0 && i <= 0 && s > 0 && c > 0 && s >= c && c >= d }},
	{34, func(d, i, s, c float64) bool { return d <= 0 && i > 0 && s > 0 && c > 0 && s >= c && c >= i }},
	{35, func(d, i, s, c float64) bool { return d > 0 && i > 0 && s <= 0 && c > 0 && c >= d && d >= i }},
	{36, func(d, i, s, c float64) bool { return d > 0 && i <= 0 && s > 0 && c > 0 && c >= d && d >= s }},
	{37, func(d, i, s, c float64) bool { return d > 0 && i > 0 && s <= 0 && c > 0 && c >= i && i >= d }},
	{38, func(d, i, s, c float64) bool { return d <= 0 && i > 0 && s > 0 && c > 0 && c >= i && i >= s }},
	{39, func(d, i, s, c float64) bool { return d > 0 && i <= 0 && s > 0 && c > 0 && c >= s && s >= d }},
	{40, func(d, i, s, c float64) bool { return d <= 0 && i > 0 && s > 0 && c > 0 && c >= s && s >= i }},
}
