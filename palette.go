package wealth

// palette is the fixed sequence of competitor colors, assigned in column order.
var palette = [...]string{"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A", "#19D3F3"}

// Color returns the display color of the competitor in column i.
// Colors cycle when there are more competitors than colors.
func Color(i int) string { return palette[i%len(palette)] }
