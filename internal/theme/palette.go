package theme

// Palette cycles pastel backdrops across add-on cards within a category row.
var Palette = []Gradient{
	{From: "#fff7ed", To: "#fef3c7"},
	{From: "#ecfeff", To: "#f0f9ff"},
	{From: "#fdf4ff", To: "#fce7f3"},
	{From: "#ecfdf5", To: "#d1fae5"},
	{From: "#eef2ff", To: "#e0e7ff"},
	{From: "#f8fafc", To: "#e2e8f0"},
}

func PaletteAt(index int) Gradient {
	if index < 0 {
		index = -index
	}
	return Palette[index%len(Palette)]
}
