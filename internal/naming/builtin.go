package naming

import "sync"

// builtinEntries is a small set of common CSS colour names used when no
// dataset file is configured.
var builtinEntries = []Entry{
	{Name: "Black", Hex: "#000000"},
	{Name: "White", Hex: "#ffffff"},
	{Name: "Gray", Hex: "#808080"},
	{Name: "Silver", Hex: "#c0c0c0"},
	{Name: "Red", Hex: "#ff0000"},
	{Name: "Maroon", Hex: "#800000"},
	{Name: "Orange", Hex: "#ffa500"},
	{Name: "Gold", Hex: "#ffd700"},
	{Name: "Yellow", Hex: "#ffff00"},
	{Name: "Olive", Hex: "#808000"},
	{Name: "Lime", Hex: "#00ff00"},
	{Name: "Green", Hex: "#008000"},
	{Name: "Spring Green", Hex: "#00ff7f"},
	{Name: "Teal", Hex: "#008080"},
	{Name: "Cyan", Hex: "#00ffff"},
	{Name: "Azure", Hex: "#007fff"},
	{Name: "Dodger Blue", Hex: "#1e90ff"},
	{Name: "Blue", Hex: "#0000ff"},
	{Name: "Navy", Hex: "#000080"},
	{Name: "Indigo", Hex: "#4b0082"},
	{Name: "Purple", Hex: "#800080"},
	{Name: "Violet", Hex: "#ee82ee"},
	{Name: "Magenta", Hex: "#ff00ff"},
	{Name: "Pink", Hex: "#ffc0cb"},
	{Name: "Brown", Hex: "#a52a2a"},
	{Name: "Chocolate", Hex: "#d2691e"},
	{Name: "Coral", Hex: "#ff7f50"},
	{Name: "Salmon", Hex: "#fa8072"},
	{Name: "Khaki", Hex: "#f0e68c"},
	{Name: "Lavender", Hex: "#e6e6fa"},
}

var (
	builtinOnce sync.Once
	builtin     *Dataset
)

// Default returns the built-in dataset.
func Default() *Dataset {
	builtinOnce.Do(func() {
		d, err := New(builtinEntries)
		if err != nil {
			panic("naming: invalid built-in dataset: " + err.Error())
		}
		builtin = d
	})
	return builtin
}
