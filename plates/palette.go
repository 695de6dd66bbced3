package plates

// geologicalPalette is the fixed 30-entry color cycle for plate rendering.
// Muted earth tones so adjacent plates stay distinguishable without looking
// like a political map.
var geologicalPalette = []string{
	"#8B7355", // saddle brown
	"#6B8E5A", // olive green
	"#7A8B99", // blue gray
	"#9B7A8B", // dusty rose
	"#8B8B6B", // dark beige
	"#6B7A8B", // slate blue
	"#8B7A6B", // light brown
	"#7A8B7A", // sage green
	"#99887A", // warm gray
	"#7A7A8B", // cool gray
	"#8B997A", // khaki
	"#7A8B8B", // teal gray
	"#8B7A7A", // rosy brown
	"#7A997A", // moss green
	"#997A8B", // mauve
	"#8B8B7A", // sand
	"#7A8B6B", // olive gray
	"#8B7A99", // lavender gray
	"#6B7A7A", // dark sage
	"#997A7A", // dusty pink
	"#7A996B", // yellow green
	"#8B6B7A", // plum gray
	"#7A7A99", // periwinkle gray
	"#996B7A", // rose gray
	"#7A8B7A", // mint gray
	"#8B7A8B", // taupe
	"#7A7A7A", // medium gray
	"#8B8B8B", // light gray
	"#6B6B6B", // dark gray
	"#999999", // silver
}

// Palette returns a copy of the geological color palette. Plate id i is
// rendered with Palette()[i % len].
func Palette() []string {
	out := make([]string, len(geologicalPalette))
	copy(out, geologicalPalette)

	return out
}
