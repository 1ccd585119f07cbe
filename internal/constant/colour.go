package constant

import "strings"

// noteColours is the fixed palette a note can be painted with. The stored
// value is the resolved rgb string, not the colour name.
var noteColours = map[string]string{
	"green":  "rgb(0,255,0)",
	"red":    "rgb(255,0,0)",
	"blue":   "rgb(0,0,255)",
	"yellow": "rgb(255,255,0)",
	"grey":   "rgb(128,128,128)",
	"purple": "rgb(128,0,128)",
	"brown":  "rgb(165,42,42)",
	"orange": "rgb(255,165,0)",
	"pink":   "rgb(255,192,203)",
	"black":  "rgb(0,0,0)",
	"silver": "rgb(192,192,192)",
	"teal":   "rgb(0,128,128)",
	"white":  "rgb(255,255,255)",
}

// ResolveColour maps a palette name (case-insensitive) to its rgb string.
func ResolveColour(name string) (string, bool) {
	rgb, ok := noteColours[strings.ToLower(name)]
	return rgb, ok
}
