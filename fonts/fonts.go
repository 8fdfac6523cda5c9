package fonts

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
)

func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// LoadDefaults registers the built-in bitmap faces. The title face is the
// same glyphs drawn at double scale by the caller.
func LoadDefaults() {
	face := text.NewGoXFace(basicfont.Face7x13)
	LoadFont(HUD, face)
	LoadFont(Title, face)
}

func LoadFont(name FontName, face text.Face) {
	fonts[name] = face
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
