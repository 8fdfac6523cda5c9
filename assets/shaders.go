package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// TintShader multiplies the player rectangle by a uniform colour. Nil until
// LoadShaders succeeds.
var TintShader *ebiten.Shader

// LoadShaders compiles the shaders once. Later calls are no-ops.
func LoadShaders() error {
	if TintShader != nil {
		return nil
	}
	s, err := compile("tint")
	if err != nil {
		return err
	}
	TintShader = s
	return nil
}

func compile(name string) (*ebiten.Shader, error) {
	src, err := shaderFS.ReadFile("shaders/" + name + ".kage")
	if err != nil {
		return nil, fmt.Errorf("read shader %s: %w", name, err)
	}
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile shader %s: %w", name, err)
	}
	return s, nil
}
