package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// fonts holds the faces used for buttons, zone labels and the banner.
type fonts struct {
	ui     *text.GoTextFace
	banner *text.GoTextFace
}

func loadFonts() (*fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load ui font: %w", err)
	}
	return &fonts{
		ui:     &text.GoTextFace{Source: src, Size: 14},
		banner: &text.GoTextFace{Source: src, Size: 16},
	}, nil
}
