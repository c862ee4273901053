package image

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// WatermarkText ilan fotoğraflarına basılan yazı
const WatermarkText = "DERYA EMLAK WHO ESTATE"

// ApplyWatermark resmin köşegeni boyunca yarı saydam bir yazı basar.
// Yazı boyutu köşegen uzunluğundan türetilir, açı en-boy oranından.
func ApplyWatermark(img image.Image) (image.Image, error) {
	bounds := img.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	fontSize := math.Sqrt(w*w+h*h) / 30
	if fontSize < 12 {
		fontSize = 12
	}
	angle := math.Atan2(h, w)

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    fontSize,
		Hinting: font.HintingFull,
	})

	dc := gg.NewContextForImage(img)
	dc.SetFontFace(face)
	dc.SetRGBA(1, 1, 1, 0.2)
	dc.RotateAbout(-angle, w/2, h/2)
	dc.DrawStringAnchored(WatermarkText, w/2, h/2, 0.5, 0.5)

	return dc.Image(), nil
}
