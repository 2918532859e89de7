// Package bigchar renders words as large block art using half-block characters.
package bigchar

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	faceOnce   sync.Once
	loadedFace font.Face
)

func face() font.Face {
	faceOnce.Do(func() {
		fnt, err := opentype.Parse(gobold.TTF)
		if err != nil {
			return
		}
		f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
			Size: 48,
			DPI:  72,
		})
		if err != nil {
			return
		}
		loadedFace = f
	})
	return loadedFace
}

// RenderWord renders word using half-block characters (▀▄█).
// cols and rows define the output size in terminal cells.
func RenderWord(word string, cols, rows int) string {
	f := face()
	if word == "" || f == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	word = strings.ToUpper(word)

	metrics := f.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	advance := font.MeasureString(f, word).Ceil()

	padding := 2
	srcWidth := advance + padding*2
	srcHeight := ascent + descent + padding*2

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: f,
		Dot:  fixed.P(padding, padding+ascent),
	}
	d.DrawString(word)

	// rows*2 because each cell holds two vertical pixels
	scaled := scaleDown(srcImg, cols, rows*2)
	return imageToHalfBlocks(scaled, cols, rows)
}

// scaleDown scales a grayscale image using area averaging
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Max.X
	srcHeight := src.Bounds().Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)
			if sx2 <= sx1 {
				sx2 = min(sx1+1, srcWidth)
			}
			if sy2 <= sy1 {
				sy2 = min(sy1+1, srcHeight)
			}

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// imageToHalfBlocks converts a grayscale image to half-block art
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	const threshold = uint8(60)

	var result strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := brightness(img, col, row*2) > threshold
			bottomOn := brightness(img, col, row*2+1) > threshold

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

// IsAvailable reports whether the banner font loaded.
func IsAvailable() bool {
	return face() != nil
}

type cacheKey struct {
	word       string
	cols, rows int
}

var (
	cacheMu sync.Mutex
	cache   = make(map[cacheKey]string)
)

// GetCached returns a cached rendering or renders a new one.
func GetCached(word string, cols, rows int) string {
	if !IsAvailable() {
		return ""
	}

	key := cacheKey{word: word, cols: cols, rows: rows}
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if cached, ok := cache[key]; ok {
		return cached
	}

	rendered := RenderWord(word, cols, rows)
	cache[key] = rendered
	return rendered
}
