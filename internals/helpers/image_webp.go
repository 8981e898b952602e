package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

/* =======================================================================
   Kompresi gambar katalog → WebP (resize keep-aspect + re-encode)
======================================================================= */

// decodeImage men-decode jpeg/png/webp dari []byte dengan sniff MIME.
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)

	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		// fallback by extension
		ext := strings.ToLower(filepath.Ext(filename))
		switch ext {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(all))
		case ".png":
			img, err = png.Decode(bytes.NewReader(all))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(all))
		default:
			return nil, fmt.Errorf("format tidak didukung: %s / %s", ct, ext)
		}
	}
	return img, err
}

// CompressImageWebP mengecilkan gambar (maks maxW x maxH, keep aspect)
// lalu meng-encode ulang sebagai WebP lossy.
func CompressImageWebP(data []byte, filename string, maxW, maxH int, quality float32) ([]byte, error) {
	img, err := decodeImage(data, filename)
	if err != nil {
		return nil, err
	}
	if quality <= 0 {
		quality = 80
	}

	b := img.Bounds()
	if (maxW > 0 && b.Dx() > maxW) || (maxH > 0 && b.Dy() > maxH) {
		img = imaging.Fit(img, maxW, maxH, imaging.CatmullRom)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
