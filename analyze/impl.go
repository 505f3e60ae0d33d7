package analyze

import "errors"
import "image"
import "image/color"
import "image/png"
import "os"

import "github.com/x448/float16"

var errEmptySpectrogram = errors.New("spectrogramEmpty")

func dumpbuffer(spec [][]float64) (out []uint16) {
	for _, frame := range spec {
		for _, v := range frame {
			out = append(out, float16.Fromfloat32(float32(v)).Bits())
		}
	}
	return
}

func dumpimage(name string, spec [][]float64, reverse bool) error {
	if len(spec) == 0 || len(spec[0]) == 0 {
		return errEmptySpectrogram
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}

	bins := len(spec[0])
	img := image.NewGray16(image.Rect(0, 0, len(spec), bins))

	var mgc_max, mgc_min = (-99999999.), (9999999.)
	for _, frame := range spec {
		for _, v := range frame {
			if v > mgc_max {
				mgc_max = v
			}
			if v < mgc_min {
				mgc_min = v
			}
		}
	}
	scale := mgc_max - mgc_min
	if scale == 0 {
		scale = 1
	}

	for x, frame := range spec {
		for y, v := range frame {
			col := color.Gray16{Y: uint16(65535 * (v - mgc_min) / scale)}
			if reverse {
				img.SetGray16(x, bins-y-1, col)
			} else {
				img.SetGray16(x, y, col)
			}
		}
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
