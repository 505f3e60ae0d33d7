package codec

import "image"
import "image/color"
import "image/png"
import "os"

import _ "image/jpeg"

import "github.com/faiface/beep"
import "github.com/faiface/beep/wav"
import "github.com/mewkiz/flac"

func loadimage(name string) (*image.Gray, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	img := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.Set(x-bounds.Min.X, y-bounds.Min.Y, color.GrayModel.Convert(src.At(x, y)))
		}
	}
	return img, nil
}

func dumpimage(name string, img *image.Gray) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func loadwav(name string) (out []float64, sr uint32) {
	file, err := os.Open(name)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	stream, format, err := wav.Decode(file)
	if err != nil {
		println(err.Error())
		return nil, 0
	}
	defer stream.Close()

	samples := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(samples)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			out = append(out, samples[i][0])
		}
	}

	return out, uint32(format.SampleRate)
}

type monoStreamer struct {
	vec []float64
	pos int
}

func (s *monoStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.vec) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.vec) {
		samples[n][0] = s.vec[s.pos]
		samples[n][1] = s.vec[s.pos]
		n++
		s.pos++
	}
	return n, true
}

func (s *monoStreamer) Err() error { return nil }

func dumpwav(name string, vec []float64, sr int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(sr),
		NumChannels: 1,
		Precision:   2,
	}
	if err := wav.Encode(f, &monoStreamer{vec: vec}, format); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func loadflac(name string) (out []float64, sr uint32) {
	stream, err := flac.Open(name)
	if err != nil {
		println(err.Error())
		return nil, 0
	}
	defer stream.Close()

	scale := float64(int64(1) << (stream.Info.BitsPerSample - 1))
	for {
		frame, err := stream.ParseNext()
		if err != nil {
			break
		}
		for _, s := range frame.Subframes[0].Samples {
			out = append(out, float64(s)/scale)
		}
	}

	return out, stream.Info.SampleRate
}
