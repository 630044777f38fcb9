package dataset

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linfit/compress"
	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/format"
	"github.com/arloliu/linfit/internal/hash"
	"github.com/arloliu/linfit/regression"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func tutorialPoints() []regression.Point {
	return regression.PointsFromPairs([][2]float64{
		{2, 5}, {3, 5}, {1.5, 2.5}, {8, 6.4}, {9, 9},
		{7, 8.2}, {4, 6.8}, {6, 7}, {5, 4}, {1, 3},
	})
}

func rampPoints(n int) []regression.Point {
	points := make([]regression.Point, n)
	for i := range points {
		x := float64(i) * 0.1
		points[i] = regression.Point{X: x, Y: 2.5 + 0.75*x + math.Sin(x)}
	}

	return points
}

func TestEncoder_Defaults(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	data, err := enc.Encode(tutorialPoints())
	require.NoError(t, err)

	h, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, h.Compression)
	require.False(t, h.BigEndian())
	require.Equal(t, uint32(10), h.Count)
	require.Equal(t, uint32(len(data)-HeaderSize), h.PayloadLength)
}

func TestRoundTrip(t *testing.T) {
	samples := map[string][]regression.Point{
		"single":   {{X: 2, Y: 4}},
		"tutorial": tutorialPoints(),
		"ramp":     rampPoints(5000),
		"extremes": {{X: -math.MaxFloat64, Y: math.SmallestNonzeroFloat64}, {X: 0, Y: math.Copysign(0, -1)}},
	}

	for _, ct := range allCompressions {
		for _, bigEndian := range []bool{false, true} {
			order := WithLittleEndian()
			orderName := "LE"
			if bigEndian {
				order = WithBigEndian()
				orderName = "BE"
			}

			enc, err := NewEncoder(WithCompression(ct), order)
			require.NoError(t, err)

			for name, points := range samples {
				t.Run(ct.String()+"/"+orderName+"/"+name, func(t *testing.T) {
					data, err := enc.Encode(points)
					require.NoError(t, err)

					dec, err := NewDecoder(data)
					require.NoError(t, err)
					require.Equal(t, len(points), dec.Len())
					require.Equal(t, ct, dec.Header().Compression)
					require.Equal(t, bigEndian, dec.Header().BigEndian())

					got, err := dec.Points()
					require.NoError(t, err)
					require.Len(t, got, len(points))
					for i := range points {
						require.Equal(t, math.Float64bits(points[i].X), math.Float64bits(got[i].X))
						require.Equal(t, math.Float64bits(points[i].Y), math.Float64bits(got[i].Y))
					}
				})
			}
		}
	}
}

func TestRoundTrip_EstimatorUnchanged(t *testing.T) {
	points := tutorialPoints()
	want, err := regression.NewLinearEstimator(points)
	require.NoError(t, err)

	enc, err := NewEncoder()
	require.NoError(t, err)
	data, err := enc.Encode(points)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	got, err := regression.NewLinearEstimator(decoded)
	require.NoError(t, err)
	require.Equal(t, want.Slope(), got.Slope())
	require.Equal(t, want.InterceptY(), got.InterceptY())
}

func TestEncoder_CompressesRegularSample(t *testing.T) {
	points := rampPoints(5000)

	none, err := NewEncoder(WithCompression(format.CompressionNone))
	require.NoError(t, err)
	raw, err := none.Encode(points)
	require.NoError(t, err)
	require.Len(t, raw, HeaderSize+len(points)*pointSize)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		enc, err := NewEncoder(WithCompression(ct))
		require.NoError(t, err)
		data, err := enc.Encode(points)
		require.NoError(t, err)
		require.Less(t, len(data), len(raw), ct.String())
	}
}

func TestEncoder_InvalidInput(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	tests := []struct {
		name   string
		points []regression.Point
	}{
		{"nil", nil},
		{"empty", []regression.Point{}},
		{"NaN", []regression.Point{{X: 1, Y: 1}, {X: math.NaN(), Y: 2}}},
		{"Inf", []regression.Point{{X: 1, Y: math.Inf(-1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := enc.Encode(tt.points)
			require.Nil(t, data)
			require.ErrorIs(t, err, errs.ErrInvalidInput)
		})
	}
}

func TestNewEncoder_InvalidCompression(t *testing.T) {
	enc, err := NewEncoder(WithCompression(format.CompressionType(0x42)))
	require.Nil(t, enc)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestEncoder_OptionsOrder(t *testing.T) {
	enc, err := NewEncoder(WithBigEndian(), WithLittleEndian())
	require.NoError(t, err)

	data, err := enc.Encode(tutorialPoints())
	require.NoError(t, err)

	h, err := ParseHeader(data)
	require.NoError(t, err)
	require.False(t, h.BigEndian())
}

// encodeRaw builds a dataset from an already-serialized payload, bypassing
// encoder validation.
func encodeRaw(count uint32, payload []byte) []byte {
	h := Header{
		Version:       Version,
		Compression:   format.CompressionNone,
		Count:         count,
		PayloadLength: uint32(len(payload)), //nolint: gosec
		Checksum:      hash.Checksum(payload),
	}

	return append(h.AppendTo(nil), payload...)
}

func TestDecoder_Corruption(t *testing.T) {
	enc, err := NewEncoder(WithCompression(format.CompressionNone))
	require.NoError(t, err)
	valid, err := enc.Encode(tutorialPoints())
	require.NoError(t, err)

	t.Run("truncated payload", func(t *testing.T) {
		_, err := NewDecoder(valid[:len(valid)-1])
		require.ErrorIs(t, err, errs.ErrPayloadSizeMismatch)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		_, err := NewDecoder(append(append([]byte(nil), valid...), 0))
		require.ErrorIs(t, err, errs.ErrPayloadSizeMismatch)
	})

	t.Run("flipped payload bit", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[HeaderSize+3] ^= 0x10

		dec, err := NewDecoder(data)
		require.NoError(t, err)
		_, err = dec.Points()
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("count disagrees with payload", func(t *testing.T) {
		payload := valid[HeaderSize:]
		_, err := Decode(encodeRaw(11, payload))
		require.ErrorIs(t, err, errs.ErrPayloadSizeMismatch)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[1] = 'x'
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("header only", func(t *testing.T) {
		_, err := Decode(valid[:HeaderSize-4])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("non-finite coordinate", func(t *testing.T) {
		payload := make([]byte, 0, pointSize)
		payload = append(payload, make([]byte, 8)...)
		payload = appendFloat(payload, math.NaN())

		_, err := Decode(encodeRaw(1, payload))
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("empty sample", func(t *testing.T) {
		_, err := Decode(encodeRaw(0, nil))
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("payload expands past point count", func(t *testing.T) {
		zeros := make([]byte, 1024*1024)
		for _, ct := range []format.CompressionType{
			format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
		} {
			codec, err := compress.GetCodec(ct)
			require.NoError(t, err)
			stored, err := codec.Compress(zeros)
			require.NoError(t, err)

			h := Header{
				Version:       Version,
				Compression:   ct,
				Count:         1,
				PayloadLength: uint32(len(stored)), //nolint: gosec
				Checksum:      hash.Checksum(zeros),
			}
			_, err = Decode(append(h.AppendTo(nil), stored...))
			require.ErrorIs(t, err, errs.ErrPayloadSizeMismatch, ct.String())
			require.ErrorIs(t, err, errs.ErrDecompressLimit, ct.String())
		}
	})

	t.Run("corrupt compressed stream", func(t *testing.T) {
		garbage := []byte{0xff, 0xfe, 0xfd, 0xfc, 0x00, 0x01, 0x02, 0x03}
		h := Header{
			Version:       Version,
			Compression:   format.CompressionZstd,
			Count:         1,
			PayloadLength: uint32(len(garbage)),
		}
		_, err := Decode(append(h.AppendTo(nil), garbage...))
		require.Error(t, err)
	})
}

func appendFloat(buf []byte, v float64) []byte {
	bits := math.Float64bits(v)
	for i := range 8 {
		buf = append(buf, byte(bits>>(8*i)))
	}

	return buf
}

func TestEncoder_ConcurrentUse(t *testing.T) {
	enc, err := NewEncoder(WithCompression(format.CompressionLZ4))
	require.NoError(t, err)
	points := rampPoints(1000)

	var wg sync.WaitGroup
	failures := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := enc.Encode(points)
			if err != nil {
				failures <- err
				return
			}
			if _, err := Decode(data); err != nil {
				failures <- err
			}
		}()
	}
	wg.Wait()
	close(failures)

	for err := range failures {
		t.Error(err)
	}
}

func TestEncoder_OutputIndependentOfPool(t *testing.T) {
	enc, err := NewEncoder(WithCompression(format.CompressionNone))
	require.NoError(t, err)

	first, err := enc.Encode(tutorialPoints())
	require.NoError(t, err)
	snapshot := append([]byte(nil), first...)

	_, err = enc.Encode(rampPoints(200))
	require.NoError(t, err)

	require.Equal(t, snapshot, first)
}
