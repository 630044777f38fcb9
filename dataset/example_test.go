package dataset_test

import (
	"fmt"
	"log"

	"github.com/arloliu/linfit/dataset"
	"github.com/arloliu/linfit/format"
	"github.com/arloliu/linfit/regression"
)

func ExampleEncoder_Encode() {
	points := regression.PointsFromPairs([][2]float64{{1, 3}, {2, 5}, {3, 7}})

	enc, err := dataset.NewEncoder(dataset.WithCompression(format.CompressionNone), dataset.WithBigEndian())
	if err != nil {
		log.Fatal(err)
	}

	data, err := enc.Encode(points)
	if err != nil {
		log.Fatal(err)
	}

	dec, err := dataset.NewDecoder(data)
	if err != nil {
		log.Fatal(err)
	}
	decoded, err := dec.Points()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("size:", len(data))
	fmt.Println("points:", dec.Len(), "big-endian:", dec.Header().BigEndian())
	fmt.Println("last:", decoded[2].X, decoded[2].Y)
	// Output:
	// size: 72
	// points: 3 big-endian: true
	// last: 3 7
}
