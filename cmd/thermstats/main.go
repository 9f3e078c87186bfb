// thermstats surveys the raw intensity distribution of a folder of thermal
// images. Its min/max/mean/std report and console histogram are the starting
// point for choosing calibration bounds for a newly deployed camera.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"os"
	"runtime"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/runningvariance"
	"github.com/coldcam/thermnorm/imgio"
)

// HistogramSampleStride keeps the histogram input to a manageable size on
// large folders by sampling every Nth pixel.
const HistogramSampleStride = 101

type Stat struct {
	runningvariance.RunningStat
	Min float64
	Max float64
}

func NewStat() *Stat {
	return &Stat{
		*runningvariance.NewRunningStat(),
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
	}
}

// IntensityStats accumulates pixel intensities from concurrent workers.
type IntensityStats struct {
	m       sync.Mutex
	rv      *Stat
	sampled []float64
}

func (c *IntensityStats) Push(x float64) {
	c.m.Lock()
	defer c.m.Unlock()

	c.rv.Push(x)
	if x > c.rv.Max {
		c.rv.Max = x
	}
	if x < c.rv.Min {
		c.rv.Min = x
	}

	if c.rv.N%HistogramSampleStride == 0 {
		c.sampled = append(c.sampled, x)
	}
}

// Safe for concurrent use by multiple goroutines
var client *storage.Client

func main() {
	var filePath string

	flag.StringVar(&filePath, "path", "", "Path to the folder with thermal image files whose intensity norms you wish to obtain.")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(1)
	}

	// Initialize the Google Storage client only if we're pointing to Google
	// Storage paths.
	if strings.HasPrefix(filePath, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	is := &IntensityStats{rv: NewStat()}

	if err := runFolder(filePath, is); err != nil {
		log.Fatalln(err)
	}

	fmt.Println("Based on", is.rv.N, "pixels")
	fmt.Println("Min:", is.rv.Min)
	fmt.Println("Max:", is.rv.Max)
	fmt.Println("Mean:", is.rv.Mean())
	fmt.Println("Std:", is.rv.StandardDeviation())

	if len(is.sampled) < 1 {
		return
	}

	// The number of buckets is arbitrary.
	hist := histogram.Hist(25, is.sampled)
	if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
		log.Fatalln(err)
	}
}

func runFolder(path string, is *IntensityStats) error {
	files, err := os.ReadDir(path)
	if err != nil {
		return err
	}

	concurrency := runtime.NumCPU()
	sem := make(chan struct{}, concurrency)

	// Process every image in the folder
	for i, file := range files {
		if file.IsDir() {
			continue
		}

		sem <- struct{}{}
		go func(file string) {
			defer func() { <-sem }()

			if !strings.HasSuffix(file, ".png") &&
				!strings.HasSuffix(file, ".PNG") &&
				!strings.HasSuffix(file, ".bmp") &&
				!strings.HasSuffix(file, ".gif") {
				return
			}

			if err := processOneImageFromPath(path+"/"+file, is); err != nil {
				log.Printf("%s: %s\n", file, err)
			}
		}(file.Name())

		if (i+1)%1000 == 0 {
			log.Printf("Processed %d images\n", i+1)
		}
	}

	for i := 0; i < cap(sem); i++ {
		sem <- struct{}{}
	}

	return nil
}

func processOneImageFromPath(path string, is *IntensityStats) error {
	img, err := imgio.OpenImage(path, client)
	if err != nil {
		return err
	}

	processOneImage(img, is)

	return nil
}

func processOneImage(img image.Image, is *IntensityStats) {
	for x := 0; x < img.Bounds().Dx(); x++ {
		for y := 0; y < img.Bounds().Dy(); y++ {
			col := color.Gray16Model.Convert(img.At(x, y))
			is.Push(float64(col.(color.Gray16).Y))
		}
	}
}
