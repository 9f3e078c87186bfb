// thermnorm bulk-converts a directory of 16-bit thermal PNGs into linearly
// rescaled 8-bit or 16-bit grayscale PNGs, picking per-file scaling bounds
// from the camera position encoded in each filename.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/coldcam/thermnorm"
	"github.com/coldcam/thermnorm/bulknormalize"
)

// Safe for concurrent use by multiple goroutines
var client *storage.Client

func main() {
	start := time.Now()

	var inputDir, outputDir, manifest string
	var bit8, durations bool
	var concurrency int

	flag.StringVar(&inputDir, "indir", "", "Path to the directory containing the 16-bit thermal images.")
	flag.StringVar(&outputDir, "outdir", "", "(Optional) Path to the output directory. Defaults to -indir.")
	flag.BoolVar(&bit8, "bit8", false, "Include to output 8-bit images instead of 16-bit.")
	flag.StringVar(&manifest, "manifest", "", "(Optional) Path to a tab-delimited manifest with an input_file column. If provided, will only process files in the manifest rather than listing the entire directory's contents. Required when -indir is on Google Storage.")
	flag.IntVar(&concurrency, "concurrency", 0, "(Optional) Worker pool size. Defaults to one fewer than the number of CPUs.")
	flag.BoolVar(&durations, "durations", false, "(Optional) Include to print mean and median per-file conversion times after the batch.")
	flag.Parse()

	if inputDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	if outputDir == "" {
		outputDir = inputDir
	}

	// Initialize the Google Storage client only if we're pointing to Google
	// Storage paths.
	if strings.HasPrefix(inputDir, "gs://") || strings.HasPrefix(manifest, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	if strings.HasPrefix(inputDir, "gs://") && manifest == "" {
		log.Fatalln("Listing a gs:// input directory is not supported; provide -manifest instead")
	}

	depth := thermnorm.Bit16
	if bit8 {
		depth = thermnorm.Bit8
	}

	log.Println("Input directory:", inputDir)
	log.Println("Output directory:", outputDir)
	log.Println("Output bit depth:", int(depth))

	var tasks []bulknormalize.FileTask
	var err error
	if manifest != "" {
		tasks, err = bulknormalize.CurateManifest(manifest, inputDir, outputDir, bit8)
	} else {
		tasks, err = bulknormalize.CurateFiles(inputDir, outputDir, bit8)
	}
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("Found %d files for processing\n", len(tasks))

	summary := bulknormalize.RunBatch(tasks, depth, concurrency, client)

	log.Printf("Completed converting %d of %d files. Took %.2f seconds\n",
		summary.Succeeded, summary.Total, time.Since(start).Seconds())

	if durations {
		mean, median, err := summary.DurationStats()
		if err != nil {
			log.Println(err)
			return
		}
		log.Printf("Per-file conversion time: mean %.4f sec, median %.4f sec\n", mean, median)
	}
}
