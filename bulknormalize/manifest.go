package bulknormalize

import (
	"encoding/csv"
	"io"
	"io/ioutil"
	"log"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

type manifestRow struct {
	InputFile string `csv:"input_file"`
}

// CurateManifest builds the task list from a tab-delimited manifest with an
// input_file column instead of listing the whole input directory. Manifest
// entries that do not match the input naming convention are logged and
// skipped.
func CurateManifest(manifestPath, inputDir, outputDir string, bit8 bool) ([]FileTask, error) {
	fileBytes, err := ioutil.ReadFile(manifestPath)
	if err != nil {
		return nil, pfx.Err(err)
	}

	// Tell gocsv to use tab as the delimiter, and to treat a manifest without
	// the input_file column as an error rather than an empty batch
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = '\t'
		return r
	})
	gocsv.FailIfUnmatchedStructTags = true

	var rows []*manifestRow
	if err := gocsv.UnmarshalBytes(fileBytes, &rows); err != nil {
		return nil, pfx.Err(err)
	}

	tasks := make([]FileTask, 0, len(rows))
	for _, row := range rows {
		if !strings.Contains(row.InputFile, InputSuffix) {
			log.Printf("%s: does not match the %s naming convention. Skipping file...\n", row.InputFile, InputSuffix)
			continue
		}

		tasks = append(tasks, FileTask{
			InputPath:  joinPath(inputDir, row.InputFile),
			OutputPath: joinPath(outputDir, OutputName(row.InputFile, bit8)),
			Index:      len(tasks),
		})
	}

	return tasks, nil
}
