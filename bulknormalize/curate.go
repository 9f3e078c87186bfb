package bulknormalize

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// InputSuffix marks files that the batch will pick up.
const InputSuffix = "16BIT.PNG"

// OutputName derives the output filename from an input filename. 8-bit
// outputs are renamed 16BIT -> 8BIT-N; 16-bit outputs get an -N marker so
// they cannot collide with their source.
func OutputName(name string, bit8 bool) string {
	if bit8 {
		return strings.ReplaceAll(name, "16BIT", "8BIT-N")
	}

	return strings.ReplaceAll(name, "16BIT.", "16BIT-N.")
}

// CurateFiles lists inputDir and builds one FileTask per file whose name
// contains InputSuffix, in directory-listing order. Listing order is not
// guaranteed stable across runs, which is acceptable because tasks are
// independent.
func CurateFiles(inputDir, outputDir string, bit8 bool) ([]FileTask, error) {
	files, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, pfx.Err(err)
	}

	tasks := make([]FileTask, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !strings.Contains(file.Name(), InputSuffix) {
			continue
		}

		tasks = append(tasks, FileTask{
			InputPath:  joinPath(inputDir, file.Name()),
			OutputPath: joinPath(outputDir, OutputName(file.Name(), bit8)),
			Index:      len(tasks),
		})
	}

	return tasks, nil
}

func joinPath(dir, name string) string {
	// filepath.Join would collapse the double slash in gs:// prefixes
	if strings.HasPrefix(dir, "gs://") {
		return strings.TrimSuffix(dir, "/") + "/" + name
	}

	return filepath.Join(dir, name)
}
