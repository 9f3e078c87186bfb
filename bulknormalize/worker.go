package bulknormalize

import (
	"fmt"
	"log"

	"cloud.google.com/go/storage"
	"github.com/coldcam/thermnorm"
	"github.com/coldcam/thermnorm/imgio"
)

// ProcessOneFile converts a single thermal frame: load, resolve scaling
// bounds, normalize, save. Every returned error carries the offending path.
// client may be nil when no gs:// inputs are in play.
func ProcessOneFile(task FileTask, depth thermnorm.BitDepth, client *storage.Client, progress *Progress) error {
	if progress != nil {
		progress.Mark(task.Index)
	}

	img, err := imgio.OpenImage(task.InputPath, client)
	if err != nil {
		return fmt.Errorf("%s: %w", task.InputPath, err)
	}

	res := thermnorm.ResolveScaling(task.InputPath, img.Bounds().Dy())
	if res.Warning != nil {
		log.Printf("Warning: %s: %v\n", task.InputPath, res.Warning)
	}

	normalized, err := thermnorm.Normalize(img, depth, &res.Bounds)
	if err != nil {
		return fmt.Errorf("%s: %w", task.InputPath, err)
	}

	if err := imgio.SaveGrayPNG(normalized, task.OutputPath); err != nil {
		return fmt.Errorf("%s: %w", task.OutputPath, err)
	}

	return nil
}
