package thermnorm

import (
	"errors"
	"path/filepath"
	"strings"
)

// CameraPosition identifies which physical sensor captured a thermal frame. It
// is encoded as a single-letter token in the underscore-delimited filename.
type CameraPosition string

const (
	CameraP       CameraPosition = "P"
	CameraC       CameraPosition = "C"
	CameraS       CameraPosition = "S"
	CameraUnknown CameraPosition = ""
)

// ScalingBounds holds the raw intensity that maps to 0 (Bottom) and the raw
// intensity that maps to the top of the output range (Top).
type ScalingBounds struct {
	Bottom uint16
	Top    uint16
}

var (
	// ErrBadFilenameFormat indicates that no camera position token was found
	// in the filename. The default bounds still apply.
	ErrBadFilenameFormat = errors.New("bad filename format: no camera position token")

	// ErrUnknownCameraSize indicates a recognized camera with an unexpected
	// row count. The default bounds still apply.
	ErrUnknownCameraSize = errors.New("unknown camera size")
)

// Calibration constants for the fixed set of deployed cameras. Camera P emits
// two frame geometries with distinct calibrations.
var (
	defaultBounds    = ScalingBounds{Bottom: 51000, Top: 57500}
	cameraCBounds    = ScalingBounds{Bottom: 50500, Top: 58500}
	cameraP512Bounds = ScalingBounds{Bottom: 53500, Top: 56500}
	cameraP480Bounds = ScalingBounds{Bottom: 50500, Top: 58500}
)

// Resolution is the outcome of resolving scaling bounds for one file. Warning
// is non-nil when the filename or frame geometry was not recognized; the
// Bounds are usable either way, so the caller decides whether a warning is
// worth logging or aborting over.
type Resolution struct {
	Bounds  ScalingBounds
	Camera  CameraPosition
	Warning error
}

// ParseCameraPosition extracts the camera position from a thermal image
// filename. The first underscore-delimited token of the basename equal to P,
// C, or S wins; if none matches, CameraUnknown is returned.
func ParseCameraPosition(filename string) CameraPosition {
	for _, token := range strings.Split(filepath.Base(filename), "_") {
		switch token {
		case "P":
			return CameraP
		case "C":
			return CameraC
		case "S":
			return CameraS
		}
	}

	return CameraUnknown
}

// ResolveScaling returns the scaling bounds to use for a frame, given its
// filename and row count. It is a pure function of its inputs and safe for
// concurrent use.
func ResolveScaling(filename string, numRows int) Resolution {
	res := Resolution{
		Bounds: defaultBounds,
		Camera: ParseCameraPosition(filename),
	}

	switch res.Camera {
	case CameraP:
		switch numRows {
		case 512:
			res.Bounds = cameraP512Bounds
		case 480:
			res.Bounds = cameraP480Bounds
		default:
			res.Warning = ErrUnknownCameraSize
		}
	case CameraC:
		res.Bounds = cameraCBounds
	case CameraS:
		// Camera S shares the default bounds.
	default:
		res.Warning = ErrBadFilenameFormat
	}

	return res
}
