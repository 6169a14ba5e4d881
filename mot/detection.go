package mot

import (
	"github.com/pkg/errors"
)

// Detection is a single detector output before it reaches the tracker.
// Upstream detectors usually emit many classes; the tracker consumes plain
// rectangles for a single class of interest, so filtering happens here.
type Detection struct {
	Rect       Rectangle
	ClassName  string
	Confidence float64
}

// FilterDetections keeps detections of the given class at or above the
// confidence threshold and returns their rectangles in input order.
func FilterDetections(detections []Detection, className string, minConfidence float64) []Rectangle {
	out := make([]Rectangle, 0, len(detections))
	for _, det := range detections {
		if det.ClassName != className {
			continue
		}
		if det.Confidence < minConfidence {
			continue
		}
		out = append(out, det.Rect)
	}
	return out
}

// RectsFromSlices converts raw (x1, y1, x2, y2) tuples into rectangles,
// preserving order. A tuple of the wrong arity is a contract violation by the
// detector adapter and is reported here; the tracker itself never validates.
func RectsFromSlices(raw [][]float64) ([]Rectangle, error) {
	out := make([]Rectangle, len(raw))
	for i, tuple := range raw {
		if len(tuple) != 4 {
			return nil, errors.Errorf("detection %d has %d coordinates, want 4", i, len(tuple))
		}
		out[i] = NewRect(tuple[0], tuple[1], tuple[2], tuple[3])
	}
	return out, nil
}

// SuppressOverlapping drops rectangles overlapping an earlier-kept rectangle
// with IoU above the threshold. Input order is preserved for the survivors,
// so centroid ordering downstream is unaffected. Meant for detectors that
// skip non-maximum suppression upstream.
func SuppressOverlapping(rects []Rectangle, iouThreshold float64) []Rectangle {
	kept := make([]Rectangle, 0, len(rects))
	for _, rect := range rects {
		overlaps := false
		for _, k := range kept {
			if IoU(rect, k) > iouThreshold {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, rect)
		}
	}
	return kept
}
