package mot

import (
	"gonum.org/v1/gonum/mat"
)

// CentroidTracker assigns stable integer identities to per-frame detections
// using nearest-centroid association. It owns all tracked objects; callers
// receive a fresh id -> box mapping on every Update and must not hold
// references across calls.
//
// The tracker is stateful and order-dependent: exactly one Update call may be
// in flight at a time and calls must follow frame order.
type CentroidTracker struct {
	// Next identifier to hand out. Strictly increasing, never reused, so it
	// doubles as "total unique objects seen so far" for downstream counters.
	nextObjectID int
	// Registration order of live objects. Row ordering of the distance
	// matrix (and therefore the greedy tie-break) depends on it.
	objectIDs []int
	// Main storage
	objects map[int]*CentroidBlob
	// Max number of consecutive unmatched frames before an object is forgotten
	maxDisappeared int
	// Algorithm to use for matching
	algorithm MatchingAlgorithm
}

// NewDefaultCentroidTracker creates a CentroidTracker with maxDisappeared=50
// and greedy matching.
func NewDefaultCentroidTracker() *CentroidTracker {
	return NewCentroidTracker(50)
}

// NewCentroidTracker creates a new instance of CentroidTracker with greedy matching.
func NewCentroidTracker(maxDisappeared int) *CentroidTracker {
	return NewCentroidTrackerWithAlgorithm(maxDisappeared, MatchingAlgorithmGreedy)
}

// NewCentroidTrackerWithAlgorithm creates a new instance of CentroidTracker
// with the specified matching algorithm.
func NewCentroidTrackerWithAlgorithm(maxDisappeared int, algorithm MatchingAlgorithm) *CentroidTracker {
	return &CentroidTracker{
		nextObjectID:   0,
		objectIDs:      make([]int, 0),
		objects:        make(map[int]*CentroidBlob),
		maxDisappeared: maxDisappeared,
		algorithm:      algorithm,
	}
}

// Update matches the frame's detections against the tracked objects and
// advances every object's lifecycle. It returns the full mapping of live
// object id to that object's most recently known bounding box, including
// objects that went unmatched this frame but have not expired yet.
//
// Inputs are trusted: malformed rectangles are processed numerically without
// validation.
func (tracker *CentroidTracker) Update(detections []Rectangle) map[int]Rectangle {
	// No detections: age out every live object, register nothing
	if len(detections) == 0 {
		for _, objectID := range tracker.liveIDs() {
			blob := tracker.objects[objectID]
			blob.incDisappeared()
			if blob.disappeared > tracker.maxDisappeared {
				tracker.deregister(objectID)
			}
		}
		return tracker.snapshot()
	}

	inputCentroids := make([]Point, len(detections))
	for i := range detections {
		inputCentroids[i] = detections[i].Center()
	}

	// Nothing tracked yet: every detection becomes a new object, in input
	// order, so ids follow the input list
	if len(tracker.objects) == 0 {
		for i := range detections {
			tracker.register(inputCentroids[i], detections[i])
		}
		return tracker.snapshot()
	}

	// Distance matrix: rows follow registration order of live objects,
	// columns follow input order
	rowIDs := tracker.liveIDs()
	d := mat.NewDense(len(rowIDs), len(inputCentroids), nil)
	for i, objectID := range rowIDs {
		objectCentroid := tracker.objects[objectID].centroid
		for j := range inputCentroids {
			d.Set(i, j, euclideanDistance(objectCentroid, inputCentroids[j]))
		}
	}

	var pairs [][2]int
	switch tracker.algorithm {
	case MatchingAlgorithmHungarian:
		pairs = hungarianAssignment(d)
	default:
		pairs = greedyAssignment(d)
	}

	usedRows := make(map[int]struct{}, len(pairs))
	usedCols := make(map[int]struct{}, len(pairs))
	for _, pair := range pairs {
		row, col := pair[0], pair[1]
		usedRows[row] = struct{}{}
		usedCols[col] = struct{}{}
		tracker.objects[rowIDs[row]].update(inputCentroids[col], detections[col])
	}

	// Unmatched objects age and possibly expire
	for row, objectID := range rowIDs {
		if _, ok := usedRows[row]; ok {
			continue
		}
		blob := tracker.objects[objectID]
		blob.incDisappeared()
		if blob.disappeared > tracker.maxDisappeared {
			tracker.deregister(objectID)
		}
	}

	// Unmatched detections become new objects, in ascending column order
	for col := range detections {
		if _, ok := usedCols[col]; ok {
			continue
		}
		tracker.register(inputCentroids[col], detections[col])
	}

	return tracker.snapshot()
}

// TotalSeen returns the number of identities ever registered. Monotonically
// non-decreasing across the stream's lifetime, even as objects expire.
func (tracker *CentroidTracker) TotalSeen() int {
	return tracker.nextObjectID
}

// ActiveCount returns the number of currently tracked objects
func (tracker *CentroidTracker) ActiveCount() int {
	return len(tracker.objects)
}

// ObjectIDs returns the ids of currently tracked objects in registration order
func (tracker *CentroidTracker) ObjectIDs() []int {
	return tracker.liveIDs()
}

// Object returns the tracked object with the given id, if it is still live
func (tracker *CentroidTracker) Object(objectID int) (*CentroidBlob, bool) {
	blob, ok := tracker.objects[objectID]
	return blob, ok
}

func (tracker *CentroidTracker) register(centroid Point, bbox Rectangle) {
	tracker.objects[tracker.nextObjectID] = newCentroidBlob(tracker.nextObjectID, centroid, bbox)
	tracker.objectIDs = append(tracker.objectIDs, tracker.nextObjectID)
	tracker.nextObjectID++
}

// deregister removes the object from every internal collection. The id is
// never reported or reused afterwards.
func (tracker *CentroidTracker) deregister(objectID int) {
	delete(tracker.objects, objectID)
	for i, id := range tracker.objectIDs {
		if id == objectID {
			tracker.objectIDs = append(tracker.objectIDs[:i], tracker.objectIDs[i+1:]...)
			break
		}
	}
}

// liveIDs returns a copy of the registration-ordered id list, safe to iterate
// while registering or deregistering.
func (tracker *CentroidTracker) liveIDs() []int {
	ids := make([]int, len(tracker.objectIDs))
	copy(ids, tracker.objectIDs)
	return ids
}

func (tracker *CentroidTracker) snapshot() map[int]Rectangle {
	out := make(map[int]Rectangle, len(tracker.objects))
	for objectID, blob := range tracker.objects {
		out[objectID] = blob.bbox
	}
	return out
}
