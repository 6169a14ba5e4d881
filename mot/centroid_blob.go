package mot

// CentroidBlob is a single tracked object owned by CentroidTracker.
// Identity is the integer ID assigned at registration; centroid and bounding
// box are replaced on every successful match.
type CentroidBlob struct {
	id          int
	centroid    Point
	bbox        Rectangle
	disappeared int
	track       []Point
	maxTrackLen int
}

func newCentroidBlob(id int, centroid Point, bbox Rectangle) *CentroidBlob {
	blob := CentroidBlob{
		id:          id,
		centroid:    centroid,
		bbox:        bbox,
		disappeared: 0,
		track:       make([]Point, 0, 150),
		maxTrackLen: 150,
	}
	blob.track = append(blob.track, centroid)
	return &blob
}

// GetID returns blob's identifier
func (blob *CentroidBlob) GetID() int {
	return blob.id
}

// GetCenter returns blob's current centroid
func (blob *CentroidBlob) GetCenter() Point {
	return blob.centroid
}

// GetBBox returns blob's current bounding box
func (blob *CentroidBlob) GetBBox() Rectangle {
	return blob.bbox
}

// GetDiagonal returns blob's current bounding box diagonal
func (blob *CentroidBlob) GetDiagonal() float64 {
	return blob.bbox.Diagonal()
}

// GetDisappeared returns the number of consecutive frames the blob has gone unmatched
func (blob *CentroidBlob) GetDisappeared() int {
	return blob.disappeared
}

// GetTrack returns blob's current track. Be careful: this is not copy of track, but reference to it
func (blob *CentroidBlob) GetTrack() []Point {
	return blob.track
}

// GetMaxTrackLen returns blob's max track length
func (blob *CentroidBlob) GetMaxTrackLen() int {
	return blob.maxTrackLen
}

// SetMaxTrackLen sets blob's max track length
func (blob *CentroidBlob) SetMaxTrackLen(newMaxTrackLen int) {
	blob.maxTrackLen = newMaxTrackLen
}

// update replaces the blob's centroid and bounding box with the matched
// detection's values and resets the disappeared counter.
func (blob *CentroidBlob) update(centroid Point, bbox Rectangle) {
	blob.centroid = centroid
	blob.bbox = bbox
	blob.disappeared = 0
	blob.track = append(blob.track, centroid)
	if len(blob.track) > blob.maxTrackLen {
		blob.track = blob.track[1:]
	}
}

// incDisappeared increases blob's unmatched frames counter
func (blob *CentroidBlob) incDisappeared() {
	blob.disappeared++
}
