package mot

import (
	"math"
	"testing"
)

const (
	eps = 0.0001
)

func TestEuclideanDistance(t *testing.T) {
	p1 := Point{X: 341, Y: 264}
	p2 := Point{X: 421, Y: 427}
	correnctAnswer := 181.57367
	answer := euclideanDistance(p1, p2)
	if math.Abs(answer-correnctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correnctAnswer)
	}
}

func TestCenterTruncation(t *testing.T) {
	rects := []Rectangle{
		NewRect(0, 0, 10, 10),
		NewRect(0, 0, 11, 11),
		NewRect(-3, -3, 0, 0),
		NewRect(0, 0, 3, 3),
	}
	correctAnswers := []Point{
		{X: 5, Y: 5},
		{X: 5, Y: 5},
		{X: -1, Y: -1},
		{X: 1, Y: 1},
	}
	for i, rect := range rects {
		answer := rect.Center()
		if answer != correctAnswers[i] {
			t.Errorf("Wrong centroid for %v: %v, correct answer: %v", rect, answer, correctAnswers[i])
		}
	}
}

func TestIoU(t *testing.T) {
	r1 := NewRect(0, 0, 10, 10)
	r2 := NewRect(5, 0, 15, 10)
	correnctAnswer := 1.0 / 3.0
	answer := IoU(r1, r2)
	if math.Abs(answer-correnctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correnctAnswer)
	}
	if IoU(r1, r1) != 1.0 {
		t.Errorf("IoU of a rectangle with itself must be 1.0, got %v", IoU(r1, r1))
	}
	if IoU(r1, NewRect(20, 20, 30, 30)) != 0.0 {
		t.Errorf("IoU of disjoint rectangles must be 0.0")
	}
}

func TestDiagonal(t *testing.T) {
	rect := NewRect(0, 0, 3, 4)
	if math.Abs(rect.Diagonal()-5.0) > eps {
		t.Errorf("Wrong diagonal: %v, correct answer: 5.0", rect.Diagonal())
	}
}
