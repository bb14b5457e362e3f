package game

import (
	"errors"
	"fmt"
	"math"
)

type Grade string

const (
	GradeF  Grade = "f"
	GradeD  Grade = "d"
	GradeC  Grade = "c"
	GradeB  Grade = "b"
	GradeA  Grade = "a"
	GradeS  Grade = "s"
	GradeSS Grade = "ss"
)

var ErrAccuracy = errors.New("accuracy outside [0, 1]")

// Grades lists every grade, worst first.
var Grades = [...]Grade{GradeF, GradeD, GradeC, GradeB, GradeA, GradeS, GradeSS}

// Lower bounds are inclusive, so 0.6 is a d and 0.99 is an ss.
var gradeFloors = [...]float64{0, 0.6, 0.7, 0.8, 0.9, 0.95, 0.99}

// GradeFor maps an accuracy in [0, 1] to a letter grade.
func GradeFor(acc float64) (Grade, error) {
	if math.IsNaN(acc) || acc < 0 || acc > 1 {
		return "", fmt.Errorf("%w: %v", ErrAccuracy, acc)
	}
	grade := Grades[0]
	for i, floor := range gradeFloors {
		if acc >= floor {
			grade = Grades[i]
		}
	}
	return grade, nil
}
