package model

import "fmt"

// Progress is the completion percentage of an agreement ("avance").
type Progress string

const (
	Progress0   Progress = "0%"
	Progress25  Progress = "25%"
	Progress50  Progress = "50%"
	Progress75  Progress = "75%"
	Progress100 Progress = "100%"
)

// Progresses lists every accepted value in ascending order.
var Progresses = []Progress{Progress0, Progress25, Progress50, Progress75, Progress100}

// ParseProgress converts s into a Progress.
func ParseProgress(s string) (Progress, error) {
	for _, p := range Progresses {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid progress %q", s)
}

func (p Progress) String() string { return string(p) }
