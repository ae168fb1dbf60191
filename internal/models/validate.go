package models

import (
	"fmt"
	"strings"
)

// violations accumulates validation messages in the order the rules run.
// Handlers report the whole list, not just the first failure, and for a
// given field the presence rule always runs before length or range rules.
type violations []string

func (v *violations) presence(field, value string) {
	if strings.TrimSpace(value) == "" {
		*v = append(*v, field+" can't be blank")
	}
}

func (v *violations) presenceList(field string, length int) {
	if length == 0 {
		*v = append(*v, field+" can't be blank")
	}
}

func (v *violations) exactLength(field, value string, n int) {
	if len(value) != n {
		*v = append(*v, fmt.Sprintf("%s is the wrong length (should be %d characters)", field, n))
	}
}

func (v *violations) nonNegativeInt(field string, value int) {
	if value < 0 {
		*v = append(*v, field+" must be greater than or equal to 0")
	}
}

func (v *violations) nonNegativeFloat(field string, value float64) {
	if value < 0 {
		*v = append(*v, field+" must be greater than or equal to 0")
	}
}
