// internal/models/answer.go
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type answerKind int

const (
	answerNone answerKind = iota
	answerIndex
	answerLabel
)

// Answer is the polymorphic answer value attached to a quiz question: either
// an option index or a literal string, serialized as a raw number or string.
// The zero value means "not answered".
type Answer struct {
	kind  answerKind
	index int
	label string
}

func IndexAnswer(i int) Answer { return Answer{kind: answerIndex, index: i} }

func LabelAnswer(s string) Answer { return Answer{kind: answerLabel, label: s} }

func (a Answer) IsSet() bool { return a.kind != answerNone }

// Equal compares under exact representation: an index never equals a label,
// even if the label spells the same number.
func (a Answer) Equal(b Answer) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case answerIndex:
		return a.index == b.index
	case answerLabel:
		return a.label == b.label
	default:
		return true
	}
}

func (a Answer) String() string {
	switch a.kind {
	case answerIndex:
		return strconv.Itoa(a.index)
	case answerLabel:
		return a.label
	default:
		return ""
	}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case answerIndex:
		return []byte(strconv.Itoa(a.index)), nil
	case answerLabel:
		return json.Marshal(a.label)
	default:
		return []byte("null"), nil
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Answer{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return err
		}
		*a = LabelAnswer(label)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("answer must be a string or a number: %w", err)
	}
	*a = IndexAnswer(int(n))
	return nil
}
