package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// LabelIndex selects one of the five product custom attributes (custom_label0..4).
type LabelIndex int

const (
	LabelIndex0 LabelIndex = iota
	LabelIndex1
	LabelIndex2
	LabelIndex3
	LabelIndex4
)

var ErrInvalidLabelIndex = errors.New("label index must be between 0 and 4")

var segmentFields = [...]string{
	"segments.product_custom_attribute0",
	"segments.product_custom_attribute1",
	"segments.product_custom_attribute2",
	"segments.product_custom_attribute3",
	"segments.product_custom_attribute4",
}

var dimensionIndexes = [...]string{"INDEX0", "INDEX1", "INDEX2", "INDEX3", "INDEX4"}

// NewLabelIndex validates a numeric index coming from flags or request bodies.
func NewLabelIndex(i int) (LabelIndex, error) {
	if i < int(LabelIndex0) || i > int(LabelIndex4) {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidLabelIndex, i)
	}
	return LabelIndex(i), nil
}

// ParseDimensionIndex converts the listing-group dimension name (INDEX0..INDEX4) back to a LabelIndex.
func ParseDimensionIndex(s string) (LabelIndex, error) {
	digits := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "INDEX")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabelIndex, s)
	}
	return NewLabelIndex(n)
}

func (i LabelIndex) Valid() bool {
	return i >= LabelIndex0 && i <= LabelIndex4
}

func (i LabelIndex) Int() int {
	return int(i)
}

// SegmentField is the GAQL segment carrying the attribute value in performance views.
func (i LabelIndex) SegmentField() string {
	return segmentFields[i]
}

// DimensionIndex is the enum value used by listing-group filter dimensions.
func (i LabelIndex) DimensionIndex() string {
	return dimensionIndexes[i]
}

func (i LabelIndex) String() string {
	return "custom_label" + strconv.Itoa(int(i))
}
