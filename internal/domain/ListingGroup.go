package domain

import (
	"errors"
	"fmt"
)

type ListingGroupNodeType string

const (
	ListingGroupSubdivision  ListingGroupNodeType = "SUBDIVISION"
	ListingGroupUnitIncluded ListingGroupNodeType = "UNIT_INCLUDED"
	ListingGroupUnitExcluded ListingGroupNodeType = "UNIT_EXCLUDED"
)

// Temporary ids used inside the single mutate that creates a tree.
const (
	ListingGroupRootTempID     int64 = -1
	ListingGroupIncludedTempID int64 = -2
	ListingGroupExcludedTempID int64 = -3
)

var (
	ErrEmptyListingValue    = errors.New("listing group value cannot be empty")
	ErrInvalidListingTree   = errors.New("listing group tree does not partition the attribute")
	ErrListingGroupConflict = errors.New("asset group already has a listing group tree for another value")
)

// ListingGroupNode is one node of a ListingGroupTree. A root has ParentTempID 0.
// A node with Index set and Value empty matches "everything else" on that index.
type ListingGroupNode struct {
	TempID       int64                `json:"temp_id"`
	ParentTempID int64                `json:"parent_temp_id,omitempty"`
	Type         ListingGroupNodeType `json:"type"`
	HasDimension bool                 `json:"has_dimension"`
	Index        LabelIndex           `json:"index"`
	Value        string               `json:"value,omitempty"`
}

// ListingGroupTree is the 3-node tree: subdivision root, included unit for Value,
// excluded unit for every other value of the same index.
type ListingGroupTree struct {
	Index LabelIndex          `json:"index"`
	Value string              `json:"value"`
	Nodes [3]ListingGroupNode `json:"nodes"`
}

func NewListingGroupTree(index LabelIndex, value string) (ListingGroupTree, error) {
	if !index.Valid() {
		return ListingGroupTree{}, ErrInvalidLabelIndex
	}
	if value == "" {
		return ListingGroupTree{}, ErrEmptyListingValue
	}

	return ListingGroupTree{
		Index: index,
		Value: value,
		Nodes: [3]ListingGroupNode{
			{TempID: ListingGroupRootTempID, Type: ListingGroupSubdivision},
			{
				TempID:       ListingGroupIncludedTempID,
				ParentTempID: ListingGroupRootTempID,
				Type:         ListingGroupUnitIncluded,
				HasDimension: true,
				Index:        index,
				Value:        value,
			},
			{
				TempID:       ListingGroupExcludedTempID,
				ParentTempID: ListingGroupRootTempID,
				Type:         ListingGroupUnitExcluded,
				HasDimension: true,
				Index:        index,
			},
		},
	}, nil
}

func (t ListingGroupTree) Root() ListingGroupNode     { return t.Nodes[0] }
func (t ListingGroupTree) Included() ListingGroupNode { return t.Nodes[1] }
func (t ListingGroupTree) Excluded() ListingGroupNode { return t.Nodes[2] }

// Validate checks that the two units split the same index into {Value} and its complement.
func (t ListingGroupTree) Validate() error {
	root, inc, exc := t.Root(), t.Included(), t.Excluded()

	switch {
	case root.Type != ListingGroupSubdivision || root.ParentTempID != 0 || root.HasDimension:
		return fmt.Errorf("%w: root must be a subdivision without dimension", ErrInvalidListingTree)
	case inc.Type != ListingGroupUnitIncluded || exc.Type != ListingGroupUnitExcluded:
		return fmt.Errorf("%w: expected one included and one excluded unit", ErrInvalidListingTree)
	case inc.ParentTempID != root.TempID || exc.ParentTempID != root.TempID:
		return fmt.Errorf("%w: units must hang from the root", ErrInvalidListingTree)
	case !inc.HasDimension || !exc.HasDimension || inc.Index != t.Index || exc.Index != t.Index:
		return fmt.Errorf("%w: units must use index %d", ErrInvalidListingTree, t.Index)
	case inc.Value == "" || inc.Value != t.Value:
		return fmt.Errorf("%w: included unit must match %q", ErrInvalidListingTree, t.Value)
	case exc.Value != "":
		return fmt.Errorf("%w: excluded unit must be the catch-all", ErrInvalidListingTree)
	}
	return nil
}
