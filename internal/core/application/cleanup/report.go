package cleanup

import (
	"recruitment/internal/core/domain/model/asset"
)

// AssetSet is the group of remote assets to reconcile for one entity.
// Nil and empty members are skipped.
type AssetSet struct {
	CoverImage *asset.Asset
	CV         *asset.Asset
	Media      []*asset.Asset
	Documents  []*asset.Asset
}

func (s AssetSet) IsEmpty() bool {
	return s.CoverImage == nil && s.CV == nil && len(s.Media) == 0 && len(s.Documents) == 0
}

// Len is the number of assets the set will attempt to delete.
func (s AssetSet) Len() int {
	n := len(s.Media) + len(s.Documents)
	if s.CoverImage != nil {
		n++
	}
	if s.CV != nil {
		n++
	}
	return n
}

// Outcome is the result of one delete attempt.
type Outcome struct {
	URL          string
	PublicID     string
	ResourceKind asset.ResourceKind
	Success      bool
	// AlreadyAbsent is set when the provider no longer had the object.
	AlreadyAbsent bool
	Err           error
}

// Report aggregates the outcomes of one reconcile call. CoverImage and CV are
// nil when the set had no such asset. Media and Documents keep the order of
// the input set.
type Report struct {
	CoverImage *bool
	CV         *bool
	Media      []Outcome
	Documents  []Outcome
	// Details holds the cover image and CV outcomes, keyed by field.
	Details map[asset.Field]Outcome
}

// Failures counts the outcomes that did not succeed.
func (r Report) Failures() int {
	n := 0
	for _, o := range r.Media {
		if !o.Success {
			n++
		}
	}
	for _, o := range r.Documents {
		if !o.Success {
			n++
		}
	}
	if r.CoverImage != nil && !*r.CoverImage {
		n++
	}
	if r.CV != nil && !*r.CV {
		n++
	}
	return n
}
