package usecase

import (
	"context"

	"github.com/codalab/clkit/internal/domain"
)

// SearchBundlesInput contains the search keywords.
type SearchBundlesInput struct {
	Keywords []string
}

// SearchMatch is one bundle matched by a search, with its reconstructed
// creation command line.
type SearchMatch struct {
	UUID string
	Name string
	Args string
	Line string // Recreate command line for this bundle
}

// SearchBundlesOutput contains the matched bundles.
type SearchBundlesOutput struct {
	Matches []SearchMatch
}

// SearchBundles is the use case for finding bundles and preparing their
// recreate lines, used by the search command and the interactive picker.
type SearchBundles struct {
	bundles domain.BundleClient
	clBin   string
}

// NewSearchBundles creates a new SearchBundles use case.
func NewSearchBundles(bundles domain.BundleClient, clBin string) *SearchBundles {
	return &SearchBundles{
		bundles: bundles,
		clBin:   clBin,
	}
}

// Execute searches for bundle uuids and resolves the name and creation
// arguments of each match.
func (uc *SearchBundles) Execute(ctx context.Context, in SearchBundlesInput) (*SearchBundlesOutput, error) {
	uuids, err := uc.bundles.Search(ctx, in.Keywords)
	if err != nil {
		return nil, err
	}
	if len(uuids) == 0 {
		return nil, domain.ErrNoMatches
	}

	matches := make([]SearchMatch, 0, len(uuids))
	for _, uuid := range uuids {
		name, err := uc.bundles.FieldValue(ctx, uuid, domain.FieldName)
		if err != nil {
			return nil, err
		}
		args, err := uc.bundles.FieldValue(ctx, uuid, domain.FieldArgs)
		if err != nil {
			return nil, err
		}
		matches = append(matches, SearchMatch{
			UUID: uuid,
			Name: name,
			Args: args,
			Line: domain.RecreateLine(uc.clBin, args),
		})
	}
	return &SearchBundlesOutput{Matches: matches}, nil
}
