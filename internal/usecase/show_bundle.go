package usecase

import (
	"context"

	"github.com/codalab/clkit/internal/domain"
)

// ShowBundleInput contains the parameters for showing a bundle.
type ShowBundleInput struct {
	BundleSpec string // Bundle identifier (required)
}

// ShowBundleOutput contains the fetched bundle fields.
type ShowBundleOutput struct {
	Info *domain.BundleInfo
}

// ShowBundle is the use case for fetching a bundle's display fields.
type ShowBundle struct {
	bundles domain.BundleClient
}

// NewShowBundle creates a new ShowBundle use case.
func NewShowBundle(bundles domain.BundleClient) *ShowBundle {
	return &ShowBundle{bundles: bundles}
}

// Execute fetches each display field via cl. The first cl failure aborts
// and propagates, so an unknown identifier surfaces cl's own error.
func (uc *ShowBundle) Execute(ctx context.Context, in ShowBundleInput) (*ShowBundleOutput, error) {
	info := &domain.BundleInfo{}
	for _, field := range domain.ShowFields {
		value, err := uc.bundles.FieldValue(ctx, in.BundleSpec, field)
		if err != nil {
			return nil, err
		}
		info.SetField(field, value)
	}
	return &ShowBundleOutput{Info: info}, nil
}
