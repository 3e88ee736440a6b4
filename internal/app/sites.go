package app

import (
	"fmt"

	"StorefrontPayments/config"
	"StorefrontPayments/internal/domain/checkout"
)

// siteResolver adapts the parsed configuration to the domain's SiteResolver.
type siteResolver struct {
	cfg config.Config
}

func newSiteResolver(cfg config.Config) *siteResolver {
	return &siteResolver{cfg: cfg}
}

func (r *siteResolver) Site(siteID string) (checkout.Site, error) {
	sc, err := r.cfg.Site(siteID)
	if err != nil {
		return checkout.Site{}, fmt.Errorf("%w: %s", checkout.ErrSiteNotFound, siteID)
	}
	return checkout.Site{
		ID:              siteID,
		MerchantAccount: sc.MerchantAccount,
		APIKey:          sc.APIKey,
		HMACKey:         sc.HMACKey,
		WebhookUser:     sc.WebhookUser,
		WebhookPassword: sc.WebhookPassword,
		Environment:     sc.Environment,
	}, nil
}
