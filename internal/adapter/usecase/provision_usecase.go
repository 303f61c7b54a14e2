package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	"sp-provision/internal/core/domain"
	"sp-provision/internal/core/port"
)

// ProvisionUseCase implements port.ProvisionUseCase. It holds no state
// between runs; the access token lives only for the duration of Provision.
type ProvisionUseCase struct {
	auth   port.Authenticator
	api    port.AdsAPI
	logger *slog.Logger

	// parallelAttach creates keywords and product ads concurrently. Both
	// still wait for the ad group and finish before the result is built.
	parallelAttach bool
}

// NewProvisionUseCase creates a use case over the given ports. When
// parallelAttach is false keywords are created before product ads.
func NewProvisionUseCase(auth port.Authenticator, api port.AdsAPI, logger *slog.Logger, parallelAttach bool) *ProvisionUseCase {
	return &ProvisionUseCase{auth: auth, api: api, logger: logger, parallelAttach: parallelAttach}
}

// Provision runs authenticate, campaign, ad group, then keywords and product
// ads. Any error aborts the run immediately and is returned as is; already
// created entities are not rolled back.
func (u *ProvisionUseCase) Provision(ctx context.Context, plan domain.Plan) (*domain.ProvisionResult, error) {
	logger := u.logger.With(slog.String("run_id", uuid.NewString()))
	logger.InfoContext(ctx, "provisioning started",
		slog.String("campaign", plan.Campaign.Name),
		slog.Int("keywords", len(plan.Keywords)),
		slog.Int("products", len(plan.Products)),
	)

	token, err := u.auth.FetchAccessToken(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "authentication failed", slog.Any("error", err))
		return nil, err
	}

	campaignID, err := u.api.CreateCampaign(ctx, token, plan.Campaign)
	if err != nil {
		logger.ErrorContext(ctx, "campaign creation failed", slog.Any("error", err))
		return nil, err
	}
	logger.InfoContext(ctx, "campaign created", slog.String("campaign_id", campaignID))

	adGroupID, err := u.api.CreateAdGroup(ctx, token, campaignID, plan.AdGroup)
	if err != nil {
		logger.ErrorContext(ctx, "ad group creation failed",
			slog.String("campaign_id", campaignID), slog.Any("error", err))
		return nil, err
	}
	logger.InfoContext(ctx, "ad group created", slog.String("ad_group_id", adGroupID))

	result := &domain.ProvisionResult{CampaignID: campaignID, AdGroupID: adGroupID}
	if err = u.attach(ctx, token, plan, result); err != nil {
		logger.ErrorContext(ctx, "attaching targets failed",
			slog.String("campaign_id", campaignID),
			slog.String("ad_group_id", adGroupID),
			slog.Any("error", err),
		)
		return nil, err
	}

	logger.InfoContext(ctx, "provisioning finished",
		slog.String("campaign_id", campaignID),
		slog.String("ad_group_id", adGroupID),
		slog.Int("keywords", len(result.KeywordIDs)),
		slog.Int("product_ads", len(result.ProductAdIDs)),
	)
	return result, nil
}

// attach creates keywords and product ads under the ad group in result and
// stores their IDs there.
func (u *ProvisionUseCase) attach(ctx context.Context, token *oauth2.Token, plan domain.Plan, result *domain.ProvisionResult) error {
	createKeywords := func(ctx context.Context) (err error) {
		result.KeywordIDs, err = u.api.CreateKeywords(ctx, token, result.CampaignID, result.AdGroupID, plan.Keywords)
		return err
	}
	createProductAds := func(ctx context.Context) (err error) {
		result.ProductAdIDs, err = u.api.CreateProductAds(ctx, token, result.CampaignID, result.AdGroupID, plan.Products)
		return err
	}

	if !u.parallelAttach {
		if err := createKeywords(ctx); err != nil {
			return err
		}
		return createProductAds(ctx)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return createKeywords(gctx) })
	g.Go(func() error { return createProductAds(gctx) })
	return g.Wait()
}
