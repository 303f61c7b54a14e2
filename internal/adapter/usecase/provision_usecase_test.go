package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"sp-provision/internal/core/domain"
	"sp-provision/internal/core/port/mocks"
)

var token = &oauth2.Token{AccessToken: "Atza|token", TokenType: "Bearer"}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// callLog records the order in which the API mock is hit.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

// TestProvisionDefaultPlan runs the example plan against an API that hands
// out deterministic IDs and checks the aggregate shape.
func TestProvisionDefaultPlan(t *testing.T) {
	auth := mocks.NewMockAuthenticator(t)
	api := mocks.NewMockAdsAPI(t)
	plan := domain.DefaultPlan()
	order := &callLog{}

	auth.EXPECT().FetchAccessToken(mock.Anything).Return(token, nil).Once()

	campaign := api.EXPECT().
		CreateCampaign(mock.Anything, token, plan.Campaign).
		Run(func(context.Context, *oauth2.Token, domain.CampaignSpec) { order.add("campaign") }).
		Return("C-100", nil).
		Once()
	adGroup := api.EXPECT().
		CreateAdGroup(mock.Anything, token, "C-100", plan.AdGroup).
		Run(func(context.Context, *oauth2.Token, string, domain.AdGroupSpec) { order.add("adGroup") }).
		Return("AG-200", nil).
		Once().
		NotBefore(campaign)
	api.EXPECT().
		CreateKeywords(mock.Anything, token, "C-100", "AG-200", plan.Keywords).
		Run(func(context.Context, *oauth2.Token, string, string, []domain.Keyword) { order.add("keywords") }).
		Return([]string{"KW-1", "KW-2", "KW-3"}, nil).
		Once().
		NotBefore(adGroup)
	api.EXPECT().
		CreateProductAds(mock.Anything, token, "C-100", "AG-200", plan.Products).
		Run(func(context.Context, *oauth2.Token, string, string, []domain.Product) { order.add("productAds") }).
		Return([]string{"AD-1", "AD-2", "AD-3"}, nil).
		Once().
		NotBefore(adGroup)

	svc := NewProvisionUseCase(auth, api, newLogger(), false)
	result, err := svc.Provision(context.Background(), plan)
	require.NoError(t, err)

	assert.Equal(t, &domain.ProvisionResult{
		CampaignID:   "C-100",
		AdGroupID:    "AG-200",
		KeywordIDs:   []string{"KW-1", "KW-2", "KW-3"},
		ProductAdIDs: []string{"AD-1", "AD-2", "AD-3"},
	}, result)
	assert.Equal(t, []string{"campaign", "adGroup", "keywords", "productAds"}, order.calls)
}

// TestProvisionAbortsOnRejectedCampaign ensures nothing downstream is
// attempted when the campaign comes back with no success entries.
func TestProvisionAbortsOnRejectedCampaign(t *testing.T) {
	auth := mocks.NewMockAuthenticator(t)
	api := mocks.NewMockAdsAPI(t)
	plan := domain.DefaultPlan()

	auth.EXPECT().FetchAccessToken(mock.Anything).Return(token, nil)
	api.EXPECT().
		CreateCampaign(mock.Anything, token, plan.Campaign).
		Return("", &domain.CreationRejectedError{Resource: "campaigns"})

	svc := NewProvisionUseCase(auth, api, newLogger(), false)
	result, err := svc.Provision(context.Background(), plan)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrCreationRejected)
	api.AssertNotCalled(t, "CreateAdGroup", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "CreateKeywords", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "CreateProductAds", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProvisionAuthenticationFailure(t *testing.T) {
	auth := mocks.NewMockAuthenticator(t)
	api := mocks.NewMockAdsAPI(t)

	auth.EXPECT().FetchAccessToken(mock.Anything).Return(nil, domain.ErrAuthentication).Once()

	svc := NewProvisionUseCase(auth, api, newLogger(), false)
	_, err := svc.Provision(context.Background(), domain.DefaultPlan())

	assert.ErrorIs(t, err, domain.ErrAuthentication)
	assert.Empty(t, api.Calls)
}

// TestProvisionKeywordFailure checks fail-fast after the ad group exists:
// the error surfaces and product ads are never attempted.
func TestProvisionKeywordFailure(t *testing.T) {
	auth := mocks.NewMockAuthenticator(t)
	api := mocks.NewMockAdsAPI(t)
	plan := domain.DefaultPlan()
	boom := errors.New("connection reset")

	auth.EXPECT().FetchAccessToken(mock.Anything).Return(token, nil)
	api.EXPECT().CreateCampaign(mock.Anything, token, plan.Campaign).Return("C-1", nil)
	api.EXPECT().CreateAdGroup(mock.Anything, token, "C-1", plan.AdGroup).Return("AG-1", nil)
	api.EXPECT().CreateKeywords(mock.Anything, token, "C-1", "AG-1", plan.Keywords).Return(nil, boom)

	svc := NewProvisionUseCase(auth, api, newLogger(), false)
	result, err := svc.Provision(context.Background(), plan)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, boom)
	api.AssertNotCalled(t, "CreateProductAds", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProvisionParallelAttach(t *testing.T) {
	auth := mocks.NewMockAuthenticator(t)
	api := mocks.NewMockAdsAPI(t)
	plan := domain.DefaultPlan()

	auth.EXPECT().FetchAccessToken(mock.Anything).Return(token, nil)
	campaign := api.EXPECT().CreateCampaign(mock.Anything, token, plan.Campaign).Return("C-1", nil)
	adGroup := api.EXPECT().CreateAdGroup(mock.Anything, token, "C-1", plan.AdGroup).Return("AG-1", nil).NotBefore(campaign.Call)
	api.EXPECT().
		CreateKeywords(mock.Anything, token, "C-1", "AG-1", plan.Keywords).
		Return([]string{"KW-1", "KW-2", "KW-3"}, nil).
		NotBefore(adGroup)
	api.EXPECT().
		CreateProductAds(mock.Anything, token, "C-1", "AG-1", plan.Products).
		Return([]string{"AD-1", "AD-2", "AD-3"}, nil).
		NotBefore(adGroup)

	svc := NewProvisionUseCase(auth, api, newLogger(), true)
	result, err := svc.Provision(context.Background(), plan)
	require.NoError(t, err)

	assert.Equal(t, []string{"KW-1", "KW-2", "KW-3"}, result.KeywordIDs)
	assert.Equal(t, []string{"AD-1", "AD-2", "AD-3"}, result.ProductAdIDs)
}

func TestProvisionParallelAttachFailure(t *testing.T) {
	auth := mocks.NewMockAuthenticator(t)
	api := mocks.NewMockAdsAPI(t)
	plan := domain.DefaultPlan()

	auth.EXPECT().FetchAccessToken(mock.Anything).Return(token, nil)
	api.EXPECT().CreateCampaign(mock.Anything, token, plan.Campaign).Return("C-1", nil)
	api.EXPECT().CreateAdGroup(mock.Anything, token, "C-1", plan.AdGroup).Return("AG-1", nil)
	api.EXPECT().
		CreateKeywords(mock.Anything, token, "C-1", "AG-1", plan.Keywords).
		Return([]string{"KW-1"}, nil)
	api.EXPECT().
		CreateProductAds(mock.Anything, token, "C-1", "AG-1", plan.Products).
		Return(nil, &domain.CreationRejectedError{Resource: "productAds"})

	svc := NewProvisionUseCase(auth, api, newLogger(), true)
	result, err := svc.Provision(context.Background(), plan)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrCreationRejected)
}
