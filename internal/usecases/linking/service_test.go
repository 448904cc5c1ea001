package linking

import (
	"testing"
	"time"

	"github.com/betenlace/partners-cpa-api/infrastructure/repository/mocks"
	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type linkTestMocks struct {
	campaignRepo    *mocks.MockCampaignRepository
	linkRepo        *mocks.MockLinkRepository
	partnerRepo     *mocks.MockPartnerRepository
	partnerLinkRepo *mocks.MockPartnerLinkRepository
}

func newLinkTestService(t *testing.T) (*Service, *linkTestMocks) {
	ctrl := gomock.NewController(t)

	m := &linkTestMocks{
		campaignRepo:    mocks.NewMockCampaignRepository(ctrl),
		linkRepo:        mocks.NewMockLinkRepository(ctrl),
		partnerRepo:     mocks.NewMockPartnerRepository(ctrl),
		partnerLinkRepo: mocks.NewMockPartnerLinkRepository(ctrl),
	}

	service := &Service{
		campaignRepo:    m.campaignRepo,
		linkRepo:        m.linkRepo,
		partnerRepo:     m.partnerRepo,
		partnerLinkRepo: m.partnerLinkRepo,
		now: func() time.Time {
			return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
		},
	}

	return service, m
}

func availableCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:                3,
		Status:            domain.CampaignStatusAvailable,
		DefaultPercentage: decimal.RequireFromString("0.7"),

		TrackerDefault:                decimal.RequireFromString("1"),
		TrackerDepositDefault:         decimal.RequireFromString("1"),
		TrackerRegisteredCountDefault: decimal.RequireFromString("1"),
	}
}

func TestCreateLink_GeraPromCodeQuandoVazio(t *testing.T) {
	service, m := newLinkTestService(t)

	campaign := availableCampaign()
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)
	m.linkRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(link *domain.Link) (*domain.Link, error) {
		assert.Equal(t, int64(3), link.CampaignID)
		assert.NotEmpty(t, link.PromCode, "prom_code gerado quando não informado")
		assert.Equal(t, domain.LinkStatusAvailable, link.Status)
		link.ID = 10
		return link, nil
	})
	m.linkRepo.EXPECT().CountByCampaignAndStatus(int64(3), domain.LinkStatusAvailable).Return(int64(1), nil)

	created, err := service.CreateLink(3, "https://casa.example/r", "")
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
}

func TestCreateLink_CampanhaInexistente(t *testing.T) {
	service, m := newLinkTestService(t)

	m.campaignRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

	_, err := service.CreateLink(99, "https://casa.example/r", "abc")
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestAssignLink_HerdaOsPadroesDaCampanha(t *testing.T) {
	service, m := newLinkTestService(t)

	campaign := availableCampaign()
	link := &domain.Link{ID: 10, CampaignID: 3, PromCode: "abc123", Status: domain.LinkStatusAvailable}
	partner := &domain.Partner{ID: 5, Level: 2}

	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)
	m.partnerRepo.EXPECT().GetByID(int64(5)).Return(partner, nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)

	m.partnerLinkRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(pl *domain.PartnerLink) (*domain.PartnerLink, error) {
			assert.Equal(t, int64(5), pl.PartnerID)
			assert.Equal(t, "abc123", pl.PromCode)
			assert.True(t, campaign.DefaultPercentage.Equal(pl.PercentageCPA))
			assert.False(t, pl.IsPercentageCustom, "o percentual nasce do default da campanha")
			assert.Equal(t, domain.PartnerLinkStatusByCampaign, pl.Status)
			assert.Equal(t, 2, pl.PartnerLevel)
			assert.Equal(t, "COP", pl.CurrencyLocal)
			pl.ID = 44
			return pl, nil
		})
	m.linkRepo.EXPECT().AssignPartnerLink(int64(10), int64(44)).Return(nil)
	m.linkRepo.EXPECT().CountByCampaignAndStatus(int64(3), domain.LinkStatusAvailable).Return(int64(2), nil)

	created, err := service.AssignLink(10, 5, "COP")
	require.NoError(t, err)
	assert.Equal(t, int64(44), created.ID)
}

func TestAssignLink_UltimoLinkLivreDerrubaOEstoque(t *testing.T) {
	service, m := newLinkTestService(t)

	campaign := availableCampaign()
	link := &domain.Link{ID: 10, CampaignID: 3, PromCode: "abc123", Status: domain.LinkStatusAvailable}
	partner := &domain.Partner{ID: 5}

	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)
	m.partnerRepo.EXPECT().GetByID(int64(5)).Return(partner, nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)
	m.partnerLinkRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(pl *domain.PartnerLink) (*domain.PartnerLink, error) {
			pl.ID = 44
			return pl, nil
		})
	m.linkRepo.EXPECT().AssignPartnerLink(int64(10), int64(44)).Return(nil)

	m.linkRepo.EXPECT().CountByCampaignAndStatus(int64(3), domain.LinkStatusAvailable).Return(int64(0), nil)
	m.campaignRepo.EXPECT().UpdateStatus(int64(3), domain.CampaignStatusOutStock, nil).Return(nil)

	_, err := service.AssignLink(10, 5, "COP")
	require.NoError(t, err)
}

func TestAssignLink_LinkJaAtribuido(t *testing.T) {
	service, m := newLinkTestService(t)

	partnerLinkID := int64(44)
	link := &domain.Link{ID: 10, Status: domain.LinkStatusAssigned, PartnerLinkID: &partnerLinkID}
	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)

	_, err := service.AssignLink(10, 5, "COP")
	assert.ErrorIs(t, err, ErrLinkNotAvailable)
}

func TestDetachLink_InativaOAcumuladorEPreservaOHistorico(t *testing.T) {
	service, m := newLinkTestService(t)

	partnerLinkID := int64(44)
	link := &domain.Link{ID: 10, CampaignID: 3, Status: domain.LinkStatusAssigned, PartnerLinkID: &partnerLinkID}
	campaign := &domain.Campaign{ID: 3, Status: domain.CampaignStatusOutStock}

	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)
	m.partnerLinkRepo.EXPECT().UpdateStatus(int64(44), domain.PartnerLinkStatusInactive).Return(nil)
	m.linkRepo.EXPECT().DetachPartnerLink(int64(10)).Return(nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)

	// O slot liberado reabre o estoque da campanha.
	m.linkRepo.EXPECT().CountByCampaignAndStatus(int64(3), domain.LinkStatusAvailable).Return(int64(1), nil)
	m.campaignRepo.EXPECT().UpdateStatus(int64(3), domain.CampaignStatusAvailable, nil).Return(nil)

	err := service.DetachLink(10)
	require.NoError(t, err)
}

func TestDetachLink_LinkLivreNaoPodeSerLiberado(t *testing.T) {
	service, m := newLinkTestService(t)

	link := &domain.Link{ID: 10, Status: domain.LinkStatusAvailable}
	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)

	err := service.DetachLink(10)
	assert.ErrorIs(t, err, ErrLinkNotAssigned)
}

func TestSetCampaignStatus_InativarRegistraOMarco(t *testing.T) {
	service, m := newLinkTestService(t)

	campaign := availableCampaign()
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)
	m.campaignRepo.EXPECT().UpdateStatus(int64(3), domain.CampaignStatusInactive, gomock.Any()).DoAndReturn(
		func(_ int64, _ domain.CampaignStatus, lastInactiveAt *time.Time) error {
			require.NotNil(t, lastInactiveAt, "INACTIVE registra o marco de vigência")
			assert.True(t, lastInactiveAt.Equal(service.now()))
			return nil
		})

	err := service.SetCampaignStatus(3, domain.CampaignStatusInactive)
	require.NoError(t, err)
}

func TestSetCampaignStatus_StatusAdministrativoNaoRegistraMarco(t *testing.T) {
	service, m := newLinkTestService(t)

	campaign := availableCampaign()
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)
	m.campaignRepo.EXPECT().UpdateStatus(int64(3), domain.CampaignStatusComingSoon, nil).Return(nil)

	err := service.SetCampaignStatus(3, domain.CampaignStatusComingSoon)
	require.NoError(t, err)
}

func TestSetCampaignStatus_OutStockNaoEhAtribuivel(t *testing.T) {
	service, _ := newLinkTestService(t)

	err := service.SetCampaignStatus(3, domain.CampaignStatusOutStock)
	assert.ErrorIs(t, err, ErrStatusNotAssignable)
}
