package clicking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/betenlace/partners-cpa-api/infrastructure/integrator/ipapi"
	ipapidomain "github.com/betenlace/partners-cpa-api/infrastructure/integrator/ipapi/domain"
	ipapimocks "github.com/betenlace/partners-cpa-api/infrastructure/integrator/ipapi/mocks"
	"github.com/betenlace/partners-cpa-api/infrastructure/repository/mocks"
	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type clickTestMocks struct {
	dailyRepo        *mocks.MockBetenlaceDailyRepository
	partnerDailyRepo *mocks.MockPartnerLinkDailyRepository
	clickRepo        *mocks.MockClickTrackingRepository
	partnerLinkRepo  *mocks.MockPartnerLinkRepository
	campaignRepo     *mocks.MockCampaignRepository
	partnerRepo      *mocks.MockPartnerRepository
	enricher         *ipapimocks.MockIntegrator
}

func newClickTestService(t *testing.T) (*Service, *clickTestMocks) {
	ctrl := gomock.NewController(t)

	m := &clickTestMocks{
		dailyRepo:        mocks.NewMockBetenlaceDailyRepository(ctrl),
		partnerDailyRepo: mocks.NewMockPartnerLinkDailyRepository(ctrl),
		clickRepo:        mocks.NewMockClickTrackingRepository(ctrl),
		partnerLinkRepo:  mocks.NewMockPartnerLinkRepository(ctrl),
		campaignRepo:     mocks.NewMockCampaignRepository(ctrl),
		partnerRepo:      mocks.NewMockPartnerRepository(ctrl),
		enricher:         ipapimocks.NewMockIntegrator(ctrl),
	}

	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	service := &Service{
		dailyRepo:        m.dailyRepo,
		partnerDailyRepo: m.partnerDailyRepo,
		clickRepo:        m.clickRepo,
		partnerLinkRepo:  m.partnerLinkRepo,
		campaignRepo:     m.campaignRepo,
		partnerRepo:      m.partnerRepo,
		enricher:         m.enricher,
		window:           300 * time.Second,
		maxDays:          30,
		loc:              loc,
		now: func() time.Time {
			return time.Date(2024, 3, 15, 10, 30, 0, 0, loc)
		},
	}

	return service, m
}

func clickTestDay(t *testing.T) time.Time {
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	return time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
}

func strPtr(s string) *string { return &s }

func TestProcessTask_NovoIPCriaFingerprintEnriquecida(t *testing.T) {
	service, m := newClickTestService(t)
	day := clickTestDay(t)

	task := domain.ClickTask{
		LinkID:              10,
		CurrencyCondition:   "USD",
		CurrencyFixedIncome: "USD",
		ClientIP:            "200.1.2.3",
	}

	m.dailyRepo.EXPECT().EnsureDaily(int64(10), day, "USD", "USD").Return(nil)
	m.dailyRepo.EXPECT().IncrementClickCount(int64(10), day).Return(nil)

	m.clickRepo.EXPECT().LatestByLinkAndIP(int64(10), "200.1.2.3").Return(nil, nil)
	m.enricher.EXPECT().Enrich("200.1.2.3").Return(&ipapidomain.Enrichment{
		IP:          "200.1.2.3",
		CountryCode: strPtr("CO"),
		CountryName: strPtr("Colombia"),
		AsnCode:     strPtr("AS3816"),
	}, nil)
	m.clickRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(click *domain.ClickTracking) error {
		assert.Equal(t, int64(10), click.LinkID)
		assert.Equal(t, "200.1.2.3", click.IP)
		assert.Equal(t, int64(1), click.Count)
		require.NotNil(t, click.CountryCode)
		assert.Equal(t, "CO", *click.CountryCode)
		return nil
	})

	err := service.ProcessTask(context.Background(), task)
	require.NoError(t, err)
}

func TestProcessTask_IPDentroDaJanelaSoIncrementa(t *testing.T) {
	service, m := newClickTestService(t)
	day := clickTestDay(t)

	task := domain.ClickTask{LinkID: 10, ClientIP: "200.1.2.3"}

	// Fingerprint criada 2 minutos antes, dentro da janela de 300s.
	latest := &domain.ClickTracking{
		ID:        900,
		LinkID:    10,
		IP:        "200.1.2.3",
		Count:     3,
		CreatedAt: service.now().Add(-2 * time.Minute),
	}

	m.dailyRepo.EXPECT().EnsureDaily(int64(10), day, "", "").Return(nil)
	m.dailyRepo.EXPECT().IncrementClickCount(int64(10), day).Return(nil)
	m.clickRepo.EXPECT().LatestByLinkAndIP(int64(10), "200.1.2.3").Return(latest, nil)
	m.clickRepo.EXPECT().IncrementCount(int64(900)).Return(nil)

	err := service.ProcessTask(context.Background(), task)
	require.NoError(t, err)
}

func TestProcessTask_IPForaDaJanelaCriaNovaFingerprint(t *testing.T) {
	service, m := newClickTestService(t)
	day := clickTestDay(t)

	task := domain.ClickTask{LinkID: 10, ClientIP: "200.1.2.3"}

	latest := &domain.ClickTracking{
		ID:        900,
		LinkID:    10,
		IP:        "200.1.2.3",
		CreatedAt: service.now().Add(-10 * time.Minute),
	}

	m.dailyRepo.EXPECT().EnsureDaily(int64(10), day, "", "").Return(nil)
	m.dailyRepo.EXPECT().IncrementClickCount(int64(10), day).Return(nil)
	m.clickRepo.EXPECT().LatestByLinkAndIP(int64(10), "200.1.2.3").Return(latest, nil)
	m.enricher.EXPECT().Enrich("200.1.2.3").Return(nil, ipapi.ErrPrivateIP)
	m.clickRepo.EXPECT().Create(gomock.Any()).Return(nil)

	err := service.ProcessTask(context.Background(), task)
	require.NoError(t, err)
}

func TestProcessTask_IPCompostoIncrementaODiaUmaVez(t *testing.T) {
	service, m := newClickTestService(t)
	day := clickTestDay(t)

	// X-Forwarded-For com dois saltos: uma tarefa, duas fingerprints, um
	// único incremento no contador do dia.
	task := domain.ClickTask{LinkID: 10, ClientIP: "200.1.2.3, 10.0.0.1"}

	m.dailyRepo.EXPECT().EnsureDaily(int64(10), day, "", "").Return(nil)
	m.dailyRepo.EXPECT().IncrementClickCount(int64(10), day).Return(nil).Times(1)

	m.clickRepo.EXPECT().LatestByLinkAndIP(int64(10), "200.1.2.3").Return(nil, nil)
	m.enricher.EXPECT().Enrich("200.1.2.3").Return(&ipapidomain.Enrichment{IP: "200.1.2.3"}, nil)
	m.clickRepo.EXPECT().Create(gomock.Any()).Return(nil)

	m.clickRepo.EXPECT().LatestByLinkAndIP(int64(10), "10.0.0.1").Return(nil, nil)
	m.enricher.EXPECT().Enrich("10.0.0.1").Return(nil, ipapi.ErrPrivateIP)
	m.clickRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(click *domain.ClickTracking) error {
		assert.Equal(t, "10.0.0.1", click.IP)
		assert.Nil(t, click.CountryCode, "IP privado fica sem enriquecimento")
		return nil
	})

	err := service.ProcessTask(context.Background(), task)
	require.NoError(t, err)
}

func TestProcessTask_CliqueNoLimiteDaJanelaCriaNovaFingerprint(t *testing.T) {
	service, m := newClickTestService(t)
	day := clickTestDay(t)

	task := domain.ClickTask{LinkID: 10, ClientIP: "200.1.2.3"}

	// Exatamente em created_at + W: a janela é estrita, conta como nova.
	latest := &domain.ClickTracking{
		ID:        900,
		LinkID:    10,
		IP:        "200.1.2.3",
		CreatedAt: service.now().Add(-300 * time.Second),
	}

	m.dailyRepo.EXPECT().EnsureDaily(int64(10), day, "", "").Return(nil)
	m.dailyRepo.EXPECT().IncrementClickCount(int64(10), day).Return(nil)
	m.clickRepo.EXPECT().LatestByLinkAndIP(int64(10), "200.1.2.3").Return(latest, nil)
	m.enricher.EXPECT().Enrich("200.1.2.3").Return(nil, ipapi.ErrPrivateIP)
	m.clickRepo.EXPECT().Create(gomock.Any()).Return(nil)

	err := service.ProcessTask(context.Background(), task)
	require.NoError(t, err)
}

func TestProcessTask_PrimeiroCliqueMaterializaALinhaDoParceiro(t *testing.T) {
	service, m := newClickTestService(t)
	day := clickTestDay(t)

	partnerLinkID := int64(44)
	adviserID := int64(7)
	task := domain.ClickTask{
		LinkID:              10,
		PartnerLinkID:       &partnerLinkID,
		CurrencyCondition:   "USD",
		CurrencyFixedIncome: "USD",
		ClientIP:            "200.1.2.3",
	}

	partnerLink := &domain.PartnerLink{
		ID:            44,
		PartnerID:     5,
		CampaignID:    3,
		Status:        domain.PartnerLinkStatusActive,
		PercentageCPA: decimal.RequireFromString("0.7"),
		CurrencyLocal: "COP",
	}
	campaign := &domain.Campaign{ID: 3, Status: domain.CampaignStatusAvailable}
	partner := &domain.Partner{ID: 5, AdviserID: &adviserID}

	m.dailyRepo.EXPECT().EnsureDaily(int64(10), day, "USD", "USD").Return(nil)
	m.dailyRepo.EXPECT().IncrementClickCount(int64(10), day).Return(nil)

	m.partnerLinkRepo.EXPECT().GetByID(int64(44)).Return(partnerLink, nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)
	m.dailyRepo.EXPECT().GetByCpaAndDate(int64(10), day).Return(&domain.BetenlaceDailyReport{ID: 500}, nil)
	m.partnerRepo.EXPECT().GetByID(int64(5)).Return(partner, nil)

	m.partnerDailyRepo.EXPECT().EnsureDaily(gomock.Any()).DoAndReturn(
		func(report *domain.PartnerLinkDailyReport) error {
			assert.Equal(t, int64(500), report.BetenlaceDailyReportID)
			assert.Equal(t, int64(44), report.PartnerLinkID)
			assert.Equal(t, int64(5), report.PartnerID)
			assert.True(t, day.Equal(report.CreatedAt))
			assert.Equal(t, "USD", report.CurrencyCondition)
			assert.Equal(t, "COP", report.CurrencyLocal)
			require.NotNil(t, report.AdviserID)
			assert.Equal(t, int64(7), *report.AdviserID)
			return nil
		})

	m.clickRepo.EXPECT().LatestByLinkAndIP(int64(10), "200.1.2.3").Return(nil, nil)
	m.enricher.EXPECT().Enrich("200.1.2.3").Return(&ipapidomain.Enrichment{IP: "200.1.2.3"}, nil)
	m.clickRepo.EXPECT().Create(gomock.Any()).Return(nil)

	err := service.ProcessTask(context.Background(), task)
	require.NoError(t, err)
}

func TestProcessTask_CampanhaInativaNaoCriaLinhaDoParceiro(t *testing.T) {
	service, m := newClickTestService(t)
	day := clickTestDay(t)

	partnerLinkID := int64(44)
	task := domain.ClickTask{LinkID: 10, PartnerLinkID: &partnerLinkID, ClientIP: "200.1.2.3"}

	lastInactive := day.AddDate(0, 0, -2)
	partnerLink := &domain.PartnerLink{
		ID:         44,
		PartnerID:  5,
		CampaignID: 3,
		Status:     domain.PartnerLinkStatusByCampaign,
	}
	campaign := &domain.Campaign{
		ID:             3,
		Status:         domain.CampaignStatusInactive,
		LastInactiveAt: &lastInactive,
	}

	// O clique conta para a casa; só a linha do parceiro é suprimida.
	m.dailyRepo.EXPECT().EnsureDaily(int64(10), day, "", "").Return(nil)
	m.dailyRepo.EXPECT().IncrementClickCount(int64(10), day).Return(nil)

	m.partnerLinkRepo.EXPECT().GetByID(int64(44)).Return(partnerLink, nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)

	m.clickRepo.EXPECT().LatestByLinkAndIP(int64(10), "200.1.2.3").Return(nil, nil)
	m.enricher.EXPECT().Enrich("200.1.2.3").Return(nil, ipapi.ErrPrivateIP)
	m.clickRepo.EXPECT().Create(gomock.Any()).Return(nil)

	err := service.ProcessTask(context.Background(), task)
	require.NoError(t, err)
}

func TestProcessTask_FalhaDeEnriquecimentoNaoDerrubaATarefa(t *testing.T) {
	service, m := newClickTestService(t)
	day := clickTestDay(t)

	task := domain.ClickTask{LinkID: 10, ClientIP: "200.1.2.3"}

	m.dailyRepo.EXPECT().EnsureDaily(int64(10), day, "", "").Return(nil)
	m.dailyRepo.EXPECT().IncrementClickCount(int64(10), day).Return(nil)
	m.clickRepo.EXPECT().LatestByLinkAndIP(int64(10), "200.1.2.3").Return(nil, nil)
	m.enricher.EXPECT().Enrich("200.1.2.3").Return(nil, errors.New("timeout na consulta"))
	m.clickRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(click *domain.ClickTracking) error {
		assert.Nil(t, click.CountryCode)
		assert.Nil(t, click.AsnCode)
		return nil
	})

	err := service.ProcessTask(context.Background(), task)
	require.NoError(t, err)
}

func TestProcessTask_FalhaDeBancoEhTransitoria(t *testing.T) {
	service, m := newClickTestService(t)
	day := clickTestDay(t)

	task := domain.ClickTask{LinkID: 10, ClientIP: "200.1.2.3"}

	m.dailyRepo.EXPECT().EnsureDaily(int64(10), day, "", "").Return(errors.New("connection refused"))

	err := service.ProcessTask(context.Background(), task)
	require.Error(t, err)
	assert.True(t, IsTransient(err), "falha de IO deve valer retentativa no worker")
}

func TestListClicks_SemDatasUsaOsUltimosDias(t *testing.T) {
	service, m := newClickTestService(t)
	day := clickTestDay(t)

	end := day.AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -30)

	m.clickRepo.EXPECT().ListByLinkAndDateRange(int64(10), start, end).Return([]*domain.ClickTracking{}, nil)

	clicks, err := service.ListClicks(10, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, clicks)
}

func TestListClicks_IntervaloMaiorQueOMaximoEhCortado(t *testing.T) {
	service, m := newClickTestService(t)
	day := clickTestDay(t)

	loc := day.Location()
	startDate := time.Date(2023, 1, 1, 0, 0, 0, 0, loc)
	endDate := time.Date(2024, 3, 10, 0, 0, 0, 0, loc)

	end := time.Date(2024, 3, 11, 0, 0, 0, 0, loc)
	clamped := end.AddDate(0, 0, -30)

	m.clickRepo.EXPECT().ListByLinkAndDateRange(int64(10), clamped, end).Return(nil, nil)

	_, err := service.ListClicks(10, &startDate, &endDate)
	require.NoError(t, err)
}
