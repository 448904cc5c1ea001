package cpaposting

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/betenlace/partners-cpa-api/infrastructure/repository/mocks"
	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/betenlace/partners-cpa-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeTxRunner executa fn diretamente, sem banco. Registra se a transação
// chegou a ser aberta.
type fakeTxRunner struct {
	called bool
}

func (f *fakeTxRunner) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	f.called = true
	return fn(nil)
}

type testMocks struct {
	txRunner         *fakeTxRunner
	linkRepo         *mocks.MockLinkRepository
	campaignRepo     *mocks.MockCampaignRepository
	partnerRepo      *mocks.MockPartnerRepository
	partnerLinkRepo  *mocks.MockPartnerLinkRepository
	betenlaceCPARepo *mocks.MockBetenlaceCPARepository
	dailyRepo        *mocks.MockBetenlaceDailyRepository
	partnerDailyRepo *mocks.MockPartnerLinkDailyRepository
	fxRepo           *mocks.MockFxSnapshotRepository
}

func newTestService(t *testing.T) (*Service, *testMocks) {
	ctrl := gomock.NewController(t)

	m := &testMocks{
		txRunner:         &fakeTxRunner{},
		linkRepo:         mocks.NewMockLinkRepository(ctrl),
		campaignRepo:     mocks.NewMockCampaignRepository(ctrl),
		partnerRepo:      mocks.NewMockPartnerRepository(ctrl),
		partnerLinkRepo:  mocks.NewMockPartnerLinkRepository(ctrl),
		betenlaceCPARepo: mocks.NewMockBetenlaceCPARepository(ctrl),
		dailyRepo:        mocks.NewMockBetenlaceDailyRepository(ctrl),
		partnerDailyRepo: mocks.NewMockPartnerLinkDailyRepository(ctrl),
		fxRepo:           mocks.NewMockFxSnapshotRepository(ctrl),
	}

	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	service := &Service{
		txRunner:           m.txRunner,
		linkRepo:           m.linkRepo,
		campaignRepo:       m.campaignRepo,
		partnerRepo:        m.partnerRepo,
		partnerLinkRepo:    m.partnerLinkRepo,
		betenlaceCPARepo:   m.betenlaceCPARepo,
		betenlaceDailyRepo: m.dailyRepo,
		partnerDailyRepo:   m.partnerDailyRepo,
		fxRepo:             m.fxRepo,
		loc:                loc,
		now: func() time.Time {
			return time.Date(2024, 3, 15, 10, 30, 0, 0, loc)
		},
	}

	return service, m
}

// testDay é a data-alvo do lote: o dia anterior ao "agora" fixado no serviço.
func testDay(t *testing.T) time.Time {
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	return time.Date(2024, 3, 14, 0, 0, 0, 0, loc)
}

func testSnapshot() *domain.FxSnapshot {
	return &domain.FxSnapshot{
		ID: 77,
		Rates: domain.FxRates{
			"usd_cop": decimal.NewFromInt(4000),
		},
		FxPercentage: decimal.RequireFromString("0.95"),
	}
}

func adminClaims() *domain.Claims {
	return &domain.Claims{
		UserID:      1,
		UserRoleID:  domain.RoleAdmin,
		IsSuperuser: true,
	}
}

func TestPostBatch_PrimeiroLancamentoDoDia(t *testing.T) {
	service, m := newTestService(t)
	day := testDay(t)

	link := &domain.Link{ID: 10, CampaignID: 3}
	campaign := &domain.Campaign{
		ID:                  3,
		CurrencyCondition:   "USD",
		CurrencyFixedIncome: "USD",
		FixedIncomeUnitary:  decimal.NewFromInt(35),
		Status:              domain.CampaignStatusAvailable,
	}

	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)
	m.fxRepo.EXPECT().FirstOnOrAfter(day).Return(testSnapshot(), nil)

	m.dailyRepo.EXPECT().GetByCpaAndDateForUpdate(gomock.Any(), int64(10), day).Return(nil, nil)
	m.dailyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, report *domain.BetenlaceDailyReport) error {
			assert.Equal(t, int64(10), report.BetenlaceCPAID)
			// Lançado em 15/03, o lote pertence a 14/03: o dia anterior.
			assert.Equal(t, "2024-03-14", report.CreatedAt.Format("2006-01-02"))
			assert.True(t, day.Equal(report.CreatedAt))
			assert.Equal(t, int64(2), report.CpaCount)
			assert.True(t, decimal.NewFromInt(70).Equal(report.FixedIncome), "fixed_income = unitário × cpas")
			require.NotNil(t, report.FxSnapshotID)
			assert.Equal(t, int64(77), *report.FxSnapshotID)
			report.ID = 500
			return nil
		})

	m.betenlaceCPARepo.EXPECT().GetForUpdate(gomock.Any(), int64(10)).Return(&domain.BetenlaceCPA{LinkID: 10}, nil)
	m.betenlaceCPARepo.EXPECT().ApplyDelta(gomock.Any(), int64(10), gomock.Any()).DoAndReturn(
		func(_ any, _ int64, delta domain.BetenlaceCPADelta) error {
			assert.Equal(t, int64(2), delta.CpaCount, "sem linha anterior, o delta é o valor integral")
			assert.Equal(t, int64(8), delta.RegisteredCount)
			assert.True(t, decimal.NewFromInt(300).Equal(delta.Deposit))
			assert.True(t, decimal.NewFromInt(70).Equal(delta.FixedIncome))
			return nil
		})

	err := service.PostBatch(context.Background(), adminClaims(), domain.CPABatchRequest{
		Data: []domain.CPAReportItem{
			{
				IDLink:          10,
				CpaBetenlace:    2,
				RegisteredCount: 8,
				Deposit:         decimal.NewFromInt(300),
			},
		},
	})

	require.NoError(t, err)
	assert.True(t, m.txRunner.called)
}

func TestPostBatch_RelancamentoAplicaApenasDiferenca(t *testing.T) {
	service, m := newTestService(t)
	day := testDay(t)

	link := &domain.Link{ID: 10, CampaignID: 3}
	campaign := &domain.Campaign{
		ID:                 3,
		FixedIncomeUnitary: decimal.NewFromInt(35),
		Status:             domain.CampaignStatusAvailable,
	}

	// Lançamento anterior do mesmo dia: 2 CPAs, 70 de fixed income.
	prev := &domain.BetenlaceDailyReport{
		ID:              500,
		BetenlaceCPAID:  10,
		CreatedAt:       day,
		CpaCount:        2,
		RegisteredCount: 8,
		Deposit:         decimal.NewFromInt(300),
		FixedIncome:     decimal.NewFromInt(70),
	}

	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)
	m.fxRepo.EXPECT().FirstOnOrAfter(gomock.Any()).Return(testSnapshot(), nil)

	m.dailyRepo.EXPECT().GetByCpaAndDateForUpdate(gomock.Any(), int64(10), day).Return(prev, nil)
	m.dailyRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, report *domain.BetenlaceDailyReport) error {
			assert.Equal(t, int64(500), report.ID, "a linha do dia é sobrescrita, não duplicada")
			assert.Equal(t, int64(3), report.CpaCount)
			assert.True(t, decimal.NewFromInt(105).Equal(report.FixedIncome))
			return nil
		})

	m.betenlaceCPARepo.EXPECT().GetForUpdate(gomock.Any(), int64(10)).Return(&domain.BetenlaceCPA{LinkID: 10}, nil)
	m.betenlaceCPARepo.EXPECT().ApplyDelta(gomock.Any(), int64(10), gomock.Any()).DoAndReturn(
		func(_ any, _ int64, delta domain.BetenlaceCPADelta) error {
			assert.Equal(t, int64(1), delta.CpaCount, "3 informados − 2 já aplicados")
			assert.Equal(t, int64(2), delta.RegisteredCount)
			assert.True(t, decimal.NewFromInt(50).Equal(delta.Deposit))
			assert.True(t, decimal.NewFromInt(35).Equal(delta.FixedIncome))
			return nil
		})

	err := service.PostBatch(context.Background(), adminClaims(), domain.CPABatchRequest{
		Data: []domain.CPAReportItem{
			{
				IDLink:          10,
				CpaBetenlace:    3,
				RegisteredCount: 10,
				Deposit:         decimal.NewFromInt(350),
			},
		},
	})

	require.NoError(t, err)
}

func TestPostBatch_ItemComParceiro(t *testing.T) {
	service, m := newTestService(t)
	day := testDay(t)

	partnerLinkID := int64(44)
	adviserID := int64(7)
	link := &domain.Link{ID: 10, CampaignID: 3, PartnerLinkID: &partnerLinkID, Status: domain.LinkStatusAssigned}
	campaign := &domain.Campaign{
		ID:                  3,
		CurrencyCondition:   "USD",
		CurrencyFixedIncome: "USD",
		FixedIncomeUnitary:  decimal.NewFromInt(40),
		Status:              domain.CampaignStatusAvailable,
	}
	partnerLink := &domain.PartnerLink{
		ID:            44,
		PartnerID:     5,
		CampaignID:    3,
		PercentageCPA: decimal.RequireFromString("0.7"),
		Status:        domain.PartnerLinkStatusActive,
		CurrencyLocal: "COP",
	}
	partner := &domain.Partner{
		ID:        5,
		AdviserID: &adviserID,
		// Percentual do conselheiro presente, percentuais de indicação nulos.
		FixedIncomeAdviserPercentage: decimal.NewNullDecimal(decimal.RequireFromString("0.1")),
	}

	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)
	m.partnerLinkRepo.EXPECT().GetByID(int64(44)).Return(partnerLink, nil)
	m.partnerRepo.EXPECT().GetByID(int64(5)).Return(partner, nil)
	m.fxRepo.EXPECT().FirstOnOrAfter(gomock.Any()).Return(testSnapshot(), nil)

	m.dailyRepo.EXPECT().GetByCpaAndDateForUpdate(gomock.Any(), int64(10), day).Return(nil, nil)
	m.dailyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, report *domain.BetenlaceDailyReport) error {
			report.ID = 501
			return nil
		})
	m.betenlaceCPARepo.EXPECT().GetForUpdate(gomock.Any(), int64(10)).Return(&domain.BetenlaceCPA{LinkID: 10}, nil)
	m.betenlaceCPARepo.EXPECT().ApplyDelta(gomock.Any(), int64(10), gomock.Any()).Return(nil)

	m.partnerLinkRepo.EXPECT().GetForUpdate(gomock.Any(), int64(44)).Return(partnerLink, nil)
	m.partnerDailyRepo.EXPECT().GetByDailyAndPartnerLinkForUpdate(gomock.Any(), int64(501), int64(44)).Return(nil, nil)

	m.partnerLinkRepo.EXPECT().ApplyDelta(gomock.Any(), int64(44), gomock.Any()).DoAndReturn(
		func(_ any, _ int64, delta domain.PartnerLinkDelta) error {
			assert.Equal(t, int64(2), delta.CpaCount)
			// 40 × 0.7 × 2 = 56
			assert.True(t, decimal.NewFromInt(56).Equal(delta.FixedIncome))
			// 28 × 3800 × 2 = 212800 (cotação 4000 com margem 0.95)
			assert.True(t, decimal.NewFromInt(212800).Equal(delta.FixedIncomeLocal))
			return nil
		})

	m.partnerDailyRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, report *domain.PartnerLinkDailyReport) error {
			assert.Equal(t, int64(501), report.BetenlaceDailyReportID)
			assert.Equal(t, int64(44), report.PartnerLinkID)
			assert.Equal(t, int64(5), report.PartnerID)

			assert.True(t, decimal.NewFromInt(3800).Equal(report.FxBookLocal))
			assert.True(t, decimal.RequireFromString("0.7").Equal(report.PercentageCPA))
			assert.True(t, decimal.NewFromInt(28).Equal(report.FixedIncomeUnitary))
			assert.True(t, decimal.NewFromInt(56).Equal(report.FixedIncome))

			// Percentual presente gera repasse, mesmo o cálculo dando zero.
			require.True(t, report.FixedIncomeAdviser.Valid)
			assert.True(t, decimal.RequireFromString("5.6").Equal(report.FixedIncomeAdviser.Decimal))

			// Percentual nulo produz repasse nulo, não zero.
			assert.False(t, report.NetRevenueAdviser.Valid)
			assert.False(t, report.FixedIncomeReferred.Valid)
			assert.False(t, report.NetRevenueReferred.Valid)

			require.NotNil(t, report.AdviserID)
			assert.Equal(t, int64(7), *report.AdviserID)
			assert.Nil(t, report.ReferredByID)
			return nil
		})

	err := service.PostBatch(context.Background(), adminClaims(), domain.CPABatchRequest{
		Data: []domain.CPAReportItem{
			{
				IDLink:       10,
				CpaBetenlace: 2,
				CpaPartner:   2,
			},
		},
	})

	require.NoError(t, err)
}

func TestPostBatch_ParceiroForaDoEscopo(t *testing.T) {
	service, m := newTestService(t)

	partnerLinkID := int64(44)
	link := &domain.Link{ID: 10, CampaignID: 3, PartnerLinkID: &partnerLinkID}
	campaign := &domain.Campaign{ID: 3, FixedIncomeUnitary: decimal.NewFromInt(40)}
	partnerLink := &domain.PartnerLink{ID: 44, PartnerID: 5}

	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)
	m.partnerLinkRepo.EXPECT().GetByID(int64(44)).Return(partnerLink, nil)

	// Conselheiro com escopo sobre outro parceiro.
	adviser := &domain.Claims{
		UserID:     30,
		UserRoleID: domain.RoleAdviser,
		PartnerIDs: []int64{9},
	}

	err := service.PostBatch(context.Background(), adviser, domain.CPABatchRequest{
		Data: []domain.CPAReportItem{
			{IDLink: 10, CpaBetenlace: 1, CpaPartner: 1},
		},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScopeDenied))

	var cpaErr *CpaError
	require.True(t, errors.As(err, &cpaErr))
	assert.Equal(t, apiErrors.ErrPartnerScopeDenied, cpaErr.Code)

	assert.False(t, m.txRunner.called, "lote rejeitado não abre transação")
}

func TestPostBatch_LinkInexistenteRejeitaLoteInteiro(t *testing.T) {
	service, m := newTestService(t)

	link := &domain.Link{ID: 10, CampaignID: 3}
	campaign := &domain.Campaign{ID: 3, FixedIncomeUnitary: decimal.NewFromInt(40)}

	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)
	m.linkRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

	err := service.PostBatch(context.Background(), adminClaims(), domain.CPABatchRequest{
		Data: []domain.CPAReportItem{
			{IDLink: 10, CpaBetenlace: 1},
			{IDLink: 99, CpaBetenlace: 1},
		},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLinkNotFound))

	var cpaErr *CpaError
	require.True(t, errors.As(err, &cpaErr))
	assert.Equal(t, apiErrors.ErrCpaLinkNotFound, cpaErr.Code)

	assert.False(t, m.txRunner.called, "nenhum item é aplicado quando o lote é inválido")
}

func TestPostBatch_CpaPartnerMaiorQueBetenlace(t *testing.T) {
	service, m := newTestService(t)

	err := service.PostBatch(context.Background(), adminClaims(), domain.CPABatchRequest{
		Data: []domain.CPAReportItem{
			{IDLink: 10, CpaBetenlace: 1, CpaPartner: 2},
		},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, m.txRunner.called)
}

func TestPostBatch_LoteVazio(t *testing.T) {
	service, m := newTestService(t)

	err := service.PostBatch(context.Background(), adminClaims(), domain.CPABatchRequest{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, m.txRunner.called)
}

func TestPostBatch_SemSnapshotDeCambio(t *testing.T) {
	service, m := newTestService(t)
	day := testDay(t)

	link := &domain.Link{ID: 10, CampaignID: 3}
	campaign := &domain.Campaign{ID: 3, FixedIncomeUnitary: decimal.NewFromInt(40)}

	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)

	// O limiar de câmbio é a própria data-alvo (o dia anterior a agora).
	m.fxRepo.EXPECT().FirstOnOrAfter(day).Return(nil, nil)
	m.fxRepo.EXPECT().LatestBefore(day).Return(nil, nil)

	err := service.PostBatch(context.Background(), adminClaims(), domain.CPABatchRequest{
		Data: []domain.CPAReportItem{
			{IDLink: 10, CpaBetenlace: 1},
		},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFxUnavailable))

	var cpaErr *CpaError
	require.True(t, errors.As(err, &cpaErr))
	assert.Equal(t, apiErrors.ErrFxUnavailable, cpaErr.Code)
	assert.False(t, m.txRunner.called)
}

func TestPostBatch_UsaSnapshotAnteriorComoFallback(t *testing.T) {
	service, m := newTestService(t)
	day := testDay(t)

	link := &domain.Link{ID: 10, CampaignID: 3}
	campaign := &domain.Campaign{ID: 3, FixedIncomeUnitary: decimal.NewFromInt(40)}

	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)

	m.fxRepo.EXPECT().FirstOnOrAfter(day).Return(nil, nil)
	m.fxRepo.EXPECT().LatestBefore(day).Return(testSnapshot(), nil)

	m.dailyRepo.EXPECT().GetByCpaAndDateForUpdate(gomock.Any(), int64(10), day).Return(nil, nil)
	m.dailyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.betenlaceCPARepo.EXPECT().GetForUpdate(gomock.Any(), int64(10)).Return(&domain.BetenlaceCPA{LinkID: 10}, nil)
	m.betenlaceCPARepo.EXPECT().ApplyDelta(gomock.Any(), int64(10), gomock.Any()).Return(nil)

	err := service.PostBatch(context.Background(), adminClaims(), domain.CPABatchRequest{
		Data: []domain.CPAReportItem{
			{IDLink: 10, CpaBetenlace: 1},
		},
	})

	require.NoError(t, err)
}

func TestPostBatch_AcumuladorInativoEhPulado(t *testing.T) {
	service, m := newTestService(t)
	day := testDay(t)

	lastInactive := day.AddDate(0, 0, -3)
	partnerLinkID := int64(44)
	link := &domain.Link{ID: 10, CampaignID: 3, PartnerLinkID: &partnerLinkID}
	campaign := &domain.Campaign{
		ID:                 3,
		FixedIncomeUnitary: decimal.NewFromInt(40),
		Status:             domain.CampaignStatusInactive,
		LastInactiveAt:     &lastInactive,
	}
	// BY_CAMPAIGN herda a inatividade da campanha.
	partnerLink := &domain.PartnerLink{
		ID:            44,
		PartnerID:     5,
		Status:        domain.PartnerLinkStatusByCampaign,
		PercentageCPA: decimal.RequireFromString("0.7"),
		CurrencyLocal: "COP",
	}
	partner := &domain.Partner{ID: 5}

	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)
	m.partnerLinkRepo.EXPECT().GetByID(int64(44)).Return(partnerLink, nil)
	m.partnerRepo.EXPECT().GetByID(int64(5)).Return(partner, nil)
	m.fxRepo.EXPECT().FirstOnOrAfter(gomock.Any()).Return(testSnapshot(), nil)

	// A linha da casa é gravada normalmente.
	m.dailyRepo.EXPECT().GetByCpaAndDateForUpdate(gomock.Any(), int64(10), day).Return(nil, nil)
	m.dailyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.betenlaceCPARepo.EXPECT().GetForUpdate(gomock.Any(), int64(10)).Return(&domain.BetenlaceCPA{LinkID: 10}, nil)
	m.betenlaceCPARepo.EXPECT().ApplyDelta(gomock.Any(), int64(10), gomock.Any()).Return(nil)

	// O lado do parceiro é pulado: nenhuma escrita esperada além da releitura.
	m.partnerLinkRepo.EXPECT().GetForUpdate(gomock.Any(), int64(44)).Return(partnerLink, nil)

	err := service.PostBatch(context.Background(), adminClaims(), domain.CPABatchRequest{
		Data: []domain.CPAReportItem{
			{IDLink: 10, CpaBetenlace: 1, CpaPartner: 1},
		},
	})

	require.NoError(t, err)
}
