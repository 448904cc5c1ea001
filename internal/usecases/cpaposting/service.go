package cpaposting

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/betenlace/partners-cpa-api/infrastructure/repository"
	"github.com/betenlace/partners-cpa-api/internal/config"
	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/betenlace/partners-cpa-api/pkg/apiErrors"
	"github.com/betenlace/partners-cpa-api/pkg/log"
	"github.com/betenlace/partners-cpa-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// TxRunner é o que o lote precisa da Connection: uma transação para todas as
// escritas do batch.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type Poster interface {
	PostBatch(ctx context.Context, user *domain.Claims, req domain.CPABatchRequest) error
}

type Service struct {
	txRunner           TxRunner
	linkRepo           repository.LinkRepository
	campaignRepo       repository.CampaignRepository
	partnerRepo        repository.PartnerRepository
	partnerLinkRepo    repository.PartnerLinkRepository
	betenlaceCPARepo   repository.BetenlaceCPARepository
	betenlaceDailyRepo repository.BetenlaceDailyRepository
	partnerDailyRepo   repository.PartnerLinkDailyRepository
	fxRepo             repository.FxSnapshotRepository

	loc *time.Location
	now func() time.Time
}

func NewService(
	txRunner TxRunner,
	linkRepo repository.LinkRepository,
	campaignRepo repository.CampaignRepository,
	partnerRepo repository.PartnerRepository,
	partnerLinkRepo repository.PartnerLinkRepository,
	betenlaceCPARepo repository.BetenlaceCPARepository,
	betenlaceDailyRepo repository.BetenlaceDailyRepository,
	partnerDailyRepo repository.PartnerLinkDailyRepository,
	fxRepo repository.FxSnapshotRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		txRunner:           txRunner,
		linkRepo:           linkRepo,
		campaignRepo:       campaignRepo,
		partnerRepo:        partnerRepo,
		partnerLinkRepo:    partnerLinkRepo,
		betenlaceCPARepo:   betenlaceCPARepo,
		betenlaceDailyRepo: betenlaceDailyRepo,
		partnerDailyRepo:   partnerDailyRepo,
		fxRepo:             fxRepo,
		loc:                cfg.AccountingLocation(),
		now:                time.Now,
	}
}

// batchItem é um item do lote já resolvido contra o banco na fase de
// validação.
type batchItem struct {
	item        domain.CPAReportItem
	link        *domain.Link
	campaign    *domain.Campaign
	partnerLink *domain.PartnerLink
	partner     *domain.Partner
}

// PostBatch valida o lote inteiro antes de qualquer escrita e aplica tudo em
// uma única transação. Lote reprocessado no mesmo dia converge: as linhas
// diárias são sobrescritas e os acumuladores só recebem a diferença.
func (s *Service) PostBatch(ctx context.Context, user *domain.Claims, req domain.CPABatchRequest) error {
	if len(req.Data) == 0 {
		return NewCpaError(ErrValidation, apiErrors.ErrCpaBatchInvalid, "lote vazio")
	}

	resolved, err := s.resolveBatch(user, req)
	if err != nil {
		return err
	}

	// O lote reporta o desempenho do dia anterior no fuso contábil: as
	// casas fecham os números com um dia de atraso.
	now := s.now().In(s.loc)
	day := utils.DayOf(now, s.loc).AddDate(0, 0, -1)

	snapshot, err := s.selectSnapshot(day)
	if err != nil {
		return err
	}

	return s.txRunner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, it := range resolved {
			if err := s.postItem(ctx, tx, it, day, snapshot); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) resolveBatch(user *domain.Claims, req domain.CPABatchRequest) ([]batchItem, error) {
	resolved := make([]batchItem, 0, len(req.Data))

	for i, item := range req.Data {
		if item.IDLink <= 0 {
			return nil, NewCpaError(ErrValidation, apiErrors.ErrCpaBatchInvalid,
				fmt.Sprintf("item %d: id_link é obrigatório", i))
		}

		if item.CpaBetenlace < 0 || item.CpaPartner < 0 || item.RegisteredCount < 0 ||
			item.FirstDepositCount < 0 || item.WageringCount < 0 {
			return nil, NewCpaError(ErrValidation, apiErrors.ErrCpaBatchInvalid,
				fmt.Sprintf("item %d: contadores negativos", i))
		}

		// O parceiro nunca recebe mais CPAs que a casa contou.
		if item.CpaPartner > item.CpaBetenlace {
			return nil, NewCpaError(ErrValidation, apiErrors.ErrCpaBatchInvalid,
				fmt.Sprintf("item %d: cpa_partner (%d) maior que cpa_betenlace (%d)",
					i, item.CpaPartner, item.CpaBetenlace))
		}

		link, err := s.linkRepo.GetByID(item.IDLink)
		if err != nil {
			return nil, NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao consultar link")
		}
		if link == nil {
			return nil, NewCpaError(ErrLinkNotFound, apiErrors.ErrCpaLinkNotFound,
				fmt.Sprintf("link %d não encontrado", item.IDLink))
		}

		campaign, err := s.campaignRepo.GetByID(link.CampaignID)
		if err != nil {
			return nil, NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao consultar campanha")
		}
		if campaign == nil {
			return nil, NewCpaError(ErrLinkNotFound, apiErrors.ErrCpaLinkNotFound,
				fmt.Sprintf("campanha %d do link %d não encontrada", link.CampaignID, link.ID))
		}

		var partnerLink *domain.PartnerLink
		var partner *domain.Partner

		if link.PartnerLinkID != nil {
			partnerLink, err = s.partnerLinkRepo.GetByID(*link.PartnerLinkID)
			if err != nil {
				return nil, NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao consultar acumulador do parceiro")
			}
			if partnerLink == nil {
				return nil, NewCpaError(ErrLinkNotFound, apiErrors.ErrCpaLinkNotFound,
					fmt.Sprintf("acumulador %d do link %d não encontrado", *link.PartnerLinkID, link.ID))
			}

			if user != nil && !user.IsSuperuser && !claimsOwnPartner(user, partnerLink.PartnerID) {
				return nil, NewCpaError(ErrScopeDenied, apiErrors.ErrPartnerScopeDenied,
					fmt.Sprintf("link %d pertence ao parceiro %d, fora do escopo do usuário %d",
						link.ID, partnerLink.PartnerID, user.UserID))
			}

			partner, err = s.partnerRepo.GetByID(partnerLink.PartnerID)
			if err != nil {
				return nil, NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao consultar parceiro")
			}
			if partner == nil {
				return nil, NewCpaError(ErrLinkNotFound, apiErrors.ErrCpaLinkNotFound,
					fmt.Sprintf("parceiro %d do link %d não encontrado", partnerLink.PartnerID, link.ID))
			}
		}

		resolved = append(resolved, batchItem{
			item:        item,
			link:        link,
			campaign:    campaign,
			partnerLink: partnerLink,
			partner:     partner,
		})
	}

	return resolved, nil
}

// selectSnapshot escolhe o snapshot do lote: o primeiro criado em ou depois
// do limiar (o dia anterior a agora, que é a própria data-alvo do lote); na
// falta, o mais recente antes dele.
func (s *Service) selectSnapshot(threshold time.Time) (*domain.FxSnapshot, error) {
	snapshot, err := s.fxRepo.FirstOnOrAfter(threshold)
	if err != nil {
		return nil, NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao consultar snapshot de câmbio")
	}

	if snapshot == nil {
		snapshot, err = s.fxRepo.LatestBefore(threshold)
		if err != nil {
			return nil, NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao consultar snapshot de câmbio")
		}
	}

	if snapshot == nil {
		return nil, NewCpaError(ErrFxUnavailable, apiErrors.ErrFxUnavailable,
			"nenhum snapshot de câmbio cadastrado")
	}

	return snapshot, nil
}

func (s *Service) postItem(ctx context.Context, tx *sql.Tx, it batchItem, day time.Time, snapshot *domain.FxSnapshot) error {
	prevDaily, err := s.betenlaceDailyRepo.GetByCpaAndDateForUpdate(tx, it.link.ID, day)
	if err != nil {
		return NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao consultar linha diária da casa")
	}

	prev := domain.BetenlaceDailyReport{}
	if prevDaily != nil {
		prev = *prevDaily
	}

	unitary := it.campaign.FixedIncomeUnitary
	fixedIncome := unitary.Mul(decimal.NewFromInt(it.item.CpaBetenlace))

	delta := domain.BetenlaceCPADelta{
		CpaCount:          it.item.CpaBetenlace - prev.CpaCount,
		RegisteredCount:   it.item.RegisteredCount - prev.RegisteredCount,
		FirstDepositCount: it.item.FirstDepositCount - prev.FirstDepositCount,
		WageringCount:     it.item.WageringCount - prev.WageringCount,
		Deposit:           it.item.Deposit.Sub(prev.Deposit),
		Stake:             it.item.Stake.Sub(prev.Stake),
		NetRevenue:        it.item.NetRevenue.Sub(prev.NetRevenue),
		RevenueShare:      it.item.RevenueShare.Sub(prev.RevenueShare),
		FixedIncome:       fixedIncome.Sub(prev.FixedIncome),
	}

	snapshotID := snapshot.ID
	report := &domain.BetenlaceDailyReport{
		ID:                  prev.ID,
		BetenlaceCPAID:      it.link.ID,
		CreatedAt:           day,
		CurrencyCondition:   it.campaign.CurrencyCondition,
		CurrencyFixedIncome: it.campaign.CurrencyFixedIncome,
		RegisteredCount:     it.item.RegisteredCount,
		CpaCount:            it.item.CpaBetenlace,
		FirstDepositCount:   it.item.FirstDepositCount,
		WageringCount:       it.item.WageringCount,
		Deposit:             it.item.Deposit,
		Stake:               it.item.Stake,
		NetRevenue:          it.item.NetRevenue,
		RevenueShare:        it.item.RevenueShare,
		FixedIncomeUnitary:  unitary,
		FixedIncome:         fixedIncome,
		FxSnapshotID:        &snapshotID,
	}

	if prevDaily == nil {
		if err := s.betenlaceDailyRepo.Create(tx, report); err != nil {
			return NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao criar linha diária da casa")
		}
	} else {
		if err := s.betenlaceDailyRepo.Update(tx, report); err != nil {
			return NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao atualizar linha diária da casa")
		}
	}

	cpa, err := s.betenlaceCPARepo.GetForUpdate(tx, it.link.ID)
	if err != nil {
		return NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao consultar acumulador da casa")
	}
	if cpa == nil {
		return NewCpaError(ErrLinkNotFound, apiErrors.ErrCpaLinkNotFound,
			fmt.Sprintf("acumulador da casa para o link %d não encontrado", it.link.ID))
	}

	if err := s.betenlaceCPARepo.ApplyDelta(tx, it.link.ID, delta); err != nil {
		return NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao atualizar acumulador da casa")
	}

	if it.partnerLink == nil {
		return nil
	}

	return s.postPartnerItem(ctx, tx, it, day, snapshot, report, unitary)
}

func (s *Service) postPartnerItem(
	_ context.Context,
	tx *sql.Tx,
	it batchItem,
	day time.Time,
	snapshot *domain.FxSnapshot,
	report *domain.BetenlaceDailyReport,
	unitary decimal.Decimal,
) error {
	// Releitura travada: o acumulador pode ter mudado desde a validação.
	partnerLink, err := s.partnerLinkRepo.GetForUpdate(tx, it.partnerLink.ID)
	if err != nil {
		return NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao consultar acumulador do parceiro")
	}
	if partnerLink == nil {
		return NewCpaError(ErrLinkNotFound, apiErrors.ErrCpaLinkNotFound,
			fmt.Sprintf("acumulador %d não encontrado", it.partnerLink.ID))
	}

	if !partnerLink.CountsForDate(it.campaign, day) {
		log.L.WithFields(log.Fields{
			"partner_link_id": partnerLink.ID,
			"campaign_id":     it.campaign.ID,
			"date":            day.Format("2006-01-02"),
		}).Info("Acumulador inativo para a data, item do parceiro ignorado")
		return nil
	}

	unitaryPartner := unitary.Mul(partnerLink.PercentageCPA)
	cpaPartner := decimal.NewFromInt(it.item.CpaPartner)
	fixedIncomePartner := unitaryPartner.Mul(cpaPartner)

	fxBookLocal, err := snapshot.Rate(it.campaign.CurrencyFixedIncome, partnerLink.CurrencyLocal)
	if err != nil {
		return NewCpaError(ErrFxUnavailable, apiErrors.ErrFxUnavailable, err.Error())
	}

	fxBookNetRevenueLocal, err := snapshot.Rate(it.campaign.CurrencyCondition, partnerLink.CurrencyLocal)
	if err != nil {
		return NewCpaError(ErrFxUnavailable, apiErrors.ErrFxUnavailable, err.Error())
	}

	unitaryLocal := unitaryPartner.Mul(fxBookLocal)
	fixedIncomeLocal := unitaryLocal.Mul(cpaPartner)

	prevPartner, err := s.partnerDailyRepo.GetByDailyAndPartnerLinkForUpdate(tx, report.ID, partnerLink.ID)
	if err != nil {
		return NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao consultar linha diária do parceiro")
	}

	var prevCpaCount int64
	prevFixedIncome := decimal.Zero
	prevFixedIncomeLocal := decimal.Zero
	if prevPartner != nil {
		prevCpaCount = prevPartner.CpaCount
		prevFixedIncome = prevPartner.FixedIncome
		prevFixedIncomeLocal = prevPartner.FixedIncomeLocal
	}

	partnerDelta := domain.PartnerLinkDelta{
		CpaCount:         it.item.CpaPartner - prevCpaCount,
		FixedIncome:      fixedIncomePartner.Sub(prevFixedIncome),
		FixedIncomeLocal: fixedIncomeLocal.Sub(prevFixedIncomeLocal),
	}

	if err := s.partnerLinkRepo.ApplyDelta(tx, partnerLink.ID, partnerDelta); err != nil {
		return NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao atualizar acumulador do parceiro")
	}

	partnerReport := &domain.PartnerLinkDailyReport{
		BetenlaceDailyReportID: report.ID,
		PartnerLinkID:          partnerLink.ID,
		PartnerID:              partnerLink.PartnerID,
		CreatedAt:              day,

		CurrencyCondition:   it.campaign.CurrencyCondition,
		CurrencyFixedIncome: it.campaign.CurrencyFixedIncome,
		CurrencyLocal:       partnerLink.CurrencyLocal,

		FxBookLocal:           fxBookLocal,
		FxBookNetRevenueLocal: fxBookNetRevenueLocal,
		FxPercentage:          snapshot.FxPercentage,

		PercentageCPA: partnerLink.PercentageCPA,

		Tracker:                  partnerLink.Tracker,
		TrackerDeposit:           partnerLink.TrackerDeposit,
		TrackerRegisteredCount:   partnerLink.TrackerRegisteredCount,
		TrackerFirstDepositCount: partnerLink.TrackerFirstDepositCount,
		TrackerWageringCount:     partnerLink.TrackerWageringCount,

		CpaCount:          it.item.CpaPartner,
		RegisteredCount:   it.item.RegisteredCountPartner,
		FirstDepositCount: it.item.FirstDepositCountPartner,
		WageringCount:     it.item.WageringCountPartner,
		Deposit:           it.item.DepositPartner,

		FixedIncomeUnitary:      unitaryPartner,
		FixedIncome:             fixedIncomePartner,
		FixedIncomeUnitaryLocal: unitaryLocal,
		FixedIncomeLocal:        fixedIncomeLocal,

		AdviserID:    it.partner.AdviserID,
		ReferredByID: it.partner.ReferredByID,

		FxSnapshotID: report.FxSnapshotID,
	}

	// Percentual nulo produz repasse nulo; percentual zero produz repasse
	// zero. A distinção importa para os relatórios do conselheiro.
	if it.partner.FixedIncomeAdviserPercentage.Valid {
		v := fixedIncomePartner.Mul(it.partner.FixedIncomeAdviserPercentage.Decimal)
		partnerReport.FixedIncomeAdviser = decimal.NewNullDecimal(v)
		partnerReport.FixedIncomeAdviserLocal = decimal.NewNullDecimal(v.Mul(fxBookLocal))
	}
	if it.partner.NetRevenueAdviserPercentage.Valid {
		v := it.item.NetRevenue.Mul(it.partner.NetRevenueAdviserPercentage.Decimal)
		partnerReport.NetRevenueAdviser = decimal.NewNullDecimal(v)
		partnerReport.NetRevenueAdviserLocal = decimal.NewNullDecimal(v.Mul(fxBookNetRevenueLocal))
	}
	if it.partner.FixedIncomeReferredPercentage.Valid {
		v := fixedIncomePartner.Mul(it.partner.FixedIncomeReferredPercentage.Decimal)
		partnerReport.FixedIncomeReferred = decimal.NewNullDecimal(v)
		partnerReport.FixedIncomeReferredLocal = decimal.NewNullDecimal(v.Mul(fxBookLocal))
	}
	if it.partner.NetRevenueReferredPercentage.Valid {
		v := it.item.NetRevenue.Mul(it.partner.NetRevenueReferredPercentage.Decimal)
		partnerReport.NetRevenueReferred = decimal.NewNullDecimal(v)
		partnerReport.NetRevenueReferredLocal = decimal.NewNullDecimal(v.Mul(fxBookNetRevenueLocal))
	}

	if err := s.partnerDailyRepo.Upsert(tx, partnerReport); err != nil {
		return NewCpaError(err, apiErrors.ErrDatabaseOperation, "erro ao gravar linha diária do parceiro")
	}

	return nil
}

func claimsOwnPartner(user *domain.Claims, partnerID int64) bool {
	for _, id := range user.PartnerIDs {
		if id == partnerID {
			return true
		}
	}
	return false
}
