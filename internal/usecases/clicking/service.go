package clicking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/betenlace/partners-cpa-api/infrastructure/integrator/ipapi"
	"github.com/betenlace/partners-cpa-api/infrastructure/repository"
	"github.com/betenlace/partners-cpa-api/internal/config"
	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/betenlace/partners-cpa-api/pkg/log"
	"github.com/betenlace/partners-cpa-api/pkg/utils"
)

// ErrTransient marca falhas de IO que valem retentativa no worker. Tudo que
// não carrega esta marca descarta a tarefa.
var ErrTransient = errors.New("falha transitória de io")

// IsTransient é o classificador usado pela política de retentativas.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

type Ingester interface {
	ProcessTask(ctx context.Context, task domain.ClickTask) error
}

// Lister é o lado de consulta: fingerprints de um link num intervalo de dias.
type Lister interface {
	ListClicks(linkID int64, startDate, endDate *time.Time) ([]*domain.ClickTracking, error)
}

type Service struct {
	dailyRepo        repository.BetenlaceDailyRepository
	partnerDailyRepo repository.PartnerLinkDailyRepository
	clickRepo        repository.ClickTrackingRepository
	partnerLinkRepo  repository.PartnerLinkRepository
	campaignRepo     repository.CampaignRepository
	partnerRepo      repository.PartnerRepository
	enricher         ipapi.Integrator

	window  time.Duration
	maxDays int
	loc     *time.Location
	now     func() time.Time
}

func NewService(
	dailyRepo repository.BetenlaceDailyRepository,
	partnerDailyRepo repository.PartnerLinkDailyRepository,
	clickRepo repository.ClickTrackingRepository,
	partnerLinkRepo repository.PartnerLinkRepository,
	campaignRepo repository.CampaignRepository,
	partnerRepo repository.PartnerRepository,
	enricher ipapi.Integrator,
	cfg *config.Config,
) *Service {
	return &Service{
		dailyRepo:        dailyRepo,
		partnerDailyRepo: partnerDailyRepo,
		clickRepo:        clickRepo,
		partnerLinkRepo:  partnerLinkRepo,
		campaignRepo:     campaignRepo,
		partnerRepo:      partnerRepo,
		enricher:         enricher,
		window:           time.Duration(cfg.Click.PeriodSeconds) * time.Second,
		maxDays:          cfg.Accounting.MaxClicDays,
		loc:              cfg.AccountingLocation(),
		now:              time.Now,
	}
}

// ListClicks devolve as fingerprints do link no intervalo pedido, com o
// intervalo cortado para o máximo de dias configurado. Sem datas, consulta os
// últimos maxDays dias.
func (s *Service) ListClicks(linkID int64, startDate, endDate *time.Time) ([]*domain.ClickTracking, error) {
	end := utils.DayOf(s.now().In(s.loc), s.loc).AddDate(0, 0, 1)
	if endDate != nil && !endDate.IsZero() {
		end = utils.DayOf(*endDate, s.loc).AddDate(0, 0, 1)
	}

	start := end.AddDate(0, 0, -s.maxDays)
	if startDate != nil && !startDate.IsZero() {
		start = utils.DayOf(*startDate, s.loc)
	}

	if earliest := end.AddDate(0, 0, -s.maxDays); start.Before(earliest) {
		start = earliest
	}

	clicks, err := s.clickRepo.ListByLinkAndDateRange(linkID, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar cliques do link: %w", err)
	}

	return clicks, nil
}

// ProcessTask materializa um clique: garante a linha diária, soma 1 ao
// contador do dia (uma vez por tarefa, mesmo com IP composto) e atualiza as
// fingerprints por IP dentro da janela de dedup.
func (s *Service) ProcessTask(ctx context.Context, task domain.ClickTask) error {
	now := s.now().In(s.loc)
	day := utils.DayOf(now, s.loc)

	if err := s.dailyRepo.EnsureDaily(task.LinkID, day, task.CurrencyCondition, task.CurrencyFixedIncome); err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}

	if err := s.dailyRepo.IncrementClickCount(task.LinkID, day); err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}

	if err := s.ensurePartnerDaily(task, day); err != nil {
		return err
	}

	for _, ip := range utils.SplitIPs(task.ClientIP) {
		if err := s.trackIP(ctx, task, ip, now); err != nil {
			return err
		}
	}

	return nil
}

// ensurePartnerDaily materializa a linha diária do parceiro no primeiro
// clique do dia: só quando há acumulador atribuído e a campanha não está
// inativa na data. A linha nasce com a configuração vigente copiada; os
// valores financeiros chegam depois, pelo lote de CPAs.
func (s *Service) ensurePartnerDaily(task domain.ClickTask, day time.Time) error {
	if task.PartnerLinkID == nil {
		return nil
	}

	partnerLink, err := s.partnerLinkRepo.GetByID(*task.PartnerLinkID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	if partnerLink == nil {
		log.L.WithField("partner_link_id", *task.PartnerLinkID).
			Warn("Acumulador da tarefa de clique não existe mais")
		return nil
	}

	campaign, err := s.campaignRepo.GetByID(partnerLink.CampaignID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	if campaign == nil || campaign.InactiveAtDate(day) || !partnerLink.CountsForDate(campaign, day) {
		return nil
	}

	daily, err := s.dailyRepo.GetByCpaAndDate(task.LinkID, day)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	if daily == nil {
		// EnsureDaily acabou de rodar; a ausência aqui é transitória.
		return fmt.Errorf("%w: linha diária do link %d ausente", ErrTransient, task.LinkID)
	}

	partner, err := s.partnerRepo.GetByID(partnerLink.PartnerID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}

	report := &domain.PartnerLinkDailyReport{
		BetenlaceDailyReportID: daily.ID,
		PartnerLinkID:          partnerLink.ID,
		PartnerID:              partnerLink.PartnerID,
		CreatedAt:              day,
		CurrencyCondition:      task.CurrencyCondition,
		CurrencyFixedIncome:    task.CurrencyFixedIncome,
		CurrencyLocal:          partnerLink.CurrencyLocal,
		PercentageCPA:          partnerLink.PercentageCPA,
	}
	if partner != nil {
		report.AdviserID = partner.AdviserID
		report.ReferredByID = partner.ReferredByID
	}

	if err := s.partnerDailyRepo.EnsureDaily(report); err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}

	return nil
}

func (s *Service) trackIP(_ context.Context, task domain.ClickTask, ip string, now time.Time) error {
	latest, err := s.clickRepo.LatestByLinkAndIP(task.LinkID, ip)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}

	// Janela estrita: um clique exatamente em created_at + W já é uma
	// fingerprint nova.
	if latest != nil && now.Sub(latest.CreatedAt) < s.window {
		if err := s.clickRepo.IncrementCount(latest.ID); err != nil {
			return fmt.Errorf("%w: %v", ErrTransient, err)
		}
		return nil
	}

	click := &domain.ClickTracking{
		LinkID:        task.LinkID,
		PartnerLinkID: task.PartnerLinkID,
		IP:            ip,
		Count:         1,
	}

	// Falha de enriquecimento nunca derruba a tarefa: a fingerprint é
	// criada com os campos nulos.
	enrichment, err := s.enricher.Enrich(ip)
	if err != nil {
		if errors.Is(err, ipapi.ErrPrivateIP) {
			log.L.WithField("ip", ip).Debug("IP privado, fingerprint sem enriquecimento")
		} else {
			log.L.WithError(err).WithField("ip", ip).Warn("Falha no enriquecimento do IP")
		}
	} else if enrichment != nil {
		click.Registry = enrichment.Registry
		click.CountryCode = enrichment.CountryCode
		click.CountryName = enrichment.CountryName
		click.City = enrichment.City
		click.AsnCode = enrichment.AsnCode
		click.AsnName = enrichment.AsnName
		click.AsnRoute = enrichment.AsnRoute
		click.AsnStart = enrichment.AsnStart
		click.AsnEnd = enrichment.AsnEnd
		click.AsnCount = enrichment.AsnCount
		click.Spam = enrichment.Spam
		click.Tor = enrichment.Tor
	}

	if err := s.clickRepo.Create(click); err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}

	return nil
}
