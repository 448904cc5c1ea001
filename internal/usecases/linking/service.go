package linking

import (
	"errors"
	"fmt"
	"time"

	"github.com/betenlace/partners-cpa-api/infrastructure/repository"
	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/betenlace/partners-cpa-api/pkg/log"
	"github.com/betenlace/partners-cpa-api/pkg/utils"
)

// Erros da gestão de links
var (
	ErrCampaignNotFound    = errors.New("campanha não encontrada")
	ErrLinkNotFound        = errors.New("link não encontrado")
	ErrPartnerNotFound     = errors.New("parceiro não encontrado")
	ErrLinkNotAvailable    = errors.New("link não está disponível para atribuição")
	ErrLinkNotAssigned     = errors.New("link não está atribuído")
	ErrStatusNotAssignable = errors.New("status não pode ser atribuído diretamente")
)

type Manager interface {
	CreateLink(campaignID int64, url, promCode string) (*domain.Link, error)
	AssignLink(linkID, partnerID int64, currencyLocal string) (*domain.PartnerLink, error)
	DetachLink(linkID int64) error
	SetCampaignStatus(campaignID int64, status domain.CampaignStatus) error
}

type Service struct {
	campaignRepo    repository.CampaignRepository
	linkRepo        repository.LinkRepository
	partnerRepo     repository.PartnerRepository
	partnerLinkRepo repository.PartnerLinkRepository

	now func() time.Time
}

func NewService(
	campaignRepo repository.CampaignRepository,
	linkRepo repository.LinkRepository,
	partnerRepo repository.PartnerRepository,
	partnerLinkRepo repository.PartnerLinkRepository,
) *Service {
	return &Service{
		campaignRepo:    campaignRepo,
		linkRepo:        linkRepo,
		partnerRepo:     partnerRepo,
		partnerLinkRepo: partnerLinkRepo,
		now:             time.Now,
	}
}

// CreateLink registra um novo slot de tráfego na campanha. Sem prom_code
// explícito, um código curto é gerado.
func (s *Service) CreateLink(campaignID int64, url, promCode string) (*domain.Link, error) {
	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a campanha: %w", err)
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	if promCode == "" {
		promCode, err = utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar o prom_code: %w", err)
		}
	}

	link := &domain.Link{
		CampaignID: campaignID,
		PromCode:   promCode,
		URL:        url,
		Status:     domain.LinkStatusAvailable,
	}

	created, err := s.linkRepo.Create(link)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o link: %w", err)
	}

	if err := s.recomputeStock(campaign); err != nil {
		log.L.WithError(err).WithField("campaign_id", campaignID).
			Warn("Falha ao recalcular o estoque da campanha")
	}

	return created, nil
}

// AssignLink entrega um link livre a um parceiro, criando o acumulador do
// parceiro com os padrões da campanha. O percentual nasce do default e só
// vira custom por edição posterior.
func (s *Service) AssignLink(linkID, partnerID int64, currencyLocal string) (*domain.PartnerLink, error) {
	link, err := s.linkRepo.GetByID(linkID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar o link: %w", err)
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}
	if link.Status != domain.LinkStatusAvailable || link.PartnerLinkID != nil {
		return nil, ErrLinkNotAvailable
	}

	partner, err := s.partnerRepo.GetByID(partnerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar o parceiro: %w", err)
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}

	campaign, err := s.campaignRepo.GetByID(link.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a campanha: %w", err)
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	partnerLink := &domain.PartnerLink{
		PartnerID:  partnerID,
		CampaignID: campaign.ID,
		PromCode:   link.PromCode,

		PercentageCPA:      campaign.DefaultPercentage,
		IsPercentageCustom: false,

		Tracker:                  campaign.TrackerDefault,
		TrackerDeposit:           campaign.TrackerDepositDefault,
		TrackerRegisteredCount:   campaign.TrackerRegisteredCountDefault,
		TrackerFirstDepositCount: campaign.TrackerFirstDepositCountDefault,
		TrackerWageringCount:     campaign.TrackerWageringCountDefault,

		Status:        domain.PartnerLinkStatusByCampaign,
		PartnerLevel:  partner.Level,
		CurrencyLocal: currencyLocal,
	}

	created, err := s.partnerLinkRepo.Create(partnerLink)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o acumulador do parceiro: %w", err)
	}

	if err := s.linkRepo.AssignPartnerLink(linkID, created.ID); err != nil {
		return nil, fmt.Errorf("erro ao atribuir o link: %w", err)
	}

	if err := s.recomputeStock(campaign); err != nil {
		log.L.WithError(err).WithField("campaign_id", campaign.ID).
			Warn("Falha ao recalcular o estoque da campanha")
	}

	return created, nil
}

// DetachLink desfaz a atribuição: o slot volta a ficar livre e o acumulador
// do parceiro é inativado, preservando o histórico.
func (s *Service) DetachLink(linkID int64) error {
	link, err := s.linkRepo.GetByID(linkID)
	if err != nil {
		return fmt.Errorf("erro ao buscar o link: %w", err)
	}
	if link == nil {
		return ErrLinkNotFound
	}
	if !link.IsAssigned() {
		return ErrLinkNotAssigned
	}

	if err := s.partnerLinkRepo.UpdateStatus(*link.PartnerLinkID, domain.PartnerLinkStatusInactive); err != nil {
		return fmt.Errorf("erro ao inativar o acumulador do parceiro: %w", err)
	}

	if err := s.linkRepo.DetachPartnerLink(linkID); err != nil {
		return fmt.Errorf("erro ao liberar o link: %w", err)
	}

	campaign, err := s.campaignRepo.GetByID(link.CampaignID)
	if err != nil || campaign == nil {
		return nil
	}

	if err := s.recomputeStock(campaign); err != nil {
		log.L.WithError(err).WithField("campaign_id", campaign.ID).
			Warn("Falha ao recalcular o estoque da campanha")
	}

	return nil
}

// SetCampaignStatus aplica um status administrativo. OUT_STOCK é derivado do
// estoque e não é aceito aqui; INACTIVE registra o marco de vigência usado
// pelas regras de lançamento.
func (s *Service) SetCampaignStatus(campaignID int64, status domain.CampaignStatus) error {
	if status == domain.CampaignStatusOutStock {
		return ErrStatusNotAssignable
	}

	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return fmt.Errorf("erro ao buscar a campanha: %w", err)
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}

	var lastInactiveAt *time.Time
	if status == domain.CampaignStatusInactive {
		now := s.now()
		lastInactiveAt = &now
	}

	if err := s.campaignRepo.UpdateStatus(campaignID, status, lastInactiveAt); err != nil {
		return fmt.Errorf("erro ao atualizar o status da campanha: %w", err)
	}

	return nil
}

// recomputeStock deriva OUT_STOCK da quantidade de links livres. Só alterna
// entre AVAILABLE e OUT_STOCK; os demais status são administrativos e ficam
// como estão.
func (s *Service) recomputeStock(campaign *domain.Campaign) error {
	if campaign.Status != domain.CampaignStatusAvailable && campaign.Status != domain.CampaignStatusOutStock {
		return nil
	}

	available, err := s.linkRepo.CountByCampaignAndStatus(campaign.ID, domain.LinkStatusAvailable)
	if err != nil {
		return err
	}

	switch {
	case available == 0 && campaign.Status == domain.CampaignStatusAvailable:
		return s.campaignRepo.UpdateStatus(campaign.ID, domain.CampaignStatusOutStock, nil)
	case available > 0 && campaign.Status == domain.CampaignStatusOutStock:
		return s.campaignRepo.UpdateStatus(campaign.ID, domain.CampaignStatusAvailable, nil)
	}

	return nil
}
