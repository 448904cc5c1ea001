package redirecting

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/betenlace/partners-cpa-api/infrastructure/queue/clickqueue"
	"github.com/betenlace/partners-cpa-api/infrastructure/repository"
	"github.com/betenlace/partners-cpa-api/internal/config"
	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/betenlace/partners-cpa-api/pkg/log"
	"github.com/betenlace/partners-cpa-api/pkg/utils"
	"github.com/fernet/fernet-go"
)

// Request é um acesso à superfície pública de redirecionamento.
type Request struct {
	// Segmentos do path, na ordem, sem barras.
	Segments  []string
	UserAgent string
	ClientIP  string
}

type Resolver interface {
	// Resolve devolve a URL de destino do acesso. Nunca falha para o
	// visitante: qualquer problema cai na URL de erro de campanha.
	Resolve(ctx context.Context, req Request) string
}

type Service struct {
	campaignRepo repository.CampaignRepository
	aliasRepo    repository.CampaignAliasRepository
	linkRepo     repository.LinkRepository
	publisher    clickqueue.Publisher

	landingURL string
	errorURL   string
	botRegex   *regexp.Regexp
	webhookURL string
	fernetKeys []*fernet.Key
	httpClient *http.Client
}

func NewService(
	campaignRepo repository.CampaignRepository,
	aliasRepo repository.CampaignAliasRepository,
	linkRepo repository.LinkRepository,
	publisher clickqueue.Publisher,
	cfg *config.Config,
) (*Service, error) {
	botRegex, err := regexp.Compile(cfg.Redirect.BotUserAgentRegex)
	if err != nil {
		return nil, err
	}

	var keys []*fernet.Key
	if cfg.Redirect.FernetKey != "" {
		keys, err = fernet.DecodeKeys(cfg.Redirect.FernetKey)
		if err != nil {
			return nil, err
		}
	}

	return &Service{
		campaignRepo: campaignRepo,
		aliasRepo:    aliasRepo,
		linkRepo:     linkRepo,
		publisher:    publisher,
		landingURL:   cfg.Redirect.LandingURL,
		errorURL:     cfg.Redirect.CampaignErrorURL,
		botRegex:     botRegex,
		webhookURL:   cfg.Redirect.BotDiagnosticWebURL,
		fernetKeys:   keys,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (s *Service) Resolve(ctx context.Context, req Request) string {
	segments := make([]string, 0, len(req.Segments))
	for _, seg := range req.Segments {
		if seg = strings.TrimSpace(seg); seg != "" {
			segments = append(segments, seg)
		}
	}

	if len(segments) == 0 {
		return s.landingURL
	}

	// Prefixo de idioma é aceito e descartado: as URLs de campanha já são
	// específicas por idioma.
	if len(segments) > 1 && strings.EqualFold(segments[0], "es") {
		segments = segments[1:]
	}

	if len(segments) == 1 {
		return s.resolveToken(ctx, segments[0], req)
	}

	campaignSeg := utils.Canonicalize(strings.Join(segments[:len(segments)-1], " "))
	promCode := segments[len(segments)-1]

	campaign, link := s.lookup(campaignSeg, promCode)
	if link == nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"campaign":  campaignSeg,
			"prom_code": promCode,
		}).Info("Campanha ou prom_code não resolvidos, redirecionando para a URL de erro")
		return s.errorRedirect(req)
	}

	return s.redirect(ctx, campaign, link, req)
}

// errorRedirect devolve a URL de erro de campanha com o path original
// anexado, para o time de marketing rastrear o acesso perdido.
func (s *Service) errorRedirect(req Request) string {
	path := strings.Join(req.Segments, "/")
	if path == "" {
		return s.errorURL
	}
	return strings.TrimSuffix(s.errorURL, "/") + "/" + path
}

// lookup resolve (campanha, prom_code) em link: alias legado primeiro, depois
// título exato, por fim o leque de campanhas com o mesmo prefixo de título.
func (s *Service) lookup(campaignSeg, promCode string) (*domain.Campaign, *domain.Link) {
	if alias, err := s.aliasRepo.Resolve(campaignSeg, promCode); err == nil && alias != nil {
		campaign, err := s.campaignRepo.GetByID(alias.TargetCampaignID)
		if err != nil || campaign == nil {
			return nil, nil
		}

		link, err := s.linkRepo.GetByCampaignAndPromCode(campaign.ID, alias.TargetPromCode)
		if err != nil {
			return nil, nil
		}
		return campaign, link
	}

	campaign, err := s.campaignRepo.GetByTitle(campaignSeg)
	if err != nil {
		return nil, nil
	}

	if campaign != nil {
		link, err := s.linkRepo.GetByCampaignAndPromCode(campaign.ID, promCode)
		if err != nil || link == nil {
			return nil, nil
		}
		return campaign, link
	}

	// O leque por prefixo existe só para a família "betfair col", cujo
	// título histórico se fragmentou em várias campanhas. Qualquer outro
	// nome exige título exato.
	if !strings.HasPrefix(campaignSeg, "betfair col") {
		return nil, nil
	}

	candidates, err := s.campaignRepo.ListByTitlePrefix(campaignSeg)
	if err != nil {
		return nil, nil
	}

	for _, candidate := range candidates {
		link, err := s.linkRepo.GetByCampaignAndPromCode(candidate.ID, promCode)
		if err != nil {
			return nil, nil
		}
		if link != nil {
			return candidate, link
		}
	}

	return nil, nil
}

// resolveToken trata a forma opaca: um único segmento Fernet que decripta
// para "<rótulo>-<link_id>". O rótulo é livre (identificação da peça de
// mídia); só o id depois do último hífen importa.
func (s *Service) resolveToken(ctx context.Context, token string, req Request) string {
	if len(s.fernetKeys) == 0 {
		return s.errorRedirect(req)
	}

	payload := fernet.VerifyAndDecrypt([]byte(token), 0, s.fernetKeys)
	if payload == nil {
		log.ForContext(ctx).Info("Token de redirecionamento inválido")
		return s.errorRedirect(req)
	}

	idx := strings.LastIndex(string(payload), "-")
	if idx < 0 {
		log.ForContext(ctx).Info("Payload do token malformado")
		return s.errorRedirect(req)
	}

	linkID, err := strconv.ParseInt(string(payload)[idx+1:], 10, 64)
	if err != nil {
		return s.errorRedirect(req)
	}

	link, err := s.linkRepo.GetByID(linkID)
	if err != nil || link == nil {
		return s.errorRedirect(req)
	}

	campaign, err := s.campaignRepo.GetByID(link.CampaignID)
	if err != nil || campaign == nil {
		return s.errorRedirect(req)
	}

	return s.redirect(ctx, campaign, link, req)
}

// redirect publica a tarefa de clique e devolve a URL do link. Bots não
// contam nem chegam à casa: vão para a landing institucional, e um acesso de
// bot a um link GROWTH dispara o webhook de diagnóstico. Falha na publicação
// não impede o redirecionamento.
func (s *Service) redirect(ctx context.Context, campaign *domain.Campaign, link *domain.Link, req Request) string {
	if s.botRegex.MatchString(req.UserAgent) {
		if link.Status == domain.LinkStatusGrowth {
			go s.diagnoseBot(req, link.ID)
		}
		return s.landingURL
	}

	task := domain.ClickTask{
		LinkID:              link.ID,
		PartnerLinkID:       link.PartnerLinkID,
		CurrencyCondition:   campaign.CurrencyCondition,
		CurrencyFixedIncome: campaign.CurrencyFixedIncome,
		ClientIP:            req.ClientIP,
	}

	if err := s.publisher.Publish(ctx, task); err != nil {
		log.ForContext(ctx).WithError(err).WithField("link_id", link.ID).
			Error("Falha ao publicar tarefa de clique")
	}

	return link.URL
}

func (s *Service) diagnoseBot(req Request, linkID int64) {
	if s.webhookURL == "" {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"user_agent": req.UserAgent,
		"client_ip":  req.ClientIP,
		"link_id":    linkID,
		"path":       "/" + strings.Join(req.Segments, "/"),
	})
	if err != nil {
		return
	}

	resp, err := s.httpClient.Post(s.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.L.WithError(err).Warn("Falha ao notificar webhook de diagnóstico de bot")
		return
	}
	defer resp.Body.Close()
}
