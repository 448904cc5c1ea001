package redirecting

import (
	"context"
	"regexp"
	"testing"

	"github.com/betenlace/partners-cpa-api/infrastructure/queue/clickqueue/mocks"
	repomocks "github.com/betenlace/partners-cpa-api/infrastructure/repository/mocks"
	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/fernet/fernet-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type redirectTestMocks struct {
	campaignRepo *repomocks.MockCampaignRepository
	aliasRepo    *repomocks.MockCampaignAliasRepository
	linkRepo     *repomocks.MockLinkRepository
	publisher    *mocks.MockPublisher
}

func newRedirectTestService(t *testing.T) (*Service, *redirectTestMocks) {
	ctrl := gomock.NewController(t)

	m := &redirectTestMocks{
		campaignRepo: repomocks.NewMockCampaignRepository(ctrl),
		aliasRepo:    repomocks.NewMockCampaignAliasRepository(ctrl),
		linkRepo:     repomocks.NewMockLinkRepository(ctrl),
		publisher:    mocks.NewMockPublisher(ctrl),
	}

	var key fernet.Key
	require.NoError(t, key.Generate())

	service := &Service{
		campaignRepo: m.campaignRepo,
		aliasRepo:    m.aliasRepo,
		linkRepo:     m.linkRepo,
		publisher:    m.publisher,
		landingURL:   "https://betenlace.com",
		errorURL:     "https://betenlace.com/campanha-indisponivel",
		botRegex:     regexp.MustCompile(`(?i)(bot|crawler|spider)`),
		fernetKeys:   []*fernet.Key{&key},
	}

	return service, m
}

func TestResolve_PathVazioVaiParaALanding(t *testing.T) {
	service, _ := newRedirectTestService(t)

	url := service.Resolve(context.Background(), Request{Segments: []string{"", ""}})

	assert.Equal(t, "https://betenlace.com", url)
}

func TestResolve_TituloExatoPublicaEDevolveAURL(t *testing.T) {
	service, m := newRedirectTestService(t)

	partnerLinkID := int64(44)
	campaign := &domain.Campaign{
		ID:                  3,
		CurrencyCondition:   "USD",
		CurrencyFixedIncome: "USD",
	}
	link := &domain.Link{
		ID:            10,
		CampaignID:    3,
		PartnerLinkID: &partnerLinkID,
		URL:           "https://casa.example/registro?tracker=abc123",
	}

	m.aliasRepo.EXPECT().Resolve("betfair colombia", "abc123").Return(nil, nil)
	m.campaignRepo.EXPECT().GetByTitle("betfair colombia").Return(campaign, nil)
	m.linkRepo.EXPECT().GetByCampaignAndPromCode(int64(3), "abc123").Return(link, nil)

	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task domain.ClickTask) error {
			assert.Equal(t, int64(10), task.LinkID)
			require.NotNil(t, task.PartnerLinkID)
			assert.Equal(t, int64(44), *task.PartnerLinkID)
			assert.Equal(t, "200.1.2.3", task.ClientIP)
			return nil
		})

	url := service.Resolve(context.Background(), Request{
		Segments:  []string{"betfair", "colombia", "abc123"},
		UserAgent: "Mozilla/5.0",
		ClientIP:  "200.1.2.3",
	})

	assert.Equal(t, link.URL, url)
}

func TestResolve_PrefixoDeIdiomaEhDescartado(t *testing.T) {
	service, m := newRedirectTestService(t)

	campaign := &domain.Campaign{ID: 3}
	link := &domain.Link{ID: 10, CampaignID: 3, URL: "https://casa.example/r"}

	m.aliasRepo.EXPECT().Resolve("betfair colombia", "abc123").Return(nil, nil)
	m.campaignRepo.EXPECT().GetByTitle("betfair colombia").Return(campaign, nil)
	m.linkRepo.EXPECT().GetByCampaignAndPromCode(int64(3), "abc123").Return(link, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	url := service.Resolve(context.Background(), Request{
		Segments:  []string{"es", "betfair", "colombia", "abc123"},
		UserAgent: "Mozilla/5.0",
	})

	assert.Equal(t, link.URL, url)
}

func TestResolve_AliasLegadoRemapeiaCampanhaEPromCode(t *testing.T) {
	service, m := newRedirectTestService(t)

	alias := &domain.CampaignAlias{
		SourceCampaign:   "betsson col",
		SourcePromCode:   "velho",
		TargetCampaignID: 8,
		TargetPromCode:   "novo",
	}
	campaign := &domain.Campaign{ID: 8}
	link := &domain.Link{ID: 20, CampaignID: 8, URL: "https://casa.example/novo"}

	m.aliasRepo.EXPECT().Resolve("betsson col", "velho").Return(alias, nil)
	m.campaignRepo.EXPECT().GetByID(int64(8)).Return(campaign, nil)
	m.linkRepo.EXPECT().GetByCampaignAndPromCode(int64(8), "novo").Return(link, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	url := service.Resolve(context.Background(), Request{
		Segments:  []string{"betsson", "col", "velho"},
		UserAgent: "Mozilla/5.0",
	})

	assert.Equal(t, link.URL, url)
}

func TestResolve_LequeDePrefixoBetfairColEncontraACampanhaComOPromCode(t *testing.T) {
	service, m := newRedirectTestService(t)

	first := &domain.Campaign{ID: 3}
	second := &domain.Campaign{ID: 4}
	link := &domain.Link{ID: 30, CampaignID: 4, URL: "https://casa.example/seg"}

	m.aliasRepo.EXPECT().Resolve("betfair col", "xyz").Return(nil, nil)
	m.campaignRepo.EXPECT().GetByTitle("betfair col").Return(nil, nil)
	m.campaignRepo.EXPECT().ListByTitlePrefix("betfair col").Return([]*domain.Campaign{first, second}, nil)
	m.linkRepo.EXPECT().GetByCampaignAndPromCode(int64(3), "xyz").Return(nil, nil)
	m.linkRepo.EXPECT().GetByCampaignAndPromCode(int64(4), "xyz").Return(link, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	url := service.Resolve(context.Background(), Request{
		Segments:  []string{"betfair", "col", "xyz"},
		UserAgent: "Mozilla/5.0",
	})

	assert.Equal(t, link.URL, url)
}

func TestResolve_LequeDePrefixoEhExclusivoDaFamiliaBetfairCol(t *testing.T) {
	service, m := newRedirectTestService(t)

	// Sem ListByTitlePrefix esperado: fora de "betfair col" o título exato é
	// obrigatório.
	m.aliasRepo.EXPECT().Resolve("rushbet", "xyz").Return(nil, nil)
	m.campaignRepo.EXPECT().GetByTitle("rushbet").Return(nil, nil)

	url := service.Resolve(context.Background(), Request{
		Segments:  []string{"rushbet", "xyz"},
		UserAgent: "Mozilla/5.0",
	})

	assert.Equal(t, service.errorURL+"/rushbet/xyz", url)
}

func TestResolve_SegmentoUnicoEhTokenOpaco(t *testing.T) {
	service, m := newRedirectTestService(t)

	// O payload do token é "<rótulo>-<link_id>"; o rótulo identifica a peça
	// de mídia e só o id resolve o link.
	token, err := fernet.EncryptAndSign([]byte("banner-promo-10"), service.fernetKeys[0])
	require.NoError(t, err)

	campaign := &domain.Campaign{ID: 3}
	link := &domain.Link{ID: 10, CampaignID: 3, URL: "https://casa.example/r"}

	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task domain.ClickTask) error {
			assert.Equal(t, int64(10), task.LinkID)
			return nil
		})

	url := service.Resolve(context.Background(), Request{
		Segments:  []string{string(token)},
		UserAgent: "Mozilla/5.0",
	})

	assert.Equal(t, link.URL, url)
}

func TestResolve_TokenInvalidoVaiParaAURLDeErroComOPath(t *testing.T) {
	service, _ := newRedirectTestService(t)

	url := service.Resolve(context.Background(), Request{
		Segments:  []string{"naoeumtoken"},
		UserAgent: "Mozilla/5.0",
	})

	assert.Equal(t, service.errorURL+"/naoeumtoken", url)
}

func TestResolve_BotVaiParaALandingSemPublicar(t *testing.T) {
	service, m := newRedirectTestService(t)

	campaign := &domain.Campaign{ID: 3}
	link := &domain.Link{ID: 10, CampaignID: 3, URL: "https://casa.example/r"}

	m.aliasRepo.EXPECT().Resolve("betfair", "abc123").Return(nil, nil)
	m.campaignRepo.EXPECT().GetByTitle("betfair").Return(campaign, nil)
	m.linkRepo.EXPECT().GetByCampaignAndPromCode(int64(3), "abc123").Return(link, nil)

	// Nenhum Publish esperado: o bot não conta e não chega à casa.
	url := service.Resolve(context.Background(), Request{
		Segments:  []string{"betfair", "abc123"},
		UserAgent: "Googlebot/2.1 (+http://www.google.com/bot.html)",
	})

	assert.Equal(t, service.landingURL, url)
}

func TestResolve_BotEmLinkGrowthTambemVaiParaALanding(t *testing.T) {
	service, m := newRedirectTestService(t)

	token, err := fernet.EncryptAndSign([]byte("outdoor-10"), service.fernetKeys[0])
	require.NoError(t, err)

	campaign := &domain.Campaign{ID: 3}
	link := &domain.Link{ID: 10, CampaignID: 3, Status: domain.LinkStatusGrowth, URL: "https://casa.example/r"}

	m.linkRepo.EXPECT().GetByID(int64(10)).Return(link, nil)
	m.campaignRepo.EXPECT().GetByID(int64(3)).Return(campaign, nil)

	url := service.Resolve(context.Background(), Request{
		Segments:  []string{string(token)},
		UserAgent: "Googlebot/2.1 (+http://www.google.com/bot.html)",
	})

	assert.Equal(t, service.landingURL, url)
}

func TestResolve_CampanhaDesconhecidaVaiParaAURLDeErroComOPath(t *testing.T) {
	service, m := newRedirectTestService(t)

	m.aliasRepo.EXPECT().Resolve("inexistente", "abc").Return(nil, nil)
	m.campaignRepo.EXPECT().GetByTitle("inexistente").Return(nil, nil)

	url := service.Resolve(context.Background(), Request{
		Segments:  []string{"inexistente", "abc"},
		UserAgent: "Mozilla/5.0",
	})

	assert.Equal(t, service.errorURL+"/inexistente/abc", url)
}

func TestResolve_FalhaNaFilaNaoImpedeORedirecionamento(t *testing.T) {
	service, m := newRedirectTestService(t)

	campaign := &domain.Campaign{ID: 3}
	link := &domain.Link{ID: 10, CampaignID: 3, URL: "https://casa.example/r"}

	m.aliasRepo.EXPECT().Resolve("betfair", "abc123").Return(nil, nil)
	m.campaignRepo.EXPECT().GetByTitle("betfair").Return(campaign, nil)
	m.linkRepo.EXPECT().GetByCampaignAndPromCode(int64(3), "abc123").Return(link, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker indisponível"))

	url := service.Resolve(context.Background(), Request{
		Segments:  []string{"betfair", "abc123"},
		UserAgent: "Mozilla/5.0",
	})

	assert.Equal(t, link.URL, url, "o visitante nunca paga pela falha da fila")
}

func TestResolve_MaiusculasNormalizamMasOPromCodePreservaOCaso(t *testing.T) {
	service, m := newRedirectTestService(t)

	campaign := &domain.Campaign{ID: 3}
	link := &domain.Link{ID: 10, CampaignID: 3, URL: "https://casa.example/r"}

	m.aliasRepo.EXPECT().Resolve("betfair colombia", "ABC123").Return(nil, nil)
	m.campaignRepo.EXPECT().GetByTitle("betfair colombia").Return(campaign, nil)
	// O prom_code preserva o caso original.
	m.linkRepo.EXPECT().GetByCampaignAndPromCode(int64(3), "ABC123").Return(link, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	url := service.Resolve(context.Background(), Request{
		Segments:  []string{"BETFAIR", "Colombia", "ABC123"},
		UserAgent: "Mozilla/5.0",
	})

	assert.Equal(t, link.URL, url)
}
