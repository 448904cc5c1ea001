package ipapi

import (
	"net"
	"strconv"

	ipapidomain "github.com/betenlace/partners-cpa-api/infrastructure/integrator/ipapi/domain"
	"github.com/betenlace/partners-cpa-api/infrastructure/integrator/ipapi/ipapiclient"
	"github.com/pkg/errors"
)

// ErrPrivateIP marca IPs privados, loopback ou reservados: a fingerprint é
// criada com campos nulos e nenhuma consulta externa é feita.
var ErrPrivateIP = errors.New("ip privado ou reservado, sem enriquecimento")

type Integrator interface {
	Enrich(ip string) (*ipapidomain.Enrichment, error)
}

type Service struct {
	Client ipapiclient.Client
}

func New(client ipapiclient.Client) Integrator {
	return &Service{
		Client: client,
	}
}

func (s *Service) Enrich(ip string) (*ipapidomain.Enrichment, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return nil, errors.Errorf("ip inválido: %q", ip)
	}

	if parsed.IsPrivate() || parsed.IsLoopback() || parsed.IsLinkLocalUnicast() || parsed.IsUnspecified() {
		return nil, ErrPrivateIP
	}

	resp, err := s.Client.Lookup(ip)
	if err != nil {
		return nil, errors.Wrap(err, "erro na consulta de enriquecimento")
	}

	if resp.IsBogon {
		return nil, ErrPrivateIP
	}

	enrichment := &ipapidomain.Enrichment{
		IP:          ip,
		Registry:    strPtr(resp.RIR),
		CountryCode: strPtr(resp.Location.CountryCode),
		CountryName: strPtr(resp.Location.Country),
		City:        strPtr(resp.Location.City),
		AsnName:     strPtr(resp.ASN.Org),
		AsnRoute:    strPtr(resp.ASN.Route),
		AsnStart:    strPtr(resp.ASN.Created),
		AsnEnd:      strPtr(resp.ASN.Updated),
		Spam:        boolPtr(resp.IsSpam),
		Tor:         boolPtr(resp.IsTor),
	}

	if resp.ASN.ASN != 0 {
		enrichment.AsnCode = strPtr(strconv.FormatInt(resp.ASN.ASN, 10))
	}
	if resp.ASN.Active != 0 {
		active := resp.ASN.Active
		enrichment.AsnCount = &active
	}

	return enrichment, nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
