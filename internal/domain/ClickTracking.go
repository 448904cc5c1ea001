package domain

import "time"

// ClickTracking é a fingerprint de visitante de um link: um registro por
// (link, ip) dentro da janela de dedup, com os campos de enriquecimento
// geo/ASN quando a consulta externa teve sucesso.
type ClickTracking struct {
	ID            int64  `json:"id"`
	LinkID        int64  `json:"link_id"`
	PartnerLinkID *int64 `json:"partner_link_id"`
	IP            string `json:"ip"`

	Registry    *string `json:"registry"`
	CountryCode *string `json:"country_code"`
	CountryName *string `json:"country_name"`
	City        *string `json:"city"`
	AsnCode     *string `json:"asn_code"`
	AsnName     *string `json:"asn_name"`
	AsnRoute    *string `json:"asn_route"`
	AsnStart    *string `json:"asn_start"`
	AsnEnd      *string `json:"asn_end"`
	AsnCount    *int64  `json:"asn_count"`
	Spam        *bool   `json:"spam"`
	Tor         *bool   `json:"tor"`

	Count     int64     `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// ClickTask é a mensagem publicada pela superfície de redirecionamento e
// consumida pelo worker de cliques.
type ClickTask struct {
	LinkID              int64  `json:"link_id"`
	PartnerLinkID       *int64 `json:"partner_link_id"`
	CurrencyCondition   string `json:"currency_condition"`
	CurrencyFixedIncome string `json:"currency_fixed_income"`
	ClientIP            string `json:"client_ip"`
}
