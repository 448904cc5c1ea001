package domain

// Enrichment é o resultado da consulta geo/ASN de um IP. Campos nulos quando
// a fonte não conhece o dado.
type Enrichment struct {
	IP          string
	Registry    *string
	CountryCode *string
	CountryName *string
	City        *string
	AsnCode     *string
	AsnName     *string
	AsnRoute    *string
	AsnStart    *string
	AsnEnd      *string
	AsnCount    *int64
	Spam        *bool
	Tor         *bool
}
