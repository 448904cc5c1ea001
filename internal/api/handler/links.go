package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/betenlace/partners-cpa-api/internal/usecases/linking"
	"github.com/betenlace/partners-cpa-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type CreateLinkRequest struct {
	CampaignID int64  `json:"campaign_id"`
	URL        string `json:"url"`
	PromCode   string `json:"prom_code"`
}

type AssignLinkRequest struct {
	PartnerID     int64  `json:"partner_id"`
	CurrencyLocal string `json:"currency_local"`
}

type SetCampaignStatusRequest struct {
	Status string `json:"status"`
}

// CreateLink registra um novo slot de tráfego numa campanha
func CreateLink(service linking.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateLink")

		var req CreateLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.CampaignID == 0 || req.URL == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "campaign_id e url são obrigatórios", nil)
			return
		}

		link, err := service.CreateLink(req.CampaignID, req.URL, req.PromCode)
		if err != nil {
			handleLinkError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(link)
	}
}

// AssignLink entrega um link livre a um parceiro
func AssignLink(service linking.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AssignLink")

		linkID, err := linkIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do link inválido", nil)
			return
		}

		var req AssignLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.PartnerID == 0 || req.CurrencyLocal == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "partner_id e currency_local são obrigatórios", nil)
			return
		}

		partnerLink, err := service.AssignLink(linkID, req.PartnerID, req.CurrencyLocal)
		if err != nil {
			handleLinkError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(partnerLink)
	}
}

// DetachLink desfaz a atribuição de um link, preservando o histórico do
// parceiro
func DetachLink(service linking.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DetachLink")

		linkID, err := linkIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do link inválido", nil)
			return
		}

		if err := service.DetachLink(linkID); err != nil {
			handleLinkError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"msg": "Link liberado com sucesso",
		})
	}
}

// SetCampaignStatus aplica um status administrativo à campanha
func SetCampaignStatus(service linking.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetCampaignStatus")

		campaignIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		campaignID, err := strconv.ParseInt(campaignIDStr, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da campanha inválido", nil)
			return
		}

		var req SetCampaignStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SetCampaignStatus(campaignID, domain.CampaignStatus(req.Status)); err != nil {
			handleLinkError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"msg": "Status da campanha atualizado com sucesso",
		})
	}
}

func linkIDFromRequest(r *http.Request) (int64, error) {
	linkIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return strconv.ParseInt(linkIDStr, 10, 64)
}

func handleLinkError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, linking.ErrCampaignNotFound),
		errors.Is(err, linking.ErrLinkNotFound),
		errors.Is(err, linking.ErrPartnerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, linking.ErrLinkNotAvailable),
		errors.Is(err, linking.ErrLinkNotAssigned),
		errors.Is(err, linking.ErrStatusNotAssignable):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno na gestão de links", nil)
	}
}
