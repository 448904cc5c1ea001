package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/betenlace/partners-cpa-api/internal/usecases/clicking"
	"github.com/betenlace/partners-cpa-api/pkg/apiErrors"
	"github.com/betenlace/partners-cpa-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// GetLinkClicks lista as fingerprints de clique de um link num intervalo de
// dias. O intervalo é cortado no servidor pelo máximo configurado.
func GetLinkClicks(service clicking.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetLinkClicks")

		linkIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		linkID, err := strconv.ParseInt(linkIDStr, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do link inválido", nil)
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, formato esperado: 2006-01-02", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, formato esperado: 2006-01-02", nil)
			return
		}

		clicks, err := service.ListClicks(linkID, startDate, endDate)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar cliques", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": clicks,
		})
	}
}
