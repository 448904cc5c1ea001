package handler

import (
	"encoding/json"
	"net/http"

	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/betenlace/partners-cpa-api/internal/usecases/cpaposting"
	"github.com/betenlace/partners-cpa-api/pkg/apiErrors"
	"github.com/betenlace/partners-cpa-api/pkg/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// UpdateCpas recebe o lote diário do fechamento e aplica contadores e valores
// nas linhas diárias e nos acumuladores. Lote inválido não escreve nada.
func UpdateCpas(service cpaposting.Poster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCpas")

		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.CPABatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.PostBatch(r.Context(), userClaims, req); err != nil {
			handleCpaError(w, err)
			return
		}

		// Resposta mantida idêntica ao contrato consumido pelo fechamento,
		// erro de grafia incluído.
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"msg": "Cpas updated succesfully",
		})
	}
}

func handleCpaError(w http.ResponseWriter, err error) {
	var cpaErr *cpaposting.CpaError
	if errors.As(err, &cpaErr) {
		apiErrors.WriteError(w, cpaErr.Code, cpaErr.Error(), nil)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao lançar CPAs", nil)
}
