package reference

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, t Table) {
	r.Get("/reference", getReferenceHandler(t))
}

type entryResponse struct {
	Agent           string `json:"agent"`
	TradeName       string `json:"trade_name"`
	InitialDose     string `json:"initial_dose"`
	MaintenanceDose string `json:"maintenance_dose"`
	MaxDose         string `json:"max_dose"`
}

// tableResponse es la tabla de referencia de dosis con sus notas.
type tableResponse struct {
	Entries       []entryResponse `json:"entries"`
	Notes         []string        `json:"notes"`
	Abbreviations string          `json:"abbreviations"`
}

// getReferenceHandler godoc
// @Summary Tabla de referencia
// @Description Dosis inicial, de mantenimiento y máxima por agente, más notas de seguridad. Solo informativo.
// @Tags reference
// @Produce json
// @Success 200 {object} tableResponse
// @Router /reference [get]
func getReferenceHandler(t Table) http.HandlerFunc {
	resp := tableResponse{
		Entries:       make([]entryResponse, 0, len(t.Entries)),
		Notes:         append([]string{}, t.Notes...),
		Abbreviations: t.Abbreviations,
	}
	for _, e := range t.Entries {
		resp.Entries = append(resp.Entries, entryResponse{
			Agent:           e.Agent,
			TradeName:       e.TradeName,
			InitialDose:     e.InitialDose,
			MaintenanceDose: e.MaintenanceDose,
			MaxDose:         e.MaxDose,
		})
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
