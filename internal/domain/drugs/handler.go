package drugs

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/drugs", func(dr chi.Router) {
		dr.Get("/", listDrugsHandler(svc))
		dr.Get("/{drug}", getDrugHandler(svc))
	})

	r.Post("/calculations", calculateHandler(svc))
}

type formulationResponse struct {
	Amount float64 `json:"amount"`
	Unit   Unit    `json:"unit"`
	Volume float64 `json:"volume"`
}

type dosingResponse struct {
	Min           float64  `json:"min"`
	Max           float64  `json:"max"`
	Range         string   `json:"range"`
	Unit          DoseUnit `json:"unit"`
	IsWeightBased bool     `json:"is_weight_based"`
}

// drugResponse representa una droga del catálogo.
type drugResponse struct {
	ID                      string              `json:"id"`
	Name                    string              `json:"name"`
	Brands                  []string            `json:"brands"`
	ConcentrationsAvailable []string            `json:"concentrations_available"`
	StandardFormulation     formulationResponse `json:"standard_formulation"`
	Dosing                  dosingResponse      `json:"dosing"`
}

// calculateRequest es el cuerpo para calcular la velocidad de infusión.
// Los campos numéricos son punteros para distinguir "ausente" de cero.
type calculateRequest struct {
	Drug   string   `json:"drug"`
	Dose   *float64 `json:"dose"`
	Weight *float64 `json:"weight"` // kg, opcional

	// Preparación: cantidad de droga (vacío => 0) en DrugVolume ml (entero).
	DrugAmount     *float64 `json:"drug_amount"`
	DrugAmountUnit Unit     `json:"drug_amount_unit" enums:"mg,mcg,units"`
	DrugVolume     *float64 `json:"drug_volume"`
}

type preparationResponse struct {
	Standard bool   `json:"standard"`
	Message  string `json:"message,omitempty"`
}

// calculationResponse es el resultado del cálculo devuelto por la API.
type calculationResponse struct {
	ID           string              `json:"id"`
	DrugID       string              `json:"drug_id"`
	DrugName     string              `json:"drug_name"`
	Rate         float64             `json:"rate"`
	RateDisplay  string              `json:"rate_display"`
	Formula      string              `json:"formula"`
	DoseStatus   DoseStatus          `json:"dose_status" enums:"standard,low,high"`
	DoseUnit     DoseUnit            `json:"dose_unit"`
	DosingRange  string              `json:"dosing_range"`
	DoseMessage  string              `json:"dose_message"`
	Preparation  preparationResponse `json:"preparation"`
	CalculatedAt time.Time           `json:"calculated_at"`
}

// listDrugsHandler godoc
// @Summary Listar drogas
// @Description Devuelve el catálogo de vasopresores/inotrópicos en orden, con preparación estándar y rango de dosis.
// @Tags drugs
// @Produce json
// @Success 200 {array} drugResponse
// @Failure 500 {string} string "internal error"
// @Router /drugs [get]
func listDrugsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]drugResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDrugResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getDrugHandler godoc
// @Summary Obtener droga
// @Description Busca una droga por id (ej `norepinephrine`) o por nombre, sin distinguir mayúsculas.
// @Tags drugs
// @Produce json
// @Param drug path string true "ID o nombre de la droga"
// @Success 200 {object} drugResponse
// @Failure 404 {string} string "no drug selected"
// @Failure 500 {string} string "internal error"
// @Router /drugs/{drug} [get]
func getDrugHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Get(r.Context(), chi.URLParam(r, "drug"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDrugResponse(d))
	}
}

// calculateHandler godoc
// @Summary Calcular velocidad de infusión
// @Description Convierte la dosis deseada en ml/hr para la concentración y dilución indicadas. Clasifica la dosis contra el rango estándar (límites inclusivos) y avisa si la preparación no es la estándar.
// @Tags calculations
// @Accept json
// @Produce json
// @Param payload body calculateRequest true "Dosis, peso (drogas por kg) y preparación"
// @Success 200 {object} calculationResponse
// @Failure 400 {string} string "input inválido / peso faltante / unidad de concentración incorrecta"
// @Failure 404 {string} string "no drug selected"
// @Failure 500 {string} string "internal error"
// @Router /calculations [post]
func calculateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req calculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.validate()
		if err != nil {
			writeError(w, err)
			return
		}

		c, err := svc.Calculate(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toCalculationResponse(c))
	}
}

// Mensajes del formulario. Se muestran tal cual al usuario.
const (
	msgSelectDrug        = "Please select a drug."
	msgDoseRequired      = "Desired dose is required."
	msgDosePositive      = "Dose must be positive."
	msgWeightPositive    = "Weight must be positive."
	msgAmountNegative    = "Amount cannot be negative."
	msgUnitRequired      = "Amount unit is required."
	msgUnitInvalid       = "Amount unit must be one of mg, mcg, units."
	msgVolumeNegative    = "Volume cannot be negative."
	msgVolumeWhole       = "Volume must be a whole number."
	msgAmountNeedsVolume = "Drug amount must be positive if volume is positive."
	msgVolumeNeedsAmount = "Syringe volume must be positive if drug amount is positive."
	msgVolumeRequired    = "Syringe volume is required."
)

// formError es un error de validación del formulario; cuenta como ErrInvalidInput.
type formError string

func (e formError) Error() string { return string(e) }
func (e formError) Unwrap() error { return ErrInvalidInput }

// validate aplica las reglas del formulario antes de llamar al cálculo.
// El requisito de peso lo decide el cálculo según la droga.
func (req calculateRequest) validate() (CalculateInput, error) {
	if strings.TrimSpace(req.Drug) == "" {
		return CalculateInput{}, formError(msgSelectDrug)
	}

	if req.Dose == nil {
		return CalculateInput{}, formError(msgDoseRequired)
	}
	if !isFinite(*req.Dose) || *req.Dose <= 0 {
		return CalculateInput{}, formError(msgDosePositive)
	}

	if req.Weight != nil && (!isFinite(*req.Weight) || *req.Weight <= 0) {
		return CalculateInput{}, formError(msgWeightPositive)
	}

	amount := 0.0
	if req.DrugAmount != nil {
		amount = *req.DrugAmount
	}
	if !isFinite(amount) || amount < 0 {
		return CalculateInput{}, formError(msgAmountNegative)
	}

	if req.DrugAmountUnit == "" {
		return CalculateInput{}, formError(msgUnitRequired)
	}
	if !req.DrugAmountUnit.Valid() {
		return CalculateInput{}, formError(msgUnitInvalid)
	}

	volume := 0.0
	if req.DrugVolume != nil {
		volume = *req.DrugVolume
	}
	if !isFinite(volume) || volume < 0 {
		return CalculateInput{}, formError(msgVolumeNegative)
	}
	if volume != math.Trunc(volume) {
		return CalculateInput{}, formError(msgVolumeWhole)
	}

	if volume > 0 && amount <= 0 {
		return CalculateInput{}, formError(msgAmountNeedsVolume)
	}
	if amount > 0 && volume <= 0 {
		return CalculateInput{}, formError(msgVolumeNeedsAmount)
	}
	if volume <= 0 {
		return CalculateInput{}, formError(msgVolumeRequired)
	}

	return CalculateInput{
		Drug: strings.TrimSpace(req.Drug),
		RateInput: RateInput{
			Dose:                *req.Dose,
			Weight:              req.Weight,
			ConcentrationAmount: amount,
			ConcentrationUnit:   req.DrugAmountUnit,
			DilutionVolume:      volume,
		},
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrDrugNotFound):
		http.Error(w, ErrDrugNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toDrugResponse(d Drug) drugResponse {
	return drugResponse{
		ID:                      d.ID,
		Name:                    d.Name,
		Brands:                  d.Brands,
		ConcentrationsAvailable: d.ConcentrationsAvailable,
		StandardFormulation: formulationResponse{
			Amount: d.StandardFormulation.Amount,
			Unit:   d.StandardFormulation.Unit,
			Volume: d.StandardFormulation.Volume,
		},
		Dosing: dosingResponse{
			Min:           d.Dosing.Min,
			Max:           d.Dosing.Max,
			Range:         d.Dosing.Range(),
			Unit:          d.Dosing.Unit,
			IsWeightBased: d.Dosing.IsWeightBased,
		},
	}
}

func toCalculationResponse(c Calculation) calculationResponse {
	return calculationResponse{
		ID:          c.ID,
		DrugID:      c.Drug.ID,
		DrugName:    c.Drug.Name,
		Rate:        c.Result.Rate,
		RateDisplay: RateDisplay(c.Result.Rate),
		Formula:     c.Result.Formula,
		DoseStatus:  c.Result.DoseStatus,
		DoseUnit:    c.Drug.Dosing.Unit,
		DosingRange: c.Drug.Dosing.Range(),
		DoseMessage: c.DoseMessage,
		Preparation: preparationResponse{
			Standard: c.Preparation.Standard,
			Message:  c.Preparation.Message,
		},
		CalculatedAt: c.CalculatedAt,
	}
}

// writeJSON está duplicado en los handlers de cada módulo, igual que en el resto del repo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
