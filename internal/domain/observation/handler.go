package observation

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinrec/clinrec/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/observations", h.CreateObservation)
	api.GET("/observations", h.ListObservations)
	api.GET("/observations/:id", h.GetObservation)
	api.PUT("/observations/:id", h.UpdateObservation)
	api.DELETE("/observations/:id", h.DeleteObservation)
	api.GET("/observations/patient/:patientId", h.ListByPatient)
	api.GET("/observations/encounter/:encounterId", h.ListByEncounter)
	api.GET("/patients/:id/observations", h.ListPatientObservations)
}

func (h *Handler) CreateObservation(c echo.Context) error {
	var in DTO
	if err := c.Bind(&in); err != nil {
		return response.JSON(c, response.BadRequest(response.ErrorMessage(err)))
	}
	if err := c.Validate(&in); err != nil {
		return response.JSON(c, response.BadRequest(response.ErrorMessage(err)))
	}

	out, err := h.svc.CreateObservation(c.Request().Context(), in)
	if errors.Is(err, ErrPatientNotFound) {
		return response.JSON(c, response.BadRequest("Bad request - Patient not found"))
	}
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Created("Observation created successfully", out))
}

func (h *Handler) GetObservation(c echo.Context) error {
	id, err := parseParam(c, "id")
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid observation id"))
	}

	out, err := h.svc.GetObservation(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return response.JSON(c, response.NotFound("Observation not found"))
	}
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Observation fetched successfully", out))
}

func (h *Handler) ListObservations(c echo.Context) error {
	out, err := h.svc.ListObservations(c.Request().Context())
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Observations fetched successfully", out))
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := parseParam(c, "patientId")
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid patient id"))
	}

	out, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Observations fetched successfully", out))
}

func (h *Handler) ListByEncounter(c echo.Context) error {
	encounterID, err := parseParam(c, "encounterId")
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid encounter id"))
	}

	out, err := h.svc.ListByEncounter(c.Request().Context(), encounterID)
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Observations fetched successfully", out))
}

func (h *Handler) ListPatientObservations(c echo.Context) error {
	patientID, err := parseParam(c, "id")
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid patient id"))
	}

	out, err := h.svc.ListPatientObservations(c.Request().Context(), patientID)
	if errors.Is(err, ErrPatientNotFound) {
		return response.JSON(c, response.NotFound("Patient not found"))
	}
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Patient observations fetched successfully", out))
}

func (h *Handler) UpdateObservation(c echo.Context) error {
	id, err := parseParam(c, "id")
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid observation id"))
	}
	var in DTO
	if err := c.Bind(&in); err != nil {
		return response.JSON(c, response.BadRequest(response.ErrorMessage(err)))
	}
	if err := c.Validate(&in); err != nil {
		return response.JSON(c, response.BadRequest(response.ErrorMessage(err)))
	}

	out, err := h.svc.UpdateObservation(c.Request().Context(), id, in)
	if errors.Is(err, ErrNotFound) {
		return response.JSON(c, response.NotFound("Observation not found"))
	}
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Observation updated successfully", out))
}

func (h *Handler) DeleteObservation(c echo.Context) error {
	id, err := parseParam(c, "id")
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid observation id"))
	}

	err = h.svc.DeleteObservation(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return response.JSON(c, response.NotFound("Observation not found"))
	}
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Observation deleted successfully", nil))
}

func parseParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
