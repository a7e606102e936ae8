package encounter

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
	api.POST("/encounters", h.CreateEncounter)
	api.GET("/encounters", h.ListEncounters)
	api.GET("/encounters/:id", h.GetEncounter)
	api.PUT("/encounters/:id", h.UpdateEncounter)
	api.DELETE("/encounters/:id", h.DeleteEncounter)
	api.GET("/encounters/patient/:patientId", h.ListByPatient)
	api.GET("/patients/:id/encounters", h.ListPatientEncounters)
}

func (h *Handler) CreateEncounter(c echo.Context) error {
	var in DTO
	if err := c.Bind(&in); err != nil {
		return response.JSON(c, response.BadRequest(response.ErrorMessage(err)))
	}
	if err := c.Validate(&in); err != nil {
		return response.JSON(c, response.BadRequest(response.ErrorMessage(err)))
	}

	out, err := h.svc.CreateEncounter(c.Request().Context(), in)
	if errors.Is(err, ErrPatientNotFound) {
		return response.JSON(c, response.BadRequest("Bad request - Patient not found"))
	}
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Created("Encounter created successfully", out))
}

func (h *Handler) GetEncounter(c echo.Context) error {
	id, err := parseParam(c, "id")
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid encounter id"))
	}

	out, err := h.svc.GetEncounter(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return response.JSON(c, response.NotFound("Encounter not found"))
	}
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Encounter fetched successfully", out))
}

func (h *Handler) ListEncounters(c echo.Context) error {
	out, err := h.svc.ListEncounters(c.Request().Context())
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Encounters fetched successfully", out))
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
	return response.JSON(c, response.Success("Encounters fetched successfully", out))
}

func (h *Handler) ListPatientEncounters(c echo.Context) error {
	patientID, err := parseParam(c, "id")
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid patient id"))
	}

	out, err := h.svc.ListPatientEncounters(c.Request().Context(), patientID)
	if errors.Is(err, ErrPatientNotFound) {
		return response.JSON(c, response.NotFound("Patient not found"))
	}
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Patient encounters fetched successfully", out))
}

func (h *Handler) UpdateEncounter(c echo.Context) error {
	id, err := parseParam(c, "id")
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid encounter id"))
	}
	var in DTO
	if err := c.Bind(&in); err != nil {
		return response.JSON(c, response.BadRequest(response.ErrorMessage(err)))
	}
	if err := c.Validate(&in); err != nil {
		return response.JSON(c, response.BadRequest(response.ErrorMessage(err)))
	}

	out, err := h.svc.UpdateEncounter(c.Request().Context(), id, in)
	if errors.Is(err, ErrNotFound) {
		return response.JSON(c, response.NotFound("Encounter not found"))
	}
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Encounter updated successfully", out))
}

func (h *Handler) DeleteEncounter(c echo.Context) error {
	id, err := parseParam(c, "id")
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid encounter id"))
	}

	err = h.svc.DeleteEncounter(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return response.JSON(c, response.NotFound("Encounter not found"))
	}
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Encounter deleted successfully", nil))
}

func parseParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
