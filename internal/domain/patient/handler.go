package patient

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinrec/clinrec/internal/platform/validation"
	"github.com/clinrec/clinrec/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/patients", h.CreatePatient)
	api.GET("/patients", h.SearchPatients)
	api.GET("/patients/birthdate-range", h.SearchByBirthDateRange)
	api.GET("/patients/:id", h.GetPatient)
	api.PUT("/patients/:id", h.UpdatePatient)
	api.DELETE("/patients/:id", h.DeletePatient)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var in DTO
	if err := c.Bind(&in); err != nil {
		return response.JSON(c, response.BadRequest(response.ErrorMessage(err)))
	}
	if err := c.Validate(&in); err != nil {
		return response.JSON(c, response.BadRequest(response.ErrorMessage(err)))
	}

	out, err := h.svc.CreatePatient(c.Request().Context(), in)
	if errors.Is(err, ErrDuplicateIdentifier) {
		return response.JSON(c, response.BadRequest("Bad request - Patient identifier already exists"))
	}
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Created("Patient created successfully", out))
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid patient id"))
	}

	out, err := h.svc.GetPatient(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return response.JSON(c, response.NotFound("Patient not found"))
	}
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Patient fetched successfully", out))
}

func (h *Handler) SearchPatients(c echo.Context) error {
	q := SearchQuery{
		Identifier: c.QueryParam("identifier"),
		FamilyName: c.QueryParam("family"),
		GivenName:  c.QueryParam("given"),
	}
	if raw := c.QueryParam("birthDate"); raw != "" {
		d, err := time.Parse(validation.DateLayout, raw)
		if err != nil {
			return response.JSON(c, response.BadRequest("Invalid birthDate"))
		}
		q.BirthDate = &d
	}

	out, err := h.svc.SearchPatients(c.Request().Context(), q)
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Patients fetched successfully", out))
}

func (h *Handler) SearchByBirthDateRange(c echo.Context) error {
	start, err := time.Parse(validation.DateLayout, c.QueryParam("start"))
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid start date"))
	}
	end, err := time.Parse(validation.DateLayout, c.QueryParam("end"))
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid end date"))
	}
	if end.Before(start) {
		return response.JSON(c, response.BadRequest("Start date must not be after end date"))
	}

	out, err := h.svc.SearchByBirthDateRange(c.Request().Context(), start, end)
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Patients fetched successfully", out))
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid patient id"))
	}
	var in DTO
	if err := c.Bind(&in); err != nil {
		return response.JSON(c, response.BadRequest(response.ErrorMessage(err)))
	}
	if err := c.Validate(&in); err != nil {
		return response.JSON(c, response.BadRequest(response.ErrorMessage(err)))
	}

	out, err := h.svc.UpdatePatient(c.Request().Context(), id, in)
	if errors.Is(err, ErrNotFound) {
		return response.JSON(c, response.NotFound("Patient not found"))
	}
	if errors.Is(err, ErrDuplicateIdentifier) {
		return response.JSON(c, response.BadRequest("Bad request - Patient identifier already exists"))
	}
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Patient updated successfully", out))
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.JSON(c, response.BadRequest("Invalid patient id"))
	}

	err = h.svc.DeletePatient(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return response.JSON(c, response.NotFound("Patient not found"))
	}
	if err != nil {
		return response.JSON(c, response.Internal(err.Error()))
	}
	return response.JSON(c, response.Success("Patient deleted successfully", nil))
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
