package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"talentdeck-api/internal/config"
	"talentdeck-api/internal/dashboard"
	"talentdeck-api/internal/importer"
	"talentdeck-api/internal/logging"
	"talentdeck-api/internal/query"
	"talentdeck-api/internal/repository"
	"talentdeck-api/pkg/models"
	"talentdeck-api/pkg/utils"
)

var candidateValidator = validator.New()

// requestID returns the ID set by the request validation middleware
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok {
		return id
	}
	return utils.GenerateRequestID()
}

// errorResponse maps typed errors onto the wire error shape
func errorResponse(c echo.Context, reqID string, err error) error {
	var validationErr *query.ValidationError
	var notFoundErr *repository.NotFoundError
	var transportErr *repository.TransportError
	var customErr *utils.CustomError

	code := "request_failed"
	switch {
	case errors.As(err, &validationErr):
		code = "invalid_query"
		customErr = utils.NewBadRequestError(err.Error())
	case errors.As(err, &notFoundErr):
		code = "candidate_not_found"
		customErr = utils.NewNotFoundError(err.Error())
	case errors.As(err, &transportErr):
		// Only writes reach here with transport errors; reads recover
		// through the fallback dataset before the handler sees them.
		code = "store_unavailable"
		customErr = utils.NewUpstreamError(err.Error())
	case errors.As(err, &customErr):
	default:
		code = "internal_error"
		customErr = utils.NewInternalServerError(err.Error())
	}

	return c.JSON(customErr.Code, models.ErrorResponse{
		Error:     code,
		Message:   customErr.Error(),
		RequestID: reqID,
		Timestamp: time.Now(),
	})
}

// parseSpec builds a query specification from request query parameters.
// Month filtering uses the structured year+month pair; partial pairs and
// out-of-range values are surfaced as validation errors, never ignored.
func parseSpec(c echo.Context) (query.Spec, error) {
	spec := query.Spec{
		Search:        c.QueryParam("search"),
		Role:          c.QueryParam("role"),
		Status:        c.QueryParam("status"),
		Stage:         c.QueryParam("stage"),
		SortField:     query.SortField(c.QueryParam("sort_by")),
		SortDirection: query.SortDirection(c.QueryParam("order")),
	}

	yearParam, monthParam := c.QueryParam("year"), c.QueryParam("month")
	if yearParam != "" || monthParam != "" {
		if yearParam == "" || monthParam == "" {
			return spec, &query.ValidationError{Field: "month_year", Reason: "year and month must be given together"}
		}
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			return spec, &query.ValidationError{Field: "year", Reason: fmt.Sprintf("not a number: %q", yearParam)}
		}
		month, err := strconv.Atoi(monthParam)
		if err != nil {
			return spec, &query.ValidationError{Field: "month", Reason: fmt.Sprintf("not a number: %q", monthParam)}
		}
		spec.MonthYear = &query.MonthYear{Year: year, Month: month}
	}

	return spec, spec.Validate()
}

// ListCandidatesHandler handles GET /api/v1/candidates. With no query
// parameters it returns the collection in store order; sort parameters
// route through the query engine like any filter request.
func ListCandidatesHandler(svc *dashboard.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		spec, err := parseSpec(c)
		if err != nil {
			return errorResponse(c, reqID, err)
		}
		if !spec.IsZero() {
			result, err := svc.ExecuteQuery(c.Request().Context(), spec)
			if err != nil {
				logging.LogWithRequestID(reqID).Error("Candidate query failed", map[string]interface{}{"error": err.Error()})
				return errorResponse(c, reqID, err)
			}
			return c.JSON(http.StatusOK, models.CandidateListResponse{
				Candidates: result.Candidates,
				Total:      len(result.Candidates),
				Query:      result.Spec.State(),
				Generation: result.Generation,
				RequestID:  reqID,
			})
		}

		candidates, err := svc.ListAll(c.Request().Context())
		if err != nil {
			logging.LogWithRequestID(reqID).Error("Failed to list candidates", map[string]interface{}{"error": err.Error()})
			return errorResponse(c, reqID, err)
		}

		return c.JSON(http.StatusOK, models.CandidateListResponse{
			Candidates: candidates,
			Total:      len(candidates),
			RequestID:  reqID,
		})
	}
}

// FilterCandidatesHandler handles GET /api/v1/candidates/filter
func FilterCandidatesHandler(svc *dashboard.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		spec, err := parseSpec(c)
		if err != nil {
			return errorResponse(c, reqID, err)
		}

		result, err := svc.ExecuteQuery(c.Request().Context(), spec)
		if err != nil {
			logging.LogWithRequestID(reqID).Error("Candidate query failed", map[string]interface{}{"error": err.Error()})
			return errorResponse(c, reqID, err)
		}

		return c.JSON(http.StatusOK, models.CandidateListResponse{
			Candidates: result.Candidates,
			Total:      len(result.Candidates),
			Query:      result.Spec.State(),
			Generation: result.Generation,
			RequestID:  reqID,
		})
	}
}

// GetCandidateHandler handles GET /api/v1/candidates/:id
func GetCandidateHandler(svc *dashboard.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return errorResponse(c, reqID, utils.NewBadRequestError("candidate id must be an integer"))
		}

		candidate, err := svc.Get(c.Request().Context(), id)
		if err != nil {
			return errorResponse(c, reqID, err)
		}

		return c.JSON(http.StatusOK, models.CandidateDetailResponse{
			Candidate:   *candidate,
			Timeline:    models.StageTimeline(candidate.Stage),
			StageColor:  models.StageColor(candidate.Stage),
			StatusColor: models.StatusColor(candidate.Status),
			RequestID:   reqID,
		})
	}
}

// UpdateStatusHandler handles PATCH /api/v1/candidates/:id/status
func UpdateStatusHandler(svc *dashboard.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return errorResponse(c, reqID, utils.NewBadRequestError("candidate id must be an integer"))
		}

		var req models.UpdateStatusRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, reqID, utils.NewBadRequestError("invalid request body: "+err.Error()))
		}
		if err := candidateValidator.Struct(&req); err != nil {
			return errorResponse(c, reqID, utils.NewValidationError(err.Error()))
		}
		if req.Empty() {
			return errorResponse(c, reqID, utils.NewValidationError("at least one of status, stage or rating is required"))
		}

		candidate, err := svc.UpdateStatus(c.Request().Context(), id, req)
		if err != nil {
			logger.Error("Candidate update failed", map[string]interface{}{
				"candidate_id": id,
				"error":        err.Error(),
			})
			return errorResponse(c, reqID, err)
		}

		logger.Info("Candidate updated", map[string]interface{}{
			"candidate_id": id,
			"status":       candidate.Status,
			"stage":        candidate.Stage,
		})

		return c.JSON(http.StatusOK, models.CandidateDetailResponse{
			Candidate:   *candidate,
			Timeline:    models.StageTimeline(candidate.Stage),
			StageColor:  models.StageColor(candidate.Stage),
			StatusColor: models.StatusColor(candidate.Status),
			RequestID:   reqID,
		})
	}
}

// GeneratePDFHandler handles GET /api/v1/candidates/:id/pdf
func GeneratePDFHandler(svc *dashboard.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return errorResponse(c, reqID, utils.NewBadRequestError("candidate id must be an integer"))
		}

		document, err := svc.GeneratePDF(c.Request().Context(), id)
		if err != nil {
			logging.LogWithRequestID(reqID).Error("PDF generation failed", map[string]interface{}{
				"candidate_id": id,
				"error":        err.Error(),
			})
			return errorResponse(c, reqID, err)
		}

		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf("attachment; filename=candidate_%d.pdf", id))
		return c.Blob(http.StatusOK, "application/pdf", document)
	}
}

// ImportCandidatesHandler handles POST /api/v1/candidates/import
func ImportCandidatesHandler(svc *dashboard.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return errorResponse(c, reqID, utils.NewBadRequestError("import requires a file upload named 'file'"))
		}

		file, err := fileHeader.Open()
		if err != nil {
			return errorResponse(c, reqID, utils.NewBadRequestError("failed to open uploaded file"))
		}
		defer file.Close()

		candidates, err := importer.Parse(fileHeader.Filename, file, time.Now().UTC())
		if err != nil {
			return errorResponse(c, reqID, utils.NewValidationError(err.Error()))
		}

		count, err := svc.Import(c.Request().Context(), candidates)
		if err != nil {
			logger.Error("Candidate import failed", map[string]interface{}{"error": err.Error()})
			return errorResponse(c, reqID, err)
		}

		logger.Info("Candidates imported", map[string]interface{}{"count": count})

		return c.JSON(http.StatusOK, models.ImportResponse{
			Imported:  count,
			Message:   "Candidates imported successfully",
			RequestID: reqID,
		})
	}
}

// MonthOptionsHandler handles GET /api/v1/candidates/months
func MonthOptionsHandler(cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		return c.JSON(http.StatusOK, map[string]interface{}{
			"options":    query.MonthOptions(time.Now(), cfg.Query.MonthOptions),
			"request_id": reqID,
		})
	}
}

// SeedHandler handles POST /api/v1/seed, restoring the sample dataset
func SeedHandler(svc *dashboard.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		if err := svc.Reseed(c.Request().Context()); err != nil {
			return errorResponse(c, reqID, err)
		}

		return c.JSON(http.StatusOK, map[string]string{
			"message":    "Sample data created successfully",
			"request_id": reqID,
		})
	}
}
