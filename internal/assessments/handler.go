package assessments

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"placement-backend/internal/extract"
	"placement-backend/internal/shared/server/middleware"
	"placement-backend/internal/shared/server/respond"
	"placement-backend/internal/shared/util"
)

// maxTranscriptBytes bounds uploaded transcript files.
const maxTranscriptBytes = 5 << 20

// Handler wires HTTP handlers to the assessments service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessments", h.createAssessment)
	rg.POST("/assessments/import", h.importTranscript)
	rg.GET("/assessments", h.listAssessments)
	rg.GET("/assessments/:id", h.getAssessment)
	rg.POST("/coverage", h.matchCoverage)
}

type createAssessmentRequest struct {
	AnswerText     string   `json:"answerText"`
	ElapsedSeconds int      `json:"elapsedSeconds"`
	ExpectedPoints []string `json:"expectedPoints"`
}

func (h *Handler) createAssessment(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.AnswerText) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "answerText is required", nil)
		return
	}

	outcome, err := h.Svc.Analyze(c.Request.Context(), AnalyzeRequest{
		UserID:         userID,
		AnswerText:     req.AnswerText,
		Source:         SourceTyped,
		ElapsedSeconds: req.ElapsedSeconds,
		ExpectedPoints: req.ExpectedPoints,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze answer", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, analyzeResponse(outcome))
}

func (h *Handler) importTranscript(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "transcript file is required", nil)
		return
	}
	if fileHeader.Size > maxTranscriptBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "transcript exceeds the size limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read transcript", nil)
		return
	}
	defer file.Close()
	raw, err := io.ReadAll(io.LimitReader(file, maxTranscriptBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read transcript", nil)
		return
	}

	text, err := extract.TextFromBytes(c.Request.Context(), raw, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_type", "transcript must be txt, pdf, or docx", nil)
		default:
			respond.Error(c, http.StatusUnprocessableEntity, "extract_failed", "could not extract text from transcript", nil)
		}
		return
	}
	if strings.TrimSpace(text) == "" {
		respond.Error(c, http.StatusUnprocessableEntity, "extract_failed", "transcript contains no text", nil)
		return
	}

	elapsed := 0
	if v := c.PostForm("elapsedSeconds"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			elapsed = parsed
		}
	}

	outcome, err := h.Svc.Analyze(c.Request.Context(), AnalyzeRequest{
		UserID:         userID,
		AnswerText:     text,
		Source:         SourceTranscript,
		ElapsedSeconds: elapsed,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze transcript", nil)
		return
	}

	resp := analyzeResponse(outcome)
	if name, err := util.SanitizeFileName(fileHeader.Filename); err == nil {
		resp["fileName"] = name
	}
	respond.JSON(c, http.StatusCreated, resp)
}

func (h *Handler) getAssessment(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	assessmentID := c.Param("id")
	if assessmentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "assessment id is required", nil)
		return
	}

	assessment, err := h.Svc.Get(c.Request.Context(), userID, assessmentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "assessment not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch assessment", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"id":              assessment.ID,
		"source":          assessment.Source,
		"grammarScore":    assessment.GrammarScore,
		"fluencyScore":    assessment.FluencyScore,
		"vocabularyScore": assessment.VocabularyScore,
		"result":          assessment.Result,
		"createdAt":       assessment.CreatedAt,
	})
}

func (h *Handler) listAssessments(c *gin.Context) {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
			return
		}
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	assessments, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list assessments", nil)
		return
	}

	resp := make([]gin.H, 0, len(assessments))
	for _, a := range assessments {
		resp = append(resp, gin.H{
			"id":              a.ID,
			"source":          a.Source,
			"grammarScore":    a.GrammarScore,
			"fluencyScore":    a.FluencyScore,
			"vocabularyScore": a.VocabularyScore,
			"createdAt":       a.CreatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

type coverageRequest struct {
	Answer         string   `json:"answer"`
	ExpectedPoints []string `json:"expectedPoints"`
}

func (h *Handler) matchCoverage(c *gin.Context) {
	var req coverageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result := h.Svc.Analyzer.MatchCoverage(req.Answer, req.ExpectedPoints)
	respond.JSON(c, http.StatusOK, result)
}

func analyzeResponse(outcome AnalyzeOutcome) gin.H {
	resp := gin.H{
		"assessmentId": outcome.Assessment.ID,
		"source":       outcome.Assessment.Source,
		"result":       outcome.Result,
	}
	if outcome.Coverage != nil {
		resp["coverage"] = outcome.Coverage
	}
	return resp
}
