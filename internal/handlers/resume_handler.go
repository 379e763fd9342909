package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"careerlink/internal/models"
	"careerlink/internal/services"
	"careerlink/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// multipartSlack covers the form framing around the file itself.
const multipartSlack = 1 << 20

type ResumeHandler struct {
	*BaseHandler
	resumeService services.ResumeService
	maxSize       int64
}

func NewResumeHandler(base *BaseHandler, resumeService services.ResumeService, maxSize int64) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler:   base,
		resumeService: resumeService,
		maxSize:       maxSize,
	}
}

func (h *ResumeHandler) RegisterRoutes(r *gin.RouterGroup) {
	upload := r.Group("/resume")
	upload.Use(h.Protected(models.UserRoleJobSeeker)...)
	{
		upload.POST("", h.Upload)
	}

	resumes := r.Group("/resume")
	resumes.Use(h.Protected()...)
	{
		resumes.GET("/:userId", h.GetResumeURL)
		resumes.GET("/analyze/:userId", h.Analyze)
	}
}

func (h *ResumeHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if h.maxSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize+multipartSlack)
	}

	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			apperrors.HandleError(c, apperrors.NewBadRequestError("Resume file is too large"))
			return
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			file = nil
		default:
			apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid multipart form: "+err.Error()))
			return
		}
	}

	resp, err := h.resumeService.Upload(c.Request.Context(), h.GetDB(c), userID, fileOrNil(file))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ResumeHandler) GetResumeURL(c *gin.Context) {
	resp, err := h.resumeService.GetURL(h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ResumeHandler) Analyze(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.resumeService.Analyze(c.Request.Context(), h.GetDB(c), userID, c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func fileOrNil(f *multipart.FileHeader) *multipart.FileHeader {
	if f == nil || f.Filename == "" {
		return nil
	}
	return f
}
