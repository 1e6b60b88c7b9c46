package handler

import (
	"net/http"
	"strconv"

	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"github.com/straye-as/fieldservice-api/internal/service"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	articleService *service.ArticleService
	logger         *zap.Logger
}

func NewArticleHandler(articleService *service.ArticleService, logger *zap.Logger) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, logger: logger}
}

// @Summary List articles
// @Tags Articles
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param type query string false "Filter by type" Enums(article, service)
// @Param category query string false "Filter by category"
// @Param active query bool false "Filter by active flag"
// @Param search query string false "Search in number and name"
// @Success 200 {object} domain.PaginatedResponse
// @Failure 400 {object} domain.APIError
// @Router /articles [get]
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &repository.ArticleFilters{
		Category: optionalStringQuery(r, "category"),
		Search:   q.Get("search"),
	}
	if t := q.Get("type"); t != "" {
		itemType := domain.OfferItemType(t)
		if !itemType.IsValid() {
			respondWithError(w, http.StatusBadRequest, "Invalid type")
			return
		}
		filters.Type = &itemType
	}
	if a := q.Get("active"); a != "" {
		active, err := strconv.ParseBool(a)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid active flag")
			return
		}
		filters.IsActive = &active
	}

	page, pageSize := parsePagination(r)
	result, err := h.articleService.List(r.Context(), page, pageSize, filters)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to list articles")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// @Summary Create article
// @Tags Articles
// @Accept json
// @Produce json
// @Param request body domain.CreateArticleRequest true "Article data"
// @Success 201 {object} domain.ArticleDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateArticleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	article, err := h.articleService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to create article")
		return
	}
	w.Header().Set("Location", "/api/v1/articles/"+article.ID.String())
	respondJSON(w, http.StatusCreated, article)
}

// @Summary Get article
// @Tags Articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} domain.ArticleDTO
// @Failure 404 {object} domain.APIError
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	article, err := h.articleService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to get article")
		return
	}
	respondJSON(w, http.StatusOK, article)
}

// @Summary Update article
// @Tags Articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param request body domain.UpdateArticleRequest true "Article data"
// @Success 200 {object} domain.ArticleDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /articles/{id} [put]
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var req domain.UpdateArticleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	article, err := h.articleService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to update article")
		return
	}
	respondJSON(w, http.StatusOK, article)
}

// @Summary Delete article
// @Tags Articles
// @Param id path string true "Article ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.articleService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Failed to delete article")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
