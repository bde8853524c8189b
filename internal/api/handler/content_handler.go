package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/thejurists/site-api/internal/api/metrics"
	"github.com/thejurists/site-api/internal/api/middleware"
	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

// ContentHandler serves blog articles, services, trending topics, the legal
// directory and the sitemap.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// --- Blog ---

// ListBlog handles GET /v1/blog-articles.
//
// @Summary      List blog articles
// @Tags         blog
// @Produce      json
// @Param        category  query     string  false  "Practice area"
// @Success      200       {array}   domain.BlogArticle
// @Failure      400       {object}  errorResponse
// @Router       /v1/blog-articles [get]
func (h *ContentHandler) ListBlog(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		articles []domain.BlogArticle
		err      error
	)
	if category := c.QueryParam("category"); category != "" {
		articles, err = h.service.GetBlogArticlesByCategory(ctx, domain.PracticeArea(category))
	} else {
		articles, err = h.service.GetAllBlogArticles(ctx)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// GetBlog handles GET /v1/blog-articles/:id.
//
// @Summary      Get a blog article
// @Tags         blog
// @Produce      json
// @Param        id   path      int  true  "Article id"
// @Success      200  {object}  domain.BlogArticle
// @Failure      404  {object}  errorResponse
// @Router       /v1/blog-articles/{id} [get]
func (h *ContentHandler) GetBlog(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	a, err := h.service.GetBlogArticleByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return c.JSON(http.StatusOK, a)
}

// UpsertBlog handles PUT /v1/blog-articles. A zero id creates a new article.
//
// @Summary      Create or replace a blog article
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      blogArticleRequest  true  "Article"
// @Success      200   {object}  idResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/blog-articles [put]
func (h *ContentHandler) UpsertBlog(c echo.Context) error {
	var req blogArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	a := domain.BlogArticle{
		ID:       req.ID,
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Category: domain.PracticeArea(req.Category),
	}
	if req.PublishedDate != nil {
		a.PublishedDate = req.PublishedDate.UTC()
	}

	id, err := h.service.AddOrUpdateBlogArticle(c.Request().Context(), middleware.Caller(c), a)
	if err != nil {
		return denied(err, domain.ActionWriteContent)
	}

	metrics.ContentWritesTotal.WithLabelValues("blog_article").Inc()
	return c.JSON(http.StatusOK, idResponse{ID: id})
}

// --- Services ---

// ListServices handles GET /v1/services.
//
// @Summary      List the firm's services
// @Tags         services
// @Produce      json
// @Param        jurisdiction   query     string  false  "Jurisdiction"
// @Param        practice_area  query     string  false  "Practice area"
// @Success      200            {array}   domain.ServiceDetails
// @Failure      400            {object}  errorResponse
// @Router       /v1/services [get]
func (h *ContentHandler) ListServices(c echo.Context) error {
	ctx := c.Request().Context()
	jurisdiction := c.QueryParam("jurisdiction")
	practiceArea := c.QueryParam("practice_area")

	var (
		services []domain.ServiceDetails
		err      error
	)
	switch {
	case jurisdiction != "" && practiceArea != "":
		return echo.NewHTTPError(http.StatusBadRequest, "filter by jurisdiction or practice_area, not both")
	case jurisdiction != "":
		services, err = h.service.GetServicesByJurisdiction(ctx, domain.Jurisdiction(jurisdiction))
	case practiceArea != "":
		services, err = h.service.GetServicesByPracticeArea(ctx, domain.PracticeArea(practiceArea))
	default:
		services, err = h.service.GetAllServices(ctx)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// --- Trending topics ---

// ListTopics handles GET /v1/trending-topics.
//
// @Summary      List trending topics
// @Tags         trending
// @Produce      json
// @Param        practice_area  query     string  false  "Practice area"
// @Param        relevance      query     string  false  "national or local"
// @Param        posted         query     bool    false  "Posted state"
// @Success      200            {array}   domain.TrendingTopic
// @Failure      400            {object}  errorResponse
// @Router       /v1/trending-topics [get]
func (h *ContentHandler) ListTopics(c echo.Context) error {
	f := ports.TrendingTopicFilter{
		PracticeArea:   domain.PracticeArea(c.QueryParam("practice_area")),
		TrendRelevance: domain.TrendRelevance(c.QueryParam("relevance")),
	}
	if raw := c.QueryParam("posted"); raw != "" {
		posted, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "posted must be true or false")
		}
		f.Posted = &posted
	}

	topics, err := h.service.ListTrendingTopics(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, topics)
}

// CreateTopic handles POST /v1/trending-topics.
//
// @Summary      Create a trending topic
// @Tags         trending
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      trendingTopicRequest  true  "Topic"
// @Success      201   {object}  idResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/trending-topics [post]
func (h *ContentHandler) CreateTopic(c echo.Context) error {
	var req trendingTopicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := h.service.CreateTrendingTopic(c.Request().Context(), middleware.Caller(c), ports.CreateTrendingTopicInput{
		Title:           req.Title,
		Keywords:        req.Keywords,
		PopularityScore: req.PopularityScore,
		PracticeArea:    domain.PracticeArea(req.PracticeArea),
		TrendRelevance:  domain.TrendRelevance(req.TrendRelevance),
	})
	if err != nil {
		return denied(err, domain.ActionWriteContent)
	}

	metrics.ContentWritesTotal.WithLabelValues("trending_topic").Inc()
	return c.JSON(http.StatusCreated, idResponse{ID: id})
}

// MarkPosted handles POST /v1/trending-topics/:id/posted.
//
// @Summary      Mark a trending topic as posted
// @Tags         trending
// @Security     BearerAuth
// @Param        id   path      int  true  "Topic id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/trending-topics/{id}/posted [post]
func (h *ContentHandler) MarkPosted(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.MarkTrendingTopicAsPosted(c.Request().Context(), middleware.Caller(c), id); err != nil {
		return denied(err, domain.ActionWriteContent)
	}

	metrics.ContentWritesTotal.WithLabelValues("trending_posted").Inc()
	return c.NoContent(http.StatusNoContent)
}

// --- Legal directory ---

// ListListings handles GET /v1/legal-listings.
//
// @Summary      Search the legal directory
// @Tags         directory
// @Produce      json
// @Param        jurisdiction   query     string  false  "Jurisdiction"
// @Param        practice_area  query     string  false  "Specialization"
// @Success      200            {array}   domain.LegalListing
// @Failure      400            {object}  errorResponse
// @Router       /v1/legal-listings [get]
func (h *ContentHandler) ListListings(c echo.Context) error {
	listings, err := h.service.GetLegalDirectory(c.Request().Context(), ports.LegalListingFilter{
		Jurisdiction:   domain.Jurisdiction(c.QueryParam("jurisdiction")),
		Specialization: domain.PracticeArea(c.QueryParam("practice_area")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

// AddListing handles POST /v1/legal-listings.
//
// @Summary      Add a legal directory entry
// @Tags         directory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      legalListingRequest  true  "Listing"
// @Success      201   {object}  idResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/legal-listings [post]
func (h *ContentHandler) AddListing(c echo.Context) error {
	var req legalListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := h.service.AddLegalListing(c.Request().Context(), middleware.Caller(c), domain.LegalListing{
		Name:           req.Name,
		Contact:        req.Contact,
		Jurisdiction:   domain.Jurisdiction(req.Jurisdiction),
		Specialization: domain.PracticeArea(req.Specialization),
	})
	if err != nil {
		return denied(err, domain.ActionWriteContent)
	}

	metrics.ContentWritesTotal.WithLabelValues("legal_listing").Inc()
	return c.JSON(http.StatusCreated, idResponse{ID: id})
}

// --- Sitemap ---

// Sitemap handles GET /v1/sitemap.
//
// @Summary      List sitemap entries
// @Tags         sitemap
// @Produce      json
// @Success      200  {array}  domain.SitemapEntry
// @Router       /v1/sitemap [get]
func (h *ContentHandler) Sitemap(c echo.Context) error {
	entries, err := h.service.GetSitemapEntries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
