package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/personal-blog/portfolio-api/internal/api/metrics"
	"github.com/personal-blog/portfolio-api/internal/core/domain"
	"github.com/personal-blog/portfolio-api/internal/core/ports"
)

// bindAndValidate decodes the body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	return c.Validate(req)
}

// --- Profile ---

type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /api/profile.
//
// @Summary      Get the site profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.Profile
// @Failure      500  {object}  apierror.Response
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Update handles PUT /api/profile.
//
// @Summary      Update the site profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Fields to change"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  apierror.Response
// @Failure      401   {object}  apierror.Response
// @Router       /api/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}
	var req profileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.service.Update(c.Request().Context(), toProfileUpdate(req))
	if err != nil {
		return err
	}
	metrics.ContentWritesTotal.WithLabelValues("profile", "update").Inc()
	return c.JSON(http.StatusOK, profile)
}

// --- Posts ---

type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /api/posts.
//
// @Summary      List posts, newest first
// @Tags         posts
// @Produce      json
// @Success      200  {array}   domain.Post
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Create handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Post with base64 file"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  apierror.Response
// @Failure      401   {object}  apierror.Response
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}
	var req postRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), toCreatePostInput(req))
	if err != nil {
		return err
	}
	metrics.ContentWritesTotal.WithLabelValues("posts", "create").Inc()
	return c.JSON(http.StatusCreated, post)
}

// Delete handles DELETE /api/posts/:id.
//
// @Summary      Delete a post
// @Tags         posts
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  apierror.Response
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ContentWritesTotal.WithLabelValues("posts", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Post deleted"})
}

// --- Skills ---

type SkillHandler struct {
	service ports.SkillService
}

func NewSkillHandler(service ports.SkillService) *SkillHandler {
	return &SkillHandler{service: service}
}

// @Summary      List skills by category and name
// @Tags         skills
// @Produce      json
// @Success      200  {array}   domain.Skill
// @Router       /api/skills [get]
func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

// @Summary      Add a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      skillRequest  true  "Skill"
// @Success      201   {object}  domain.Skill
// @Failure      400   {object}  apierror.Response
// @Router       /api/skills [post]
func (h *SkillHandler) Create(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}
	var req skillRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	skill, err := h.service.Create(c.Request().Context(), toCreateSkillInput(req))
	if err != nil {
		return err
	}
	metrics.ContentWritesTotal.WithLabelValues("skills", "create").Inc()
	return c.JSON(http.StatusCreated, skill)
}

// @Summary      Delete a skill
// @Tags         skills
// @Security     BearerAuth
// @Param        id   path      string  true  "Skill ID"
// @Success      200  {object}  messageResponse
// @Router       /api/skills/{id} [delete]
func (h *SkillHandler) Delete(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ContentWritesTotal.WithLabelValues("skills", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Skill deleted"})
}

// --- Projects ---

type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// @Summary      List projects, newest first
// @Tags         projects
// @Produce      json
// @Success      200  {array}   domain.Project
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// @Summary      Add a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  apierror.Response
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}
	var req projectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.service.Create(c.Request().Context(), toProjectInput(req))
	if err != nil {
		return err
	}
	metrics.ContentWritesTotal.WithLabelValues("projects", "create").Inc()
	return c.JSON(http.StatusCreated, project)
}

// @Summary      Replace a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Project ID"
// @Param        body  body      projectRequest  true  "Project"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  apierror.Response
// @Failure      404   {object}  apierror.Response
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}
	var req projectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), toProjectInput(req))
	if err != nil {
		return err
	}
	metrics.ContentWritesTotal.WithLabelValues("projects", "update").Inc()
	return c.JSON(http.StatusOK, project)
}

// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  messageResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ContentWritesTotal.WithLabelValues("projects", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Project deleted"})
}
