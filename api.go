package folio

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
)

type textPatch struct {
	Value string `json:"value"`
}

type editModeBody struct {
	Enabled bool `json:"enabled"`
}

// listRoutes binds one list collection to the API.
type listRoutes[T any] struct {
	all    func() []T
	save   func(context.Context, []T) error
	add    func(context.Context, T) (T, error)
	remove func(context.Context, int64) error

	saveFailed string
	added      string
	addFailed  string
}

func (a *App) registerAPI(g *echo.Group) {
	g.GET("/content/", a.handleGetContent)
	g.PUT("/content/", a.handlePutContent, a.requireEditMode)
	g.PATCH("/content/:lang/:field/", a.handlePatchContent, a.requireEditMode)

	registerList(a, g, "/skills/", listRoutes[content.Skill]{
		all:        a.Content.Skills,
		save:       a.Content.SaveSkills,
		add:        a.Content.AddSkill,
		remove:     a.Content.RemoveSkill,
		saveFailed: MsgSkillsSaveFailed,
		added:      MsgSkillAdded,
		addFailed:  MsgSkillAddFailed,
	})
	registerList(a, g, "/experiences/", listRoutes[content.Experience]{
		all:        a.Content.Experiences,
		save:       a.Content.SaveExperiences,
		add:        a.Content.AddExperience,
		remove:     a.Content.RemoveExperience,
		saveFailed: MsgExpSaveFailed,
		added:      MsgExpAdded,
		addFailed:  MsgExpAddFailed,
	})
	registerList(a, g, "/blog-posts/", listRoutes[content.BlogPost]{
		all:        a.Content.BlogPosts,
		save:       a.Content.SaveBlogPosts,
		add:        a.Content.AddBlogPost,
		remove:     a.Content.RemoveBlogPost,
		saveFailed: MsgPostsSaveFailed,
		added:      MsgPostPublished,
		addFailed:  MsgPostPublishFailed,
	})

	g.POST("/profile-image/", a.handleImageUpload, a.requireEditMode)

	g.GET("/edit-mode/", a.handleGetEditMode)
	g.PUT("/edit-mode/", a.handlePutEditMode)
}

func registerList[T any](a *App, g *echo.Group, path string, r listRoutes[T]) {
	g.GET(path, func(c echo.Context) error {
		return c.JSON(http.StatusOK, r.all())
	})
	g.PUT(path, func(c echo.Context) error {
		var items []T
		if err := c.Bind(&items); err != nil {
			return a.jsonError(c, http.StatusBadRequest, MsgInvalidInput)
		}
		if items == nil {
			items = []T{}
		}
		if err := r.save(c.Request().Context(), items); err != nil {
			return a.storeError(c, err, r.saveFailed)
		}
		return c.JSON(http.StatusOK, r.all())
	}, a.requireEditMode)
	g.POST(path, func(c echo.Context) error {
		var item T
		if err := c.Bind(&item); err != nil {
			return a.jsonError(c, http.StatusBadRequest, MsgInvalidInput)
		}
		saved, err := r.add(c.Request().Context(), item)
		if err != nil {
			return a.storeError(c, err, r.addFailed)
		}
		return a.jsonNotice(c, http.StatusCreated, r.added, saved)
	}, a.requireEditMode)
	g.DELETE(path+":id/", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return a.jsonError(c, http.StatusBadRequest, MsgInvalidInput)
		}
		if err := r.remove(c.Request().Context(), id); err != nil {
			return a.storeError(c, err, r.saveFailed)
		}
		return c.NoContent(http.StatusNoContent)
	}, a.requireEditMode)
}

func (a *App) handleGetContent(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Content.Content())
}

func (a *App) handlePutContent(c echo.Context) error {
	var sc content.SiteContent
	if err := c.Bind(&sc); err != nil {
		return a.jsonError(c, http.StatusBadRequest, MsgInvalidInput)
	}
	if err := a.Content.SaveContent(c.Request().Context(), sc); err != nil {
		return a.storeError(c, err, MsgContentSaveFailed)
	}
	return c.JSON(http.StatusOK, a.Content.Content())
}

func (a *App) handlePatchContent(c echo.Context) error {
	var body textPatch
	if err := c.Bind(&body); err != nil {
		return a.jsonError(c, http.StatusBadRequest, MsgInvalidInput)
	}
	err := a.Content.UpdateText(c.Request().Context(), c.Param("lang"), c.Param("field"), body.Value)
	if err != nil {
		return a.storeError(c, err, MsgContentSaveFailed)
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *App) handleGetEditMode(c echo.Context) error {
	return c.JSON(http.StatusOK, editModeBody{Enabled: a.Content.EditMode()})
}

func (a *App) handlePutEditMode(c echo.Context) error {
	var body editModeBody
	if err := c.Bind(&body); err != nil {
		return a.jsonError(c, http.StatusBadRequest, MsgInvalidInput)
	}
	if err := a.Content.SetEditMode(c.Request().Context(), body.Enabled); err != nil {
		return a.storeError(c, err, MsgContentSaveFailed)
	}
	key := MsgEditModeOff
	if body.Enabled {
		key = MsgEditModeOn
	}
	return a.jsonNotice(c, http.StatusOK, key, editModeBody{Enabled: body.Enabled})
}

// storeError maps a content store error to a JSON response. Write failures
// carry the notification for failKey.
func (a *App) storeError(c echo.Context, err error, failKey string) error {
	switch {
	case errors.Is(err, content.ErrInvalid):
		return a.jsonError(c, http.StatusBadRequest, MsgInvalidInput)
	case errors.Is(err, content.ErrNotFound):
		return a.jsonError(c, http.StatusNotFound, MsgNotFound)
	}
	return a.jsonError(c, http.StatusInternalServerError, failKey)
}
