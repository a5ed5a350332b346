package echo

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	app "github.com/mhkarimi/prospect-import/internal/application/prospect"
)

type ProspectHandler struct {
	listProspects app.ListProspects
}

func NewProspectHandler(listProspects app.ListProspects) *ProspectHandler {
	return &ProspectHandler{listProspects: listProspects}
}

func (h *ProspectHandler) ListProspects(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	out, err := h.listProspects.Execute(c.Request().Context(), app.ListProspectsInput{
		OwnerID:  currentUserID(c),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to list prospects",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
