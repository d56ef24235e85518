package calendar

import (
	"context"
	"net/http"
	"time"

	"github.com/eventdesk/event-manager/internal/errdef"
	"github.com/eventdesk/event-manager/internal/handler"
	"github.com/eventdesk/event-manager/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(eventService eventService) Handler {
	return Handler{
		eventService: eventService,
		now:          time.Now,
	}
}

type Handler struct {
	eventService eventService
	now          func() time.Time
}

type eventService interface {
	FindByUser(ctx context.Context, userId uint) ([]model.Event, error)
}

// Month grid
func (h Handler) Month(c *gin.Context) {
	// swagger:route GET /calendar/{year}/{month} monthGrid
	//
	// Month grid
	//
	// Lay out the given month as a six by seven grid of cells with the current
	// user's events marked on their days. The response carries the previous
	// and next month so a client can page without date arithmetic.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: Grid
	//   400: Error
	//   401: Error
	//   415: Error
	year, ok := handler.GetPathParameter(c, "year")
	if !ok {
		return
	}

	month, ok := handler.GetPathParameter(c, "month")
	if !ok {
		return
	}

	if month < 1 || month > 12 {
		badRequest := errdef.NewBadRequest("month %d out of range, expected 1 to 12", month)
		_ = c.AbortWithError(http.StatusBadRequest, badRequest)
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	events, err := h.eventService.FindByUser(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	grid := MonthGrid(int(year), time.Month(month), model.DateOf(h.now()))

	marks := Aggregate(events, user.ID)
	for i, cell := range grid.Cells {
		if cell.Date == nil {
			continue
		}
		if dayMarks, ok := marks[*cell.Date]; ok {
			grid.Cells[i].Marks = dayMarks
		}
	}

	c.JSON(http.StatusOK, grid)
}
