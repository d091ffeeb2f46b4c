package middleware

import (
	"fmt"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker/internal/constants"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/viewmodel"
)

// ViewState is the list filter and sort order the client last asked for
type ViewState struct {
	Filter viewmodel.Filter
	SortBy viewmodel.SortBy
}

// RequireViewState resolves filter and sortBy from the query string, falling
// back to the values remembered in the session. Explicit values are saved.
func RequireViewState() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		rawFilter, filterSet := c.GetQuery("filter")
		if !filterSet {
			rawFilter, _ = session.Get(constants.SessionKeyFilter).(string)
		}
		rawSortBy, sortSet := c.GetQuery("sortBy")
		if !sortSet {
			rawSortBy, _ = session.Get(constants.SessionKeySortBy).(string)
		}

		state := ViewState{
			Filter: viewmodel.ParseFilter(rawFilter),
			SortBy: viewmodel.ParseSortBy(rawSortBy),
		}

		if !state.Filter.Valid() {
			apierrors.BadRequest(c, fmt.Sprintf("Invalid filter %q", state.Filter))
			c.Abort()
			return
		}
		if !state.SortBy.Valid() {
			apierrors.BadRequest(c, fmt.Sprintf("Invalid sortBy %q", state.SortBy))
			c.Abort()
			return
		}

		if filterSet || sortSet {
			session.Set(constants.SessionKeyFilter, string(state.Filter))
			session.Set(constants.SessionKeySortBy, string(state.SortBy))
			if err := session.Save(); err != nil {
				// The list still renders; only the remembered view is lost
				log.Printf("Failed to save view state: %v", err)
			}
		}

		c.Set(constants.ContextKeyViewState, state)
		c.Next()
	}
}

// GetViewState retrieves the resolved view state from context
func GetViewState(c *gin.Context) (ViewState, bool) {
	value, exists := c.Get(constants.ContextKeyViewState)
	if !exists {
		return ViewState{}, false
	}

	state, ok := value.(ViewState)
	return state, ok
}
