package http

import (
	"net/http"

	"github.com/cmlabs-hris/zenith-hr/internal/handler/http/response"
	"github.com/cmlabs-hris/zenith-hr/internal/store"
)

// writeMutationError reports a failed store mutation. Skipped mutations
// (unknown id, already checked in, ...) answer 200 with the reason in the data
// unless strict is set, in which case they map to 404/409 like any error.
func writeMutationError(w http.ResponseWriter, strict bool, err error) {
	if !strict && store.IsNoOp(err) {
		response.NoChanges(w, err.Error())
		return
	}
	response.HandleError(w, err)
}
