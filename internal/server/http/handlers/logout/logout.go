package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	resp "github.com/lookdine/lookdine/internal/server/lib/api/response"
	"github.com/lookdine/lookdine/internal/server/lib/jwt"
)

// New acknowledges a logout. Access tokens are stateless so there is nothing
// to revoke server-side; the client drops its stored token.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.logout.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		userID, _ := r.Context().Value(jwt.UserIDKey).(string)
		log.Info("user logged out", slog.String("userID", userID))

		render.JSON(w, r, resp.OK())
	}
}
