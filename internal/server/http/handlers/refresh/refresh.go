package refresh

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	resp "github.com/lookdine/lookdine/internal/server/lib/api/response"
	"github.com/lookdine/lookdine/internal/server/lib/jwt"
	"github.com/lookdine/lookdine/internal/server/lib/logger/sl"
)

type data struct {
	Token string `json:"token"`
}

type Refresher interface {
	Refresh(ctx context.Context, userID string) (string, error)
}

func New(log *slog.Logger, auth Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.refresh.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		userID, ok := r.Context().Value(jwt.UserIDKey).(string)
		if !ok || userID == "" {
			log.Error("no userID in context")

			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, resp.Error("Unauthorized"))

			return
		}

		token, err := auth.Refresh(r.Context(), userID)
		if err != nil {
			log.Error("failed to refresh token", sl.Err(err))

			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, resp.Error("Failed to refresh token"))

			return
		}

		log.Info("token refreshed", slog.String("userID", userID))

		render.JSON(w, r, resp.OKWithData(data{Token: token}))
	}
}
