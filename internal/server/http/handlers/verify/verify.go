package verify

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	resp "github.com/lookdine/lookdine/internal/server/lib/api/response"
	"github.com/lookdine/lookdine/internal/server/lib/jwt"
	"github.com/lookdine/lookdine/internal/server/lib/logger/sl"
	"github.com/lookdine/lookdine/internal/server/users"
)

type userPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type data struct {
	User userPayload `json:"user"`
}

type Verifier interface {
	Verify(ctx context.Context, userID string) (*users.User, error)
}

func New(log *slog.Logger, auth Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.verify.New"

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

		user, err := auth.Verify(r.Context(), userID)
		if err != nil {
			log.Warn("token does not resolve to a user", sl.Err(err))

			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, resp.Error("Invalid token"))

			return
		}

		render.JSON(w, r, resp.OKWithData(data{
			User: userPayload{
				ID:      user.ID,
				Name:    user.Name,
				Email:   user.Email,
				Phone:   user.Phone,
				Address: user.Address,
			},
		}))
	}
}
