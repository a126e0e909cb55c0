package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/lookdine/lookdine/internal/common"
	resp "github.com/lookdine/lookdine/internal/server/lib/api/response"
	"github.com/lookdine/lookdine/internal/server/lib/logger/sl"
	"github.com/lookdine/lookdine/internal/server/users"
)

type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type data struct {
	User  userPayload `json:"user"`
	Token string      `json:"token"`
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*users.User, string, error)
}

func New(log *slog.Logger, auth Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.login.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Failed to decode request"))

			return
		}

		if err := validator.New().Struct(req); err != nil {
			validateErr := err.(validator.ValidationErrors)

			log.Error("invalid request", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.ValidationError(validateErr))

			return
		}

		user, token, err := auth.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, common.ErrInvalidCredentials) {
				log.Warn("invalid credentials")

				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, resp.Error("Invalid credentials"))

				return
			}

			log.Error("failed to login user", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to login"))

			return
		}

		log.Info("user logged in", slog.String("userID", user.ID))

		render.JSON(w, r, resp.OKWithData(data{
			User: userPayload{
				ID:      user.ID,
				Name:    user.Name,
				Email:   user.Email,
				Phone:   user.Phone,
				Address: user.Address,
			},
			Token: token,
		}))
	}
}
