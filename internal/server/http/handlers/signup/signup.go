package signup

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
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
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

type Registerer interface {
	Register(ctx context.Context, name, email, password, phone, address string) (*users.User, string, error)
}

func New(log *slog.Logger, auth Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.signup.New"

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

		user, token, err := auth.Register(r.Context(), req.Name, req.Email, req.Password, req.Phone, req.Address)
		if err != nil {
			if errors.Is(err, common.ErrEmailExists) {
				log.Warn("email already registered")

				render.Status(r, http.StatusConflict)
				render.JSON(w, r, resp.Error("User already exists"))

				return
			}

			log.Error("failed to register user", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to register"))

			return
		}

		log.Info("user registered", slog.String("userID", user.ID))

		render.Status(r, http.StatusCreated)
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
