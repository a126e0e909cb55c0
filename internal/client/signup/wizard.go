// Package signup implements the three-step registration wizard: personal
// info → contact → security. The in-progress form is persisted as a draft so
// an interrupted signup can be resumed; any uploaded avatar payload is
// deliberately excluded from the draft.
package signup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lookdine/lookdine/internal/client/models"
	"github.com/lookdine/lookdine/internal/client/store"
	"github.com/lookdine/lookdine/internal/common"
)

// Registrar receives the finished form. The session implements it, so a
// completed wizard leaves the new account signed in.
type Registrar interface {
	Signup(ctx context.Context, data models.SignupData) error
}

// Step indices. The flow is strictly linear.
const (
	StepPersonal = 1
	StepContact  = 2
	StepSecurity = 3

	TotalSteps = 3
)

const minPasswordLen = 6

var ErrNotLastStep = errors.New("signup not at final step")

// Form is the draft payload persisted under the signup_form_data key.
type Form struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
	Confirm  string `json:"confirmPassword"`
}

// Wizard drives the signup flow. Not safe for concurrent use.
type Wizard struct {
	store store.Store
	step  int
	form  Form
}

// New creates a wizard, resuming from a persisted draft when one exists.
// A corrupt draft is dropped and its key removed.
func New(ctx context.Context, st store.Store) *Wizard {
	w := &Wizard{store: st, step: StepPersonal}

	raw, err := st.Get(ctx, store.KeySignupDraft)
	if err != nil || raw == nil {
		return w
	}
	if err := json.Unmarshal(raw, &w.form); err != nil {
		_ = st.Delete(ctx, store.KeySignupDraft)
		w.form = Form{}
	}
	return w
}

func (w *Wizard) Step() int  { return w.step }
func (w *Wizard) Form() Form { return w.form }

// SetField updates the draft and persists it.
func (w *Wizard) SetField(ctx context.Context, apply func(*Form)) error {
	apply(&w.form)
	raw, err := json.Marshal(w.form)
	if err != nil {
		return fmt.Errorf("failed to encode signup draft: %w", err)
	}
	return w.store.Set(ctx, store.KeySignupDraft, raw)
}

// validateStep checks the fields the given step collects.
func (w *Wizard) validateStep(step int) error {
	switch step {
	case StepPersonal:
		if strings.TrimSpace(w.form.Name) == "" {
			return fmt.Errorf("%w: name is required", common.ErrValidation)
		}
	case StepContact:
		email := strings.TrimSpace(w.form.Email)
		if email == "" {
			return fmt.Errorf("%w: email is required", common.ErrValidation)
		}
		if !strings.Contains(email, "@") {
			return fmt.Errorf("%w: email is malformed", common.ErrValidation)
		}
	case StepSecurity:
		if w.form.Password == "" {
			return fmt.Errorf("%w: password is required", common.ErrValidation)
		}
		if len(w.form.Password) < minPasswordLen {
			return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLen)
		}
		if w.form.Password != w.form.Confirm {
			return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
		}
	}
	return nil
}

// Next validates the current step and advances. On the last step use
// Complete instead.
func (w *Wizard) Next() error {
	if err := w.validateStep(w.step); err != nil {
		return err
	}
	if w.step < TotalSteps {
		w.step++
	}
	return nil
}

// Back returns to the previous step without validation.
func (w *Wizard) Back() {
	if w.step > StepPersonal {
		w.step--
	}
}

// Complete validates the final step, submits the registration through the
// registrar and removes the draft on success.
func (w *Wizard) Complete(ctx context.Context, reg Registrar) error {
	if w.step != StepSecurity {
		return ErrNotLastStep
	}
	if err := w.validateStep(StepSecurity); err != nil {
		return err
	}

	err := reg.Signup(ctx, models.SignupData{
		Name:     strings.TrimSpace(w.form.Name),
		Email:    strings.TrimSpace(w.form.Email),
		Password: w.form.Password,
		Phone:    strings.TrimSpace(w.form.Phone),
		Address:  strings.TrimSpace(w.form.Address),
	})
	if err != nil {
		return err
	}

	return w.store.Delete(ctx, store.KeySignupDraft)
}
