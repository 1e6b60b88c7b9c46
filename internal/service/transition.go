package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/mapper"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"github.com/straye-as/fieldservice-api/internal/statusflow"
)

// TransitionAction names a move along a status flow
type TransitionAction string

const (
	ActionAdvance TransitionAction = "advance"
	ActionRetreat TransitionAction = "retreat"
	ActionJump    TransitionAction = "jump"
)

// TransitionRequest is a requested status move. Target is only used by jumps.
type TransitionRequest struct {
	Action TransitionAction
	Target string
}

func Advance() TransitionRequest { return TransitionRequest{Action: ActionAdvance} }
func Retreat() TransitionRequest { return TransitionRequest{Action: ActionRetreat} }
func JumpTo(status string) TransitionRequest {
	return TransitionRequest{Action: ActionJump, Target: status}
}

// lockForOrder disables flow while the parent service order is billed
func lockForOrder[S ~string](ctx context.Context, repo *repository.ServiceOrderRepository, orderID uuid.UUID, flow *statusflow.Flow[S]) error {
	order, err := getServiceOrder(ctx, repo, orderID)
	if err != nil {
		return err
	}
	flow.SetDisabled(order.Status.LocksWork())
	return nil
}

// applyTransition runs req against flow. A rejection is reported through
// rejected (with the reason) rather than as an error; err is only set for
// requests that are malformed.
func applyTransition[S ~string](flow *statusflow.Flow[S], req TransitionRequest) (t statusflow.Transition[S], rejected error, err error) {
	switch req.Action {
	case ActionAdvance:
		t, rejected = flow.Advance()
	case ActionRetreat:
		t, rejected = flow.Retreat()
	case ActionJump:
		if req.Target == "" {
			return t, nil, fmt.Errorf("%w: jump needs a target status", ErrInvalidInput)
		}
		t, rejected = flow.JumpTo(S(req.Target))
	default:
		return t, nil, fmt.Errorf("%w: unknown transition %q", ErrInvalidInput, req.Action)
	}
	if rejected != nil && !errors.Is(rejected, statusflow.ErrRejected) {
		return t, nil, rejected
	}
	return t, rejected, nil
}

// rejectedResult is the no-op answer for a transition outside the window
func rejectedResult[S ~string](steps []S, current S, reason error) *domain.TransitionResultDTO {
	dto := mapper.ToTransitionResultDTO(steps, current, current, false, reason.Error())
	return &dto
}

func appliedResult[S ~string](steps []S, t statusflow.Transition[S]) *domain.TransitionResultDTO {
	dto := mapper.ToTransitionResultDTO(steps, t.From, t.To, t.Changed, "")
	return &dto
}
