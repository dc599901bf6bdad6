package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymgate/internal/application/access/dto"
	"gymgate/internal/domain/access"
	"gymgate/internal/domain/client"
	"gymgate/internal/domain/membership"
	"gymgate/internal/shared/biztime"
	"gymgate/internal/shared/goroutine"
	"gymgate/internal/shared/logger"
)

const (
	reasonUnknownFaceToken       = "client with this face token not found"
	reasonNoEligibleSubscription = "no active subscription with available visits"
	reasonStorageUnavailable     = "access temporarily unavailable"
)

type EvaluateAccessCommand struct {
	FaceToken string
	DeviceID  string
	Metadata  map[string]string
}

// TransactionRunner runs a function inside one storage transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Alerter notifies operators about decisions that failed on storage.
type Alerter interface {
	Enabled() bool
	SendStorageFailureAlert(deviceID, faceToken string, cause error) error
}

// EvaluateAccessUseCase is the turnstile decision engine: resolve the face
// token to a client, pick an eligible subscription, run the admission
// policy, and commit the deduction plus exactly one audit entry in a single
// transaction. Concurrent scans racing on one subscription are serialized
// by the optimistic lock; a conflict re-runs the whole decision.
//
// Storage failure fails closed: the gate stays shut, the error is logged,
// and operators get an alert mail so nobody is left stuck at the door.
type EvaluateAccessUseCase struct {
	clientRepo clientResolver
	subRepo    membership.SubscriptionRepository
	planRepo   membership.PlanRepository
	logRepo    access.Repository
	tx         TransactionRunner
	alerts     Alerter
	logger     logger.Interface
	maxRetries int
}

type clientResolver interface {
	GetByFaceToken(ctx context.Context, faceToken string) (*client.Client, error)
}

func NewEvaluateAccessUseCase(
	clientRepo client.Repository,
	subRepo membership.SubscriptionRepository,
	planRepo membership.PlanRepository,
	logRepo access.Repository,
	tx TransactionRunner,
	alerts Alerter,
	maxRetries int,
	logger logger.Interface,
) *EvaluateAccessUseCase {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &EvaluateAccessUseCase{
		clientRepo: clientRepo,
		subRepo:    subRepo,
		planRepo:   planRepo,
		logRepo:    logRepo,
		tx:         tx,
		alerts:     alerts,
		logger:     logger,
		maxRetries: maxRetries,
	}
}

func (uc *EvaluateAccessUseCase) Execute(ctx context.Context, cmd EvaluateAccessCommand) (*dto.DecisionDTO, error) {
	var decision access.Decision
	var err error

	for attempt := 0; attempt < uc.maxRetries; attempt++ {
		decision, err = uc.attempt(ctx, cmd)
		if err == nil {
			break
		}
		if !errors.Is(err, membership.ErrVersionConflict) {
			break
		}
		uc.logger.Warnw("concurrent access attempt conflict, re-evaluating",
			"face_token", cmd.FaceToken,
			"device_id", cmd.DeviceID,
			"attempt", attempt+1,
		)
	}

	if err != nil {
		return uc.failClosed(ctx, cmd, err), nil
	}

	uc.logger.Infow("access decision",
		"granted", decision.Granted,
		"deducted", decision.Deducted,
		"reason", decision.Reason,
		"device_id", cmd.DeviceID,
	)
	return dto.ToDecisionDTO(decision), nil
}

// attempt runs one full decision inside a transaction. The audit entry is
// appended in the same transaction as the deduction, so an aborted retry
// leaves no trace and the surviving attempt records exactly one entry.
func (uc *EvaluateAccessUseCase) attempt(ctx context.Context, cmd EvaluateAccessCommand) (access.Decision, error) {
	var decision access.Decision

	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		now := biztime.NowUTC()

		person, err := uc.clientRepo.GetByFaceToken(txCtx, cmd.FaceToken)
		if err != nil {
			return fmt.Errorf("failed to resolve face token: %w", err)
		}
		if person == nil {
			decision = access.Denied(reasonUnknownFaceToken)
			return uc.appendLog(txCtx, cmd, decision, nil, nil)
		}

		decision.Client = &access.ClientSnapshot{
			SID:       person.SID(),
			FirstName: person.FirstName(),
			LastName:  person.LastName(),
			PhotoRef:  person.PhotoRef(),
		}

		subs, err := uc.subRepo.ListByClientID(txCtx, person.ID())
		if err != nil {
			return fmt.Errorf("failed to list subscriptions: %w", err)
		}

		sub := selectEligible(subs, now)
		if sub == nil {
			decision.Granted = false
			decision.Reason = reasonNoEligibleSubscription
			return uc.appendLog(txCtx, cmd, decision, person, nil)
		}

		eval := sub.EvaluateAccess(now)
		decision.Granted = eval.Granted
		decision.Deducted = eval.Deduct
		decision.Reason = eval.Reason

		if eval.Granted {
			expectedVersion := sub.Version()
			if err := sub.ApplyAccess(eval, now); err != nil {
				return err
			}
			if err := uc.subRepo.UpdateWithVersion(txCtx, sub, expectedVersion); err != nil {
				return err
			}
		}

		planName := ""
		if plan, err := uc.planRepo.GetByID(txCtx, sub.PlanID()); err == nil && plan != nil {
			planName = plan.Name()
		}
		decision.Subscription = &access.SubscriptionSnapshot{
			SID:             sub.SID(),
			PlanName:        planName,
			PaidVisits:      sub.PaidVisits(),
			UsedVisits:      sub.UsedVisits(),
			RemainingVisits: sub.RemainingVisits(),
		}

		return uc.appendLog(txCtx, cmd, decision, person, sub)
	})

	return decision, err
}

func (uc *EvaluateAccessUseCase) appendLog(
	ctx context.Context,
	cmd EvaluateAccessCommand,
	decision access.Decision,
	person *client.Client,
	sub *membership.Subscription,
) error {
	var clientID, subID *uint
	if person != nil {
		cid := person.ID()
		clientID = &cid
	}
	if sub != nil {
		sid := sub.ID()
		subID = &sid
	}

	entry, err := access.NewLogEntry(clientID, subID, decision.Granted, decision.Deducted, decision.Reason, cmd.DeviceID, cmd.FaceToken)
	if err != nil {
		return fmt.Errorf("failed to build audit entry: %w", err)
	}
	if len(cmd.Metadata) > 0 {
		entry.SetMetadata(cmd.Metadata)
	}

	if err := uc.logRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// failClosed denies the attempt after a storage failure, records what it
// can, and fires the operator alert off the request path.
func (uc *EvaluateAccessUseCase) failClosed(ctx context.Context, cmd EvaluateAccessCommand, cause error) *dto.DecisionDTO {
	uc.logger.Errorw("access decision failed, gate held closed",
		"face_token", cmd.FaceToken,
		"device_id", cmd.DeviceID,
		"error", cause,
	)

	decision := access.Denied(reasonStorageUnavailable)

	// Best effort: the same outage that broke the decision may break this
	// append too.
	if err := uc.appendLog(ctx, cmd, decision, nil, nil); err != nil {
		uc.logger.Errorw("failed to record denial after storage failure", "error", err)
	}

	if uc.alerts != nil && uc.alerts.Enabled() {
		deviceID, faceToken := cmd.DeviceID, cmd.FaceToken
		goroutine.SafeGo(uc.logger, "storage-failure-alert", func() {
			if err := uc.alerts.SendStorageFailureAlert(deviceID, faceToken, cause); err != nil {
				uc.logger.Errorw("failed to deliver operator alert", "error", err)
			}
		})
	}

	return dto.ToDecisionDTO(decision)
}

// selectEligible picks the subscription the attempt will charge. The input
// comes back from storage in canonical order (most remaining visits first,
// then earliest purchase), so the first eligible one wins.
func selectEligible(subs []*membership.Subscription, now time.Time) *membership.Subscription {
	for _, sub := range subs {
		if sub.Eligible(now) {
			return sub
		}
	}
	return nil
}
