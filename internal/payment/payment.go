// Package payment holds bindings of the external payment collaborator. The
// order engine records whatever outcome the processor reports; it never
// computes one.
package payment

import (
	"context"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/repository"
)

// StaticProcessor reports a fixed outcome for every order. It stands in for a
// real gateway in local deployments and tests.
type StaticProcessor struct {
	Outcome string
}

func NewStaticProcessor(outcome string) repository.PaymentProcessor {
	return &StaticProcessor{Outcome: outcome}
}

func (p *StaticProcessor) Process(ctx context.Context, order *domain.Order) (string, error) {
	return p.Outcome, nil
}
