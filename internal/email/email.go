package email

import (
	"context"
	"fmt"

	"github.com/nmoreaux/skylux/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.PurchaseEvent) error {
	fmt.Printf("send email to %s about %s: %.2f t CO2, offset cost %d %s\n", event.Email, event.Type, event.EmissionTons, event.CostCents, event.Currency)
	return nil
}
