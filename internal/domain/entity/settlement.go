package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gateway transaction statuses that move an order forward. Any other value the
// gateway sends is accepted and ignored.
const (
	TransactionStatusCapture    = "capture"
	TransactionStatusSettlement = "settlement"
)

// Gateway fraud assessments accepted for a captured transaction.
const (
	FraudStatusAccept    = "accept"
	FraudStatusChallenge = "challenge"
)

// SettlementNotification is an authenticated payment outcome reported by the
// gateway. Status values are opaque gateway vocabulary.
type SettlementNotification struct {
	OrderKey          string
	TransactionStatus string
	FraudStatus       string
}

// SettlementTransition is the absolute state an order/invoice pair is moved to.
type SettlementTransition struct {
	PaymentStatus PaymentStatus
	OrderStatus   OrderStatus
}

// Transition maps the notification onto the settlement state machine. The
// second result is false when the notification carries no state change.
func (n SettlementNotification) Transition() (SettlementTransition, bool) {
	switch n.TransactionStatus {
	case TransactionStatusCapture:
		if n.FraudStatus == FraudStatusAccept || n.FraudStatus == FraudStatusChallenge {
			return SettlementTransition{PaymentStatus: PaymentStatusPaid, OrderStatus: OrderStatusProcessing}, true
		}
	case TransactionStatusSettlement:
		return SettlementTransition{PaymentStatus: PaymentStatusPaid, OrderStatus: OrderStatusDelivered}, true
	}

	return SettlementTransition{}, false
}

// SettlementOutcome classifies what reconciliation did with a notification.
type SettlementOutcome string

const (
	SettlementOutcomeApplied  SettlementOutcome = "applied"
	SettlementOutcomeIgnored  SettlementOutcome = "ignored"
	SettlementOutcomeRejected SettlementOutcome = "rejected"
)

// String returns the string representation of the SettlementOutcome.
func (o SettlementOutcome) String() string {
	return string(o)
}

// IsValid checks if the SettlementOutcome is a valid value.
func (o SettlementOutcome) IsValid() bool {
	switch o {
	case SettlementOutcomeApplied, SettlementOutcomeIgnored, SettlementOutcomeRejected:
		return true
	default:
		return false
	}
}

// SettlementRecord is the audit entry kept for every notification received,
// so rejected ones can be followed up by an operator.
type SettlementRecord struct {
	ID                uuid.UUID
	OrderKey          string
	TransactionStatus string
	FraudStatus       string
	Outcome           SettlementOutcome
	Reason            string
	ReceivedAt        time.Time
}
