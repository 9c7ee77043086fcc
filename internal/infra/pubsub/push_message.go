package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Message attribute keys attached to every settlement event.
const (
	AttrRequestID = "request_id"
	AttrOrderKey  = "order_key"
)

const localSubscription = "projects/local/subscriptions/settlement-sub"

// PushMessage mirrors the envelope Google Pub/Sub posts to push subscribers.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes builds the attributes used for filtering and tracing.
func eventAttributes(event *service.SettlementEvent) map[string]string {
	attributes := map[string]string{
		AttrOrderKey: event.OrderKey,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}

// NewPushMessage wraps a settlement event in a push envelope, as the local publisher delivers it.
func NewPushMessage(event *service.SettlementEvent) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// SettlementEvent decodes the event carried by the envelope.
func (m *PushMessage) SettlementEvent() (*service.SettlementEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.SettlementEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse settlement event")
	}
	if event.OrderKey == "" {
		return nil, errors.New("settlement event has no order key")
	}

	return &event, nil
}
