package kafka

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"agenin-transaction/internal/bridge"
	"agenin-transaction/internal/core/domain"
	"agenin-transaction/internal/core/ports"
	"agenin-transaction/pkg/apperror"
	"agenin-transaction/pkg/response"
)

// InquiryMessage is the wire format of an inquiry request arriving over
// the bus instead of HTTP.
type InquiryMessage struct {
	UserID                 uuid.UUID `json:"user_id"`
	ProductID              uuid.UUID `json:"product_id"`
	CustomerName           string    `json:"customer_name"`
	CustomerIdentityNumber string    `json:"customer_identity_number"`
	CustomerPhoneNumber    string    `json:"customer_phone_number"`
	CustomerEmail          string    `json:"customer_email"`
	CustomerAddress        string    `json:"customer_address"`
	UserAgent              string    `json:"user_agent"`
	IPAddress              string    `json:"ip_address"`
}

// InquiryConsumer serves the request side of the request/reply pattern:
// it consumes inquiry requests, runs them through the inquiry service,
// and publishes the envelope to the topic named in the request's reply
// header, echoing the correlation id.
type InquiryConsumer struct {
	reader    Reader
	transport ports.MessageTransport
	inquiries ports.InquiryService
	log       zerolog.Logger
}

func NewInquiryConsumer(reader Reader, transport ports.MessageTransport, inquiries ports.InquiryService, log zerolog.Logger) *InquiryConsumer {
	return &InquiryConsumer{reader: reader, transport: transport, inquiries: inquiries, log: log}
}

// Run consumes until ctx is cancelled.
func (c *InquiryConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}

		c.handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.log.Error().Err(err).Msg("commit inquiry offset failed")
		}
	}
}

func (c *InquiryConsumer) handle(ctx context.Context, msg kafka.Message) {
	replyTopic := headerValue(msg, bridge.ReplyTopicHeader)
	correlationID := headerValue(msg, bridge.CorrelationIDHeader)

	var body response.Body
	var req InquiryMessage
	if err := json.Unmarshal(msg.Value, &req); err != nil {
		body = response.Failure(apperror.ErrInvalidArgument("Malformed inquiry request"))
	} else {
		result, err := c.inquiries.Inquiry(ctx, req.UserID, req.ProductID, ports.InquiryRequest{
			CustomerName:           req.CustomerName,
			CustomerIdentityNumber: req.CustomerIdentityNumber,
			CustomerPhoneNumber:    req.CustomerPhoneNumber,
			CustomerEmail:          req.CustomerEmail,
			CustomerAddress:        req.CustomerAddress,
		}, domain.Actor{
			UserID:    req.UserID,
			UserAgent: req.UserAgent,
			IPAddress: req.IPAddress,
		})
		if err != nil {
			body = response.Failure(err)
		} else {
			body = response.Success(result, "Transaction created")
		}
	}

	if replyTopic == "" {
		// Fire-and-forget request; nothing to answer.
		c.log.Debug().Str("correlation_id", correlationID).Msg("inquiry request without reply topic")
		return
	}

	payload, err := json.Marshal(body)
	if err != nil {
		c.log.Error().Err(err).Msg("encode inquiry reply failed")
		return
	}

	headers := map[string]string{bridge.CorrelationIDHeader: correlationID}
	if err := c.transport.Publish(ctx, replyTopic, headers, payload); err != nil {
		c.log.Error().Err(err).Str("topic", replyTopic).Msg("publish inquiry reply failed")
	}
}

// Close releases the underlying reader.
func (c *InquiryConsumer) Close() error {
	return c.reader.Close()
}
