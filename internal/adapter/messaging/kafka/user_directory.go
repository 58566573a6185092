package kafka

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"agenin-transaction/internal/core/domain"
	"agenin-transaction/internal/core/ports"
	"agenin-transaction/pkg/apperror"
)

type userLookupRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

// userProfile is the wire shape of a user record returned by the user
// service. The pin hash crosses service boundaries here, unlike the
// HTTP-facing domain type.
type userProfile struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	RoleID   uuid.UUID `json:"role_id"`
	RoleName string    `json:"role_name"`
	PINHash  string    `json:"pin_hash"`
}

type userLookupReply struct {
	Code    int          `json:"code"`
	Results *userProfile `json:"results"`
	Message string       `json:"message"`
}

// RemoteUserDirectory resolves agent profiles from the user service
// with a synchronous bridge call. Used when this service does not own
// the users table.
type RemoteUserDirectory struct {
	bridge       ports.MessageBridge
	requestTopic string
	replyTopic   string
	log          zerolog.Logger
}

func NewRemoteUserDirectory(b ports.MessageBridge, requestTopic string, replyTopic string, log zerolog.Logger) *RemoteUserDirectory {
	return &RemoteUserDirectory{bridge: b, requestTopic: requestTopic, replyTopic: replyTopic, log: log}
}

// GetByID blocks until the user service answers or the bridge times
// out. Timeout and transport failures surface as-is from the bridge.
func (d *RemoteUserDirectory) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	payload, err := json.Marshal(userLookupRequest{UserID: userID})
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	raw, err := d.bridge.SendSync(ctx, d.requestTopic, d.replyTopic, payload)
	if err != nil {
		return nil, err
	}

	var reply userLookupReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		d.log.Error().Err(err).Str("user_id", userID.String()).Msg("malformed user lookup reply")
		return nil, apperror.InternalError(err)
	}
	if reply.Code != http.StatusOK || reply.Results == nil {
		return nil, apperror.ErrNotFound("User")
	}

	return &domain.User{
		ID:       reply.Results.ID,
		FullName: reply.Results.FullName,
		RoleID:   reply.Results.RoleID,
		RoleName: reply.Results.RoleName,
		PINHash:  reply.Results.PINHash,
	}, nil
}
