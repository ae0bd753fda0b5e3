package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrActionRequired = errors.New("action is required")
	ErrUnknownAction  = errors.New("invalid action")
	ErrMalformedBody  = errors.New("invalid request body")
)

type envelope struct {
	Action string `json:"action"`
}

func decodeAction(body []byte) (string, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", ErrMalformedBody
	}
	if env.Action == "" {
		return "", ErrActionRequired
	}
	return env.Action, nil
}

func decodeInto[T any](body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, ErrMalformedBody
	}
	return v, nil
}

// AuthCommand is one of SignupCommand, SigninCommand or LogoutCommand.
type AuthCommand interface{ authCommand() }

type SignupCommand struct{ Credentials }
type SigninCommand struct{ Credentials }
type LogoutCommand struct{}

func (SignupCommand) authCommand() {}
func (SigninCommand) authCommand() {}
func (LogoutCommand) authCommand() {}

// DecodeAuthCommand decodes a POST /api/auth body.
func DecodeAuthCommand(body []byte) (AuthCommand, error) {
	action, err := decodeAction(body)
	if err != nil {
		return nil, err
	}

	switch action {
	case "signup":
		c, err := decodeInto[Credentials](body)
		return SignupCommand{c}, err
	case "signin":
		c, err := decodeInto[Credentials](body)
		return SigninCommand{c}, err
	case "logout":
		return LogoutCommand{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}

// TokenCommand is one of CreateTokenCommand, RevokeTokenCommand or RevokeAllTokensCommand.
type TokenCommand interface{ tokenCommand() }

type CreateTokenCommand struct {
	Name           string     `json:"name"`
	Permission     Permission `json:"permission"`
	ExpirationDays *int       `json:"expirationDays"`
}

type RevokeTokenCommand struct {
	TokenID string `json:"tokenId"`
}

type RevokeAllTokensCommand struct{}

func (CreateTokenCommand) tokenCommand()     {}
func (RevokeTokenCommand) tokenCommand()     {}
func (RevokeAllTokensCommand) tokenCommand() {}

// DecodeTokenCommand decodes a POST /api/token body.
func DecodeTokenCommand(body []byte) (TokenCommand, error) {
	action, err := decodeAction(body)
	if err != nil {
		return nil, err
	}

	switch action {
	case "create":
		return decodeInto[CreateTokenCommand](body)
	case "revoke":
		return decodeInto[RevokeTokenCommand](body)
	case "revoke_all":
		return RevokeAllTokensCommand{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}

// WriteCommand is one of the journal mutations accepted by /api/write and /api/external.
type WriteCommand interface{ writeCommand() }

type SaveEntryCommand struct {
	Date            string   `json:"date"`
	DateKey         string   `json:"dateKey"`
	Mood            string   `json:"mood"`
	ActivityIDs     []string `json:"activityIds"`
	Activities      []string `json:"activities"` // older clients
	ExistingEntryID string   `json:"existingEntryId"`
}

// Input converts the command to the service payload.
func (c SaveEntryCommand) Input() EntryInput {
	ids := c.ActivityIDs
	if ids == nil {
		ids = c.Activities
	}
	return EntryInput{
		Date:            c.Date,
		DateKey:         c.DateKey,
		Mood:            c.Mood,
		ActivityIDs:     ids,
		ExistingEntryID: c.ExistingEntryID,
	}
}

type DeleteEntryCommand struct {
	EntryID string `json:"entryId"`
}

type CreateActivityCommand struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type UpdateActivityCommand struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type DeleteActivityCommand struct {
	ID         string `json:"id"`
	ActivityID string `json:"activityId"` // older clients
}

// TargetID returns the activity id, whichever field carried it.
func (c DeleteActivityCommand) TargetID() string {
	if c.ID != "" {
		return c.ID
	}
	return c.ActivityID
}

func (SaveEntryCommand) writeCommand()      {}
func (DeleteEntryCommand) writeCommand()    {}
func (CreateActivityCommand) writeCommand() {}
func (UpdateActivityCommand) writeCommand() {}
func (DeleteActivityCommand) writeCommand() {}

// DecodeWriteCommand decodes a journal mutation body.
func DecodeWriteCommand(body []byte) (WriteCommand, error) {
	action, err := decodeAction(body)
	if err != nil {
		return nil, err
	}

	switch action {
	case "save_entry":
		return decodeInto[SaveEntryCommand](body)
	case "delete_entry":
		return decodeInto[DeleteEntryCommand](body)
	case "create_activity":
		return decodeInto[CreateActivityCommand](body)
	case "update_activity":
		return decodeInto[UpdateActivityCommand](body)
	case "delete_activity":
		return decodeInto[DeleteActivityCommand](body)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}
