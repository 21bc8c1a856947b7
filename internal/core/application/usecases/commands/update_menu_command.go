package commands

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/guard"
)

var ErrUpdateMenuCommandIsNotConstructed = errors.New(
	"UpdateMenuCommand must be created via NewUpdateMenuCommand constructor",
)

// UpdateMenuCommand replaces the editable fields of a menu the owner owns.
type UpdateMenuCommand struct { //nolint:recvcheck //using for validation
	ownerID string
	menuID  string
	payload MenuPayload

	guard guard.ConstructorGuard
}

func NewUpdateMenuCommand(ownerID, menuID string, payload MenuPayload) (UpdateMenuCommand, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return UpdateMenuCommand{}, errUnauthenticated()
	}
	return UpdateMenuCommand{
		ownerID: ownerID,
		menuID:  strings.TrimSpace(menuID),
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMenuCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuCommandIsNotConstructed)
}

func (c UpdateMenuCommand) OwnerID() string {
	return c.ownerID
}

func (c UpdateMenuCommand) MenuID() string {
	return c.menuID
}

func (c UpdateMenuCommand) Payload() MenuPayload {
	return c.payload
}
