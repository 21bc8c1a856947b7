package commands

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/guard"
)

var ErrDeleteMenuCommandIsNotConstructed = errors.New(
	"DeleteMenuCommand must be created via NewDeleteMenuCommand constructor",
)

// DeleteMenuCommand removes a menu the owner owns. Orders keep their copy of
// the menu name and price.
type DeleteMenuCommand struct { //nolint:recvcheck //using for validation
	ownerID string
	menuID  string

	guard guard.ConstructorGuard
}

func NewDeleteMenuCommand(ownerID, menuID string) (DeleteMenuCommand, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return DeleteMenuCommand{}, errUnauthenticated()
	}
	return DeleteMenuCommand{
		ownerID: ownerID,
		menuID:  strings.TrimSpace(menuID),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteMenuCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuCommandIsNotConstructed)
}

func (c DeleteMenuCommand) OwnerID() string {
	return c.ownerID
}

func (c DeleteMenuCommand) MenuID() string {
	return c.menuID
}
