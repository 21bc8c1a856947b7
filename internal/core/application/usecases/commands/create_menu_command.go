package commands

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/guard"
)

var ErrCreateMenuCommandIsNotConstructed = errors.New(
	"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
)

// CreateMenuCommand adds a menu to a store of the owner. A blank store id
// selects the owner's primary store.
//
// Example:
//
//	payload, err := ParseMenuPayload(body)
//	if err != nil {
//	    return err // menu/invalid-payload
//	}
//	cmd, err := NewCreateMenuCommand(ownerID, c.Param("storeId"), payload)
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	ownerID string
	storeID string
	payload MenuPayload

	guard guard.ConstructorGuard
}

func NewCreateMenuCommand(ownerID, storeID string, payload MenuPayload) (CreateMenuCommand, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return CreateMenuCommand{}, errUnauthenticated()
	}
	return CreateMenuCommand{
		ownerID: ownerID,
		storeID: strings.TrimSpace(storeID),
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

func (c CreateMenuCommand) OwnerID() string {
	return c.ownerID
}

func (c CreateMenuCommand) StoreID() string {
	return c.storeID
}

func (c CreateMenuCommand) Payload() MenuPayload {
	return c.payload
}
