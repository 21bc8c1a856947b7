package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateStoreCommandIsNotConstructed = errors.New(
	"UpdateStoreCommand must be created via NewUpdateStoreCommandFromPayload constructor",
)

// UpdateStoreCommand replaces the profile of the owner's primary store.
type UpdateStoreCommand struct { //nolint:recvcheck //using for validation
	ownerID string
	profile store.Profile

	guard guard.ConstructorGuard
}

// NewUpdateStoreCommandFromPayload normalizes a decoded store body. Name and
// region are required; status defaults to "open", delivery is available only
// when "available" is literally true and numbers that cannot be read are 0.
func NewUpdateStoreCommandFromPayload(ownerID string, payload any) (UpdateStoreCommand, error) {
	cmd := UpdateStoreCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setOwnerID(ownerID); err != nil {
		return UpdateStoreCommand{}, err
	}

	body, ok := payload.(map[string]any)
	if _, isArray := payload.([]any); isArray {
		body, ok = map[string]any{}, true
	}
	if !ok || body == nil {
		return UpdateStoreCommand{}, errs.NewAppError(errs.CodeStoreInvalidPayload,
			"스토어 요청 본문이 올바르지 않습니다.", "JSON 객체 형태로 전달해주세요.")
	}

	name := looseString(body["name"], "")
	region := looseString(body["region"], "")
	if strings.TrimSpace(name) == "" || strings.TrimSpace(region) == "" {
		return UpdateStoreCommand{}, errs.NewAppError(errs.CodeStoreInvalidPayload,
			"스토어 이름과 지역은 필수입니다.", "name, region 값을 확인해주세요.")
	}

	delivery := objectOrEmpty(body["delivery"])
	rating := objectOrEmpty(body["rating"])
	available, _ := delivery["available"].(bool)

	cmd.profile = store.Profile{
		Name:   name,
		Region: region,
		Status: looseString(body["status"], store.StatusOpen),
		Delivery: store.Delivery{
			Available: available,
			BaseFee:   finiteNumber(delivery["base_fee"]),
			Rules:     arrayOrEmpty(delivery["rules"]),
		},
		Rating: kernel.Rating{
			Score: finiteNumber(rating["score"]),
			Count: int(finiteNumber(rating["count"])),
		},
	}
	return cmd, nil
}

func (c UpdateStoreCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStoreCommandIsNotConstructed)
}

func (c UpdateStoreCommand) OwnerID() string {
	return c.ownerID
}

func (c UpdateStoreCommand) Profile() store.Profile {
	return c.profile
}

func (c *UpdateStoreCommand) setOwnerID(ownerID string) error {
	trimmed := strings.TrimSpace(ownerID)
	if trimmed == "" {
		return errUnauthenticated()
	}
	c.ownerID = trimmed
	return nil
}

func errUnauthenticated() *errs.AppError {
	return errs.NewAppError(errs.CodeUnauthorized, "로그인이 필요합니다.", "인증 토큰을 포함해주세요.")
}
