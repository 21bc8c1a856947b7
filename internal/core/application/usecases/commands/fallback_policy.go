package commands

import (
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// FallbackPolicy decides what an orchestration returns when any step fails.
//
// With the mock policy every failure other than an invalid payload is
// answered with a canned summary, so the auto-order demo always succeeds.
// The strict policy surfaces the failure instead.
type FallbackPolicy struct {
	enabled  bool
	response services.OrderSummary
}

// MockFallbackPolicy answers failures with MockOrderSummary.
func MockFallbackPolicy() FallbackPolicy {
	return FallbackPolicy{enabled: true, response: MockOrderSummary()}
}

// StrictFallbackPolicy returns every failure to the caller.
func StrictFallbackPolicy() FallbackPolicy {
	return FallbackPolicy{}
}

// Enabled reports whether failures are replaced by the canned response.
func (p FallbackPolicy) Enabled() bool {
	return p.enabled
}

// Recover turns a failed orchestration into its outcome.
func (p FallbackPolicy) Recover(err error) (OrchestrateResult, error) {
	if !p.enabled || errs.HasCode(err, errs.CodeOrchestrateInvalidPayload) {
		return OrchestrateResult{}, err
	}
	return OrchestrateResult{Summary: p.response, Fallback: true}, nil
}

// MockOrderSummary is the canned summary of the mock fallback.
func MockOrderSummary() services.OrderSummary {
	return services.OrderSummary{
		Store:      "호건치킨 강남점",
		Menu:       "후라이드 치킨",
		PriceTotal: 18000,
		ETAMinutes: 30,
		Sentences: []string{
			"호건치킨 강남점에서 후라이드 치킨를 자동으로 선택해 주문했습니다.",
			"총 결제 금액은 ₩18,000이며 예상 도착 시간은 약 30분입니다.",
		},
	}
}
