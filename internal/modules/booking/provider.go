package booking

import "context"

// StaticPlanProvider offers the same protection-plan fee for every space.
// A zero fee means the plan is not offered at all.
type StaticPlanProvider struct {
	Amount float64
}

func NewStaticPlanProvider(amount float64) *StaticPlanProvider {
	return &StaticPlanProvider{Amount: amount}
}

func (p *StaticPlanProvider) Fee(_ context.Context, _ int64) (float64, bool, error) {
	if p.Amount <= 0 {
		return 0, false, nil
	}
	return p.Amount, true, nil
}
