package tracking

import (
	"fmt"

	"pricehawk/internal/misc"
	"pricehawk/internal/model"
)

type Status int

const (
	StatusNone Status = iota
	StatusReached
	StatusAbove
)

func (s Status) String() string {
	switch s {
	case StatusReached:
		return "reached"
	case StatusAbove:
		return "above"
	}
	return "none"
}

type PriceStatus struct {
	Status  Status
	Savings float64
	Message string
}

// StatusOf is the one source of truth for a product's standing against its
// target price. Savings is target minus current when the target is reached,
// never negative.
func StatusOf(p model.TrackedProduct) PriceStatus {
	if p.TargetPrice <= 0 {
		return PriceStatus{Status: StatusNone}
	}
	if p.CurrentPrice <= p.TargetPrice {
		savings := p.TargetPrice - p.CurrentPrice
		return PriceStatus{
			Status:  StatusReached,
			Savings: savings,
			Message: fmt.Sprintf("Target reached! Save %s", misc.FormatMoney(savings)),
		}
	}
	diff := p.CurrentPrice - p.TargetPrice
	return PriceStatus{
		Status:  StatusAbove,
		Message: fmt.Sprintf("%s above target", misc.FormatMoney(diff)),
	}
}
