package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"rental-agent/domain"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*domain.PropertyInputs)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(in *domain.PropertyInputs) {}},
		{name: "zero price is allowed", mutate: func(in *domain.PropertyInputs) { in.PurchasePrice = 0 }},
		{name: "negative appreciation is allowed", mutate: func(in *domain.PropertyInputs) { in.AppreciationPercent = -3 }},
		{name: "no units", mutate: func(in *domain.PropertyInputs) { in.Units = nil }, wantErr: true},
		{name: "negative rent", mutate: func(in *domain.PropertyInputs) { in.Units[0].Rent = -1 }, wantErr: true},
		{name: "negative price", mutate: func(in *domain.PropertyInputs) { in.PurchasePrice = -1 }, wantErr: true},
		{name: "price above max", mutate: func(in *domain.PropertyInputs) { in.PurchasePrice = MaxPurchasePrice + 1 }, wantErr: true},
		{name: "negative closing cost", mutate: func(in *domain.PropertyInputs) { in.ClosingCost = -5 }, wantErr: true},
		{name: "negative utility", mutate: func(in *domain.PropertyInputs) { in.GasMonth = -5 }, wantErr: true},
		{name: "down payment above 100", mutate: func(in *domain.PropertyInputs) { in.DownPaymentPercent = 120 }, wantErr: true},
		{name: "rate above max", mutate: func(in *domain.PropertyInputs) { in.InterestRatePercent = MaxRatePercent + 1 }, wantErr: true},
		{name: "NaN rate", mutate: func(in *domain.PropertyInputs) { in.VacancyPercent = math.NaN() }, wantErr: true},
		{name: "infinite price", mutate: func(in *domain.PropertyInputs) { in.PurchasePrice = math.Inf(1) }, wantErr: true},
		{name: "term above max", mutate: func(in *domain.PropertyInputs) { in.LoanTermYears = 51 }, wantErr: true},
		{name: "negative depreciation", mutate: func(in *domain.PropertyInputs) { in.DepreciationYears = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := domain.DefaultInputs()
			tt.mutate(&in)

			err := Validate(in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_NonFiniteFieldReportedInStableOrder(t *testing.T) {
	t.Parallel()
	in := domain.DefaultInputs()
	in.PurchasePrice = math.NaN()
	in.DownPaymentPercent = math.Inf(1)
	in.LoanTermYears = math.NaN()
	in.DepreciationYears = math.Inf(-1)

	for i := 0; i < 20; i++ {
		err := Validate(in)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "depreciationYears must be a finite number")
	}
}
