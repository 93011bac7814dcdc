package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type moneyInput struct {
	Amount string `validate:"money_amount"`
}

type toleranceInput struct {
	Tolerance float64 `validate:"tolerance_fraction"`
}

type settlementNumberInput struct {
	Number string `validate:"settlement_number"`
}

func TestValidateMoneyAmount(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(moneyInput{Amount: "1000000"}))
	assert.NoError(t, v.Struct(moneyInput{Amount: "950000.50"}))
	assert.NoError(t, v.Struct(moneyInput{Amount: "-100.25"}))

	assert.Error(t, v.Struct(moneyInput{Amount: ""}))
	assert.Error(t, v.Struct(moneyInput{Amount: "abc"}))
	assert.Error(t, v.Struct(moneyInput{Amount: "100.123"}))
}

func TestValidateToleranceFraction(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(toleranceInput{Tolerance: 0}))
	assert.NoError(t, v.Struct(toleranceInput{Tolerance: 0.05}))
	assert.NoError(t, v.Struct(toleranceInput{Tolerance: 1}))

	assert.Error(t, v.Struct(toleranceInput{Tolerance: -0.01}))
	assert.Error(t, v.Struct(toleranceInput{Tolerance: 1.01}))
}

func TestValidateSettlementNumber(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(settlementNumberInput{Number: "SETT-20260214-9F3A1C"}))

	assert.Error(t, v.Struct(settlementNumberInput{Number: ""}))
	assert.Error(t, v.Struct(settlementNumberInput{Number: "SETT-2026-9F3A1C"}))
	assert.Error(t, v.Struct(settlementNumberInput{Number: "SETT-20260214-9f3a1c"}))
	assert.Error(t, v.Struct(settlementNumberInput{Number: "GRP-20260214-9F3A1C"}))
}
