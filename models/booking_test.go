package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCardRail(t *testing.T) {
	assert.True(t, IsCardRail(PaymentMethodCard))
	assert.True(t, IsCardRail(PaymentMethodDebitCard))
	assert.False(t, IsCardRail("cash"))
	assert.False(t, IsCardRail(""))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("Pending"))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusConfirmed, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "**** **** **** 4242", MaskCardNumber("4242424242424242"))
	assert.Equal(t, "**** **** **** 0005", MaskCardNumber("4000000000000005"))
	assert.Equal(t, "4242", MaskCardNumber("4242"))
	assert.Equal(t, "", MaskCardNumber(""))
}
