package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentLabelFor(t *testing.T) {
	assert.Equal(t, "Credit Card", PaymentLabelFor(1))
	assert.Equal(t, "Cash", PaymentLabelFor(2))
	assert.Equal(t, "Flex Fare", PaymentLabelFor(0))
	assert.Equal(t, "Voided Trip", PaymentLabelFor(6))

	// Anything outside 0-6 is Other
	assert.Equal(t, "Other", PaymentLabelFor(7))
	assert.Equal(t, "Other", PaymentLabelFor(-1))
}

func TestAllPaymentLabels(t *testing.T) {
	labels := AllPaymentLabels()
	assert.Len(t, labels, 7)
	assert.Equal(t, "Flex Fare", labels[0])
	assert.Equal(t, "Voided Trip", labels[6])
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, WeekdayIndex("Monday"))
	assert.Equal(t, 6, WeekdayIndex("Sunday"))
	assert.Equal(t, -1, WeekdayIndex("Someday"))
}
