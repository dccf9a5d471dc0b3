package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayForNotEnrolled(t *testing.T) {
	display := DisplayFor(EnrollmentStatus{IsEnrolled: false})
	assert.Equal(t, StateNotEnrolled, display.State)
	assert.Equal(t, ToneNeutral, display.Tone)
	assert.Empty(t, display.SubStatus)
}

func TestDisplayForTones(t *testing.T) {
	cases := []struct {
		status string
		tone   string
	}{
		{"Verified By Cashier", TonePositive},
		{"Verified By Head Dept", TonePositive},
		{"active", TonePositive},
		{"enrolled", TonePositive},
		{"Pending", ToneWarning},
		{"  dropped ", ToneCritical},
		{"something-new", ToneNeutral},
		{"", ToneNeutral},
	}
	for _, tc := range cases {
		display := DisplayFor(EnrollmentStatus{IsEnrolled: true, Status: tc.status})
		assert.Equal(t, StateEnrolled, display.State, tc.status)
		assert.Equal(t, tc.tone, display.Tone, tc.status)
		assert.Equal(t, tc.status, display.SubStatus, tc.status)
	}
}
