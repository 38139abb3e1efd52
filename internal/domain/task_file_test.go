package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskSpec(t *testing.T) {
	tests := []struct {
		input   string
		want    TaskDraft
		wantErr bool
	}{
		{input: "Email:10:1", want: TaskDraft{Name: "Email", Duration: 10, Priority: PriorityHigh}},
		{input: "Email:10", want: TaskDraft{Name: "Email", Duration: 10, Priority: PriorityMedium}},
		{input: "Call: Bob:15:3", want: TaskDraft{Name: "Call: Bob", Duration: 15, Priority: PriorityLow}},
		{input: "Email", wantErr: true},
		{input: "Email:ten:1", wantErr: true},
		{input: ":10:1", wantErr: true},
		{input: "Email:0:1", wantErr: true},
		{input: "Email:10:5", wantErr: true},
		{input: "Meeting: prep:30:2", want: TaskDraft{Name: "Meeting: prep", Duration: 30, Priority: PriorityMedium}},
		{input: "Email: 10 : 1 ", want: TaskDraft{Name: "Email", Duration: 10, Priority: PriorityHigh}},
		{input: "Meeting: prep:30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTaskSpec(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTaskSpec_ColonNameNeedsPriority(t *testing.T) {
	_, err := ParseTaskSpec("Meeting: prep:30")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "priority", verr.Field)
	assert.Contains(t, verr.Reason, "explicit priority")
}
