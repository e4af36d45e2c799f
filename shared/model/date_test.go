package model_test

import (
	"encoding/json"
	"hms/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "date only",
			input: `"2025-01-10"`,
			want:  "2025-01-10",
		},
		{
			name:  "rfc3339 keeps the calendar day",
			input: `"2025-01-10T22:30:00Z"`,
			want:  "2025-01-10",
		},
		{
			name:  "null",
			input: `null`,
			want:  "",
		},
		{
			name:    "garbage",
			input:   `"tomorrow"`,
			wantErr: true,
		},
		{
			name:    "number",
			input:   `20250110`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d model.Date

			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		CheckIn  model.Date `json:"check_in"`
		CheckOut model.Date `json:"check_out"`
	}{
		CheckIn: model.NewDate(time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)),
	})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"check_in":"2025-01-10","check_out":null}`, string(payload))
}

func TestDate_Scan(t *testing.T) {
	var d model.Date

	assert.NoError(t, d.Scan(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-03-01", d.String())

	assert.NoError(t, d.Scan([]byte("2025-03-02")))
	assert.Equal(t, "2025-03-02", d.String())

	assert.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_After(t *testing.T) {
	checkIn, _ := model.ParseDate("2025-01-10")
	checkOut, _ := model.ParseDate("2025-01-12")

	assert.True(t, checkOut.After(checkIn))
	assert.False(t, checkIn.After(checkOut))
	assert.False(t, checkIn.After(checkIn))
}
