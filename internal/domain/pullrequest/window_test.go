package pullrequest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_DateOf(t *testing.T) {
	t.Run("drops the time of day", func(t *testing.T) {
		morning := time.Date(2023, 2, 14, 8, 15, 0, 0, time.UTC)
		evening := time.Date(2023, 2, 14, 23, 59, 59, 0, time.UTC)

		assert.Equal(t, DateOf(morning), DateOf(evening))
		assert.Equal(t, time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC), DateOf(morning))
	})

	t.Run("truncates in UTC", func(t *testing.T) {
		// 01:00+02:00 is 23:00 UTC of the previous day.
		offset := time.FixedZone("CEST", 2*60*60)
		local := time.Date(2023, 2, 15, 1, 0, 0, 0, offset)

		assert.Equal(t, time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC), DateOf(local))
	})
}

func Test_ParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"dashed layout", "2023-02-14", time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC), false},
		{"slashed layout", "2023/02/14", time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC), false},
		{"rejects garbage", "14.02.2023", time.Time{}, true},
		{"rejects empty", "", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_NewDateWindow(t *testing.T) {
	t.Run("truncates both bounds", func(t *testing.T) {
		w, err := NewDateWindow(
			time.Date(2023, 2, 1, 13, 30, 0, 0, time.UTC),
			time.Date(2023, 2, 28, 7, 0, 0, 0, time.UTC),
		)

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), w.Start)
		assert.Equal(t, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), w.End)
	})

	t.Run("allows a single-day window", func(t *testing.T) {
		day := time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC)
		w, err := NewDateWindow(day.Add(20*time.Hour), day)

		assert.NoError(t, err)
		assert.Equal(t, w.Start, w.End)
	})

	t.Run("rejects start after end", func(t *testing.T) {
		_, err := NewDateWindow(
			time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		)

		assert.Equal(t, ErrInvalidWindow, err)
	})
}

func Test_DateWindow_Contains(t *testing.T) {
	w, err := NewDateWindow(
		time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 2, 20, 0, 0, 0, 0, time.UTC),
	)
	assert.NoError(t, err)

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"inside", time.Date(2023, 2, 15, 12, 0, 0, 0, time.UTC), true},
		{"on start", time.Date(2023, 2, 10, 0, 0, 1, 0, time.UTC), true},
		{"on end", time.Date(2023, 2, 20, 23, 0, 0, 0, time.UTC), true},
		{"day before start", time.Date(2023, 2, 9, 23, 59, 0, 0, time.UTC), false},
		{"day after end", time.Date(2023, 2, 21, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Contains(tt.t))
		})
	}
}
