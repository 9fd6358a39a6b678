package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
	"github.com/sociopath-little-dragon/library-bd/pkg/serializer"
)

func TestLoan_StatusAt(t *testing.T) {
	t.Parallel()
	due := model.NewDate(2024, time.January, 15)
	tests := []struct {
		name        string
		returned    bool
		today       model.Date
		wantStatus  model.LoanStatus
		wantOverdue int
	}{
		{name: "well before due date", today: model.NewDate(2024, time.January, 5), wantStatus: model.StatusActive},
		{name: "four days left", today: model.NewDate(2024, time.January, 11), wantStatus: model.StatusActive},
		{name: "three days left", today: model.NewDate(2024, time.January, 12), wantStatus: model.StatusDueSoon},
		{name: "due today", today: due, wantStatus: model.StatusDueSoon},
		{name: "one day late", today: model.NewDate(2024, time.January, 16), wantStatus: model.StatusOverdue, wantOverdue: 1},
		{name: "five days late", today: model.NewDate(2024, time.January, 20), wantStatus: model.StatusOverdue, wantOverdue: 5},
		{name: "returned late", returned: true, today: model.NewDate(2024, time.February, 1), wantStatus: model.StatusReturned},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			loan := model.Loan{
				LoanDate:   model.NewDate(2024, time.January, 1),
				ReturnDate: due,
				Returned:   tt.returned,
			}
			require.Equal(t, tt.wantStatus, loan.StatusAt(tt.today))
			require.Equal(t, tt.wantOverdue, loan.OverdueDays(tt.today))
			require.Equal(t, tt.wantStatus, loan.WithStatus(tt.today).Status)
		})
	}
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()
	type payload struct {
		Day  model.Date  `json:"day"`
		Next *model.Date `json:"next"`
	}
	var p payload
	require.NoError(t, serializer.JSON.Unmarshal([]byte(`{"day":"2024-01-15","next":null}`), &p))
	require.Equal(t, model.NewDate(2024, time.January, 15), p.Day)
	require.Nil(t, p.Next)

	out, err := serializer.JSON.Marshal(payload{Day: p.Day.AddDays(10)})
	require.NoError(t, err)
	require.JSONEq(t, `{"day":"2024-01-25","next":null}`, string(out))

	require.Error(t, serializer.JSON.Unmarshal([]byte(`{"day":"15.01.2024"}`), &p))
}

func TestDate_DaysSince(t *testing.T) {
	t.Parallel()
	from := model.NewDate(2024, time.January, 1)
	require.Equal(t, 24, model.NewDate(2024, time.January, 25).DaysSince(from))
	require.Equal(t, -1, model.NewDate(2023, time.December, 31).DaysSince(from))
	require.Equal(t, model.NewDate(2024, time.March, 1), model.NewDate(2024, time.February, 28).AddDays(2))
	require.Equal(t, from, model.DateOf(time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)))
}
