package lexer

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/rikchilvers/gledger/journal"
)

func TestPeriodExpression(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  journal.Period
	}{
		{
			name:  "interval only",
			input: "monthly",
			want:  journal.Period{Interval: journal.Monthly},
		},
		{
			name:  "bare year spans the year",
			input: "2009",
			want:  period(journal.NoInterval, datePtr(2009, 1, 1), datePtr(2009, 12, 31)),
		},
		{
			name:  "bare year-month spans the month",
			input: "2009-01",
			want:  period(journal.NoInterval, datePtr(2009, 1, 1), datePtr(2009, 1, 31)),
		},
		{
			name:  "bare full date spans the day",
			input: "2009-01-01",
			want:  period(journal.NoInterval, datePtr(2009, 1, 1), datePtr(2009, 1, 1)),
		},
		{
			name:  "in year",
			input: "in 2009",
			want:  period(journal.NoInterval, datePtr(2009, 1, 1), datePtr(2009, 12, 31)),
		},
		{
			name:  "in december spans to year end",
			input: "in 2009-12",
			want:  period(journal.NoInterval, datePtr(2009, 12, 1), datePtr(2009, 12, 31)),
		},
		{
			name:  "from only sets the start",
			input: "from 2009/1/1",
			want:  period(journal.NoInterval, datePtr(2009, 1, 1), nil),
		},
		{
			name:  "to only sets the end",
			input: "to 2009",
			want:  period(journal.NoInterval, nil, datePtr(2009, 1, 1)),
		},
		{
			name:  "two dates",
			input: "from 2009/1/1 to 2009/4/1",
			want:  period(journal.NoInterval, datePtr(2009, 1, 1), datePtr(2009, 4, 1)),
		},
		{
			name:  "interval with two dates",
			input: "weekly from 2009/1/1 to 2009/4/1",
			want:  period(journal.Weekly, datePtr(2009, 1, 1), datePtr(2009, 4, 1)),
		},
		{
			name:  "interval with bare date",
			input: "daily 2009",
			want:  period(journal.Daily, datePtr(2009, 1, 1), datePtr(2009, 12, 31)),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := PeriodExpression(test.input)
			assert.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestPeriodExpressionRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"two directions with one date", "in from 2009"},
		{"direction after lone date", "2009 to"},
		{"direction with no date", "from"},
		{"trailing junk", "monthly nonsense"},
		{"bad date", "from 2009-13-01"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := PeriodExpression(test.input)
			assert.Error(t, err)
		})
	}
}

func period(interval journal.PeriodInterval, start, end *time.Time) journal.Period {
	return journal.Period{Interval: interval, StartDate: start, EndDate: end}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}
