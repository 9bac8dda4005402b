package lexer

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/rikchilvers/gledger/journal"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  journal.Amount
	}{
		{"bare quantity", "42.81", journal.NewAmount(4281, "")},
		{"integer quantity", "42", journal.NewAmount(4200, "")},
		{"positive sign", "+42.00", journal.NewAmount(4200, "")},
		{"negative sign", "-42.01", journal.NewAmount(-4201, "")},
		{"commodity before", "£42", journal.NewAmount(4200, "£")},
		{"commodity before with sign", "£-15.00", journal.NewAmount(-1500, "£")},
		{"commodity before with space", "£ 42.50", journal.NewAmount(4250, "£")},
		{"commodity after", "42USD", journal.NewAmount(4200, "USD")},
		{"commodity after with space", "81 USD", journal.NewAmount(8100, "USD")},
		{"stops at comment", "84 USD ; a comment", journal.NewAmount(8400, "USD")},
		{"exact hundredths", "8.20", journal.NewAmount(820, "")},
		{"rounds extra digits", "1.005", journal.NewAmount(101, "")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Amount(NewCursor(test.input))
			assert.NoError(t, err)
			assert.NotZero(t, got)
			assert.Equal(t, test.want, *got)
		})
	}
}

func TestAmountIsOptional(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces only", "   "},
		{"comment only", "  ; a comment"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Amount(NewCursor(test.input))
			assert.NoError(t, err)
			assert.Zero(t, got)
		})
	}
}

func TestAmountRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"commodity without quantity", "£"},
		{"sign without digits", "-"},
		{"trailing decimal point", "42."},
		{"double sign", "--42"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Amount(NewCursor(test.input))
			assert.Error(t, err)
		})
	}
}
