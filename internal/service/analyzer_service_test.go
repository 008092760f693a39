package service

import (
	"testing"

	"github.com/thedev2003/amount-detector/internal/models"
	"github.com/thedev2003/amount-detector/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAnalyzer() *AnalyzerService {
	return NewAnalyzerService(&config.AnalyzerConfig{DefaultCurrency: "INR"}, zap.NewNop())
}

func TestAnalyzer_InvoiceExample(t *testing.T) {
	analyzer := newTestAnalyzer()

	result, err := analyzer.Analyze("Invoice Total: 5000 INR. Paid amount 2000, balance due is 3000.")
	require.NoError(t, err)

	require.Len(t, result.Amounts, 3)
	assert.Equal(t, "INR", result.Currency)
	assert.Equal(t, "ok", result.Status)

	assert.Equal(t, models.AmountTypeTotalBill, result.Amounts[0].Type)
	assert.Equal(t, 5000.0, result.Amounts[0].Value)
	assert.Equal(t, "Total: 5000", result.Amounts[0].SourceText)

	assert.Equal(t, models.AmountTypePaid, result.Amounts[1].Type)
	assert.Equal(t, 2000.0, result.Amounts[1].Value)

	assert.Equal(t, models.AmountTypeDue, result.Amounts[2].Type)
	assert.Equal(t, 3000.0, result.Amounts[2].Value)
}

func TestAnalyzer_Classification(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []models.Amount
	}{
		{
			name: "cue before number with punctuation",
			text: "Total: 250",
			expected: []models.Amount{
				{Type: models.AmountTypeTotalBill, Value: 250, SourceText: "Total: 250"},
			},
		},
		{
			name: "cue after number",
			text: "500 paid",
			expected: []models.Amount{
				{Type: models.AmountTypePaid, Value: 500, SourceText: "500 paid"},
			},
		},
		{
			name: "balance maps to due",
			text: "Balance 750",
			expected: []models.Amount{
				{Type: models.AmountTypeDue, Value: 750, SourceText: "Balance 750"},
			},
		},
		{
			name: "last cue word wins",
			text: "total due 900",
			expected: []models.Amount{
				{Type: models.AmountTypeDue, Value: 900, SourceText: "total due 900"},
			},
		},
		{
			name: "trailing cue wins over leading cue",
			text: "total 900 due",
			expected: []models.Amount{
				{Type: models.AmountTypeDue, Value: 900, SourceText: "total 900 due"},
			},
		},
		{
			name: "thousands separators stripped",
			text: "Total 1,234.50",
			expected: []models.Amount{
				{Type: models.AmountTypeTotalBill, Value: 1234.50, SourceText: "Total 1,234.50"},
			},
		},
		{
			name: "amount cue anchors but paid classifies",
			text: "Paid amount 2000",
			expected: []models.Amount{
				{Type: models.AmountTypePaid, Value: 2000, SourceText: "Paid amount 2000"},
			},
		},
		{
			name: "window does not cross sentence boundary",
			text: "Paid 100. 120 due",
			expected: []models.Amount{
				{Type: models.AmountTypePaid, Value: 100, SourceText: "Paid 100"},
				{Type: models.AmountTypeDue, Value: 120, SourceText: "120 due"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestAnalyzer().Analyze(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Amounts)
		})
	}
}

func TestAnalyzer_NoMatches(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no cue words", "Hello world 123"},
		{"cue without number", "the total is pending"},
		{"unmapped cue only", "amount 300"},
		{"empty string", ""},
		{"numbers only", "123 456 789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestAnalyzer().Analyze(tt.text)
			assert.ErrorIs(t, err, ErrNoAmounts)
			assert.Nil(t, result)
		})
	}
}

func TestAnalyzer_Deduplication(t *testing.T) {
	result, err := newTestAnalyzer().Analyze("Total 100 and Total 100")
	require.NoError(t, err)
	require.Len(t, result.Amounts, 1)
	assert.Equal(t, "Total 100", result.Amounts[0].SourceText)
}

func TestAnalyzer_Idempotent(t *testing.T) {
	analyzer := newTestAnalyzer()
	text := "Invoice Total: 5000 INR. Paid amount 2000, balance due is 3000."

	first, err := analyzer.Analyze(text)
	require.NoError(t, err)
	second, err := analyzer.Analyze(text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzer_CurrencyDetection(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		currency string
	}{
		{"default currency", "Total 500", "INR"},
		{"dollar symbol", "Total $50", "USD"},
		{"euro word", "Total 99 EUR", "EUR"},
		{"rupee marker", "Rs Total 500", "INR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestAnalyzer().Analyze(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.currency, result.Currency)
		})
	}
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		raw   string
		value float64
		ok    bool
	}{
		{"5000", 5000, true},
		{"1,234.50", 1234.50, true},
		{"2,000", 2000, true},
		{"1.2.3", 0, false},
	}

	for _, tt := range tests {
		value, ok := parseNumeric(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		if tt.ok {
			assert.Equal(t, tt.value, value, tt.raw)
		}
	}
}

func TestTokenize_Offsets(t *testing.T) {
	text := "Total: 1,234.50"
	toks := tokenize(text)

	require.Len(t, toks, 3)
	assert.Equal(t, tokenWord, toks[0].kind)
	assert.Equal(t, tokenPunct, toks[1].kind)
	assert.Equal(t, tokenNumber, toks[2].kind)
	assert.Equal(t, "1,234.50", toks[2].text)
	assert.Equal(t, text, text[toks[0].start:toks[2].end])
}
