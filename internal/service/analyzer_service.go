package service

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thedev2003/amount-detector/internal/dto"
	"github.com/thedev2003/amount-detector/internal/models"
	"github.com/thedev2003/amount-detector/pkg/config"

	"go.uber.org/zap"
)

// maxLookbehind bounds how far left of a numeric token the analyzer
// searches for cue words. Keeps windows inside a single clause.
const maxLookbehind = 4

// cueTypes maps cue words to the amount type they classify. "amount"
// anchors a match but classifies nothing on its own.
var cueTypes = map[string]models.AmountType{
	"total":   models.AmountTypeTotalBill,
	"balance": models.AmountTypeDue,
	"paid":    models.AmountTypePaid,
	"due":     models.AmountTypeDue,
	"amount":  models.AmountTypeUnknown,
}

var currencyMarkers = map[string]string{
	"inr": "INR", "rs": "INR", "rupees": "INR", "₹": "INR",
	"usd": "USD", "$": "USD",
	"eur": "EUR", "€": "EUR",
	"gbp": "GBP", "£": "GBP",
	"rub": "RUB", "₽": "RUB",
}

// AnalyzerService scans raw text for cue-word/number windows and
// classifies each into a typed Amount. It holds no mutable state, so a
// single instance is safe for concurrent requests.
type AnalyzerService struct {
	defaultCurrency string
	logger          *zap.Logger
}

func NewAnalyzerService(cfg *config.AnalyzerConfig, logger *zap.Logger) *AnalyzerService {
	return &AnalyzerService{
		defaultCurrency: cfg.DefaultCurrency,
		logger:          logger,
	}
}

// Analyze extracts every classifiable amount from text, in first-seen
// order with duplicate windows suppressed. Returns ErrNoAmounts when
// nothing classifiable is found.
func (s *AnalyzerService) Analyze(text string) (*dto.AnalysisResponse, error) {
	toks := tokenize(text)

	seen := make(map[string]struct{})
	amounts := make([]models.Amount, 0, 4)

	for i, tok := range toks {
		if tok.kind != tokenNumber {
			continue
		}

		start, end, amountType := matchWindow(toks, i)
		if amountType == models.AmountTypeUnknown {
			continue
		}

		value, ok := parseNumeric(tok.text)
		if !ok {
			continue
		}

		sourceText := text[toks[start].start:toks[end].end]
		if _, dup := seen[sourceText]; dup {
			continue
		}
		seen[sourceText] = struct{}{}

		amounts = append(amounts, models.Amount{
			Type:       amountType,
			Value:      value,
			SourceText: sourceText,
		})
	}

	if len(amounts) == 0 {
		s.logger.Debug("No amounts found", zap.Int("text_length", len(text)))
		return nil, ErrNoAmounts
	}

	s.logger.Info("Text analyzed",
		zap.Int("tokens", len(toks)),
		zap.Int("amounts", len(amounts)),
	)

	return &dto.AnalysisResponse{
		Currency: s.detectCurrency(toks),
		Amounts:  amounts,
		Status:   "ok",
	}, nil
}

// matchWindow builds the cue window around the numeric token at index i
// and resolves its type. Looking left it walks up to maxLookbehind
// tokens, stopping at another number or a sentence boundary; looking
// right it accepts only cue words immediately after the number. When a
// window carries several mapped cues, the last one in token order wins.
func matchWindow(toks []token, i int) (start, end int, amountType models.AmountType) {
	start, end = i, i
	amountType = models.AmountTypeUnknown

	firstCue := -1
	for j, steps := i-1, 0; j >= 0 && steps < maxLookbehind; j, steps = j-1, steps+1 {
		if toks[j].kind == tokenNumber || isSentenceBoundary(toks[j]) {
			break
		}
		if _, ok := cueTypes[strings.ToLower(toks[j].text)]; ok {
			firstCue = j
		}
	}
	if firstCue >= 0 {
		start = firstCue
		for j := firstCue; j < i; j++ {
			if t, ok := cueTypes[strings.ToLower(toks[j].text)]; ok && t != models.AmountTypeUnknown {
				amountType = t
			}
		}
	}

	for k := i + 1; k < len(toks); k++ {
		t, ok := cueTypes[strings.ToLower(toks[k].text)]
		if !ok {
			break
		}
		end = k
		if t != models.AmountTypeUnknown {
			amountType = t
		}
	}

	return start, end, amountType
}

func (s *AnalyzerService) detectCurrency(toks []token) string {
	for _, tok := range toks {
		if c, ok := currencyMarkers[strings.ToLower(tok.text)]; ok {
			return c
		}
	}
	return s.defaultCurrency
}

// parseNumeric keeps only digits and decimal points from a numeric
// token ("1,234.50" -> 1234.50) and parses the remainder.
func parseNumeric(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenNumber
	tokenPunct
)

// token is a lexical unit with byte offsets into the original text, so
// matched windows can be reported as exact source substrings.
type token struct {
	kind       tokenKind
	text       string
	start, end int
}

func isSentenceBoundary(tok token) bool {
	if tok.kind != tokenPunct {
		return false
	}
	switch tok.text {
	case ".", ";", "!", "?":
		return true
	}
	return false
}

// tokenize splits text into word, number, and punctuation tokens. A
// number token is a digit-led run where commas and dots are consumed
// only when followed by another digit, so "1,234.50" stays one token
// while a sentence-ending dot does not.
func tokenize(text string) []token {
	toks := make([]token, 0, 32)

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case unicode.IsSpace(r):
			i += size

		case unicode.IsLetter(r):
			start := i
			for i < len(text) {
				r, size = utf8.DecodeRuneInString(text[i:])
				if !unicode.IsLetter(r) {
					break
				}
				i += size
			}
			toks = append(toks, token{tokenWord, text[start:i], start, i})

		case unicode.IsDigit(r):
			start := i
			for i < len(text) {
				r, size = utf8.DecodeRuneInString(text[i:])
				if unicode.IsDigit(r) {
					i += size
					continue
				}
				if (r == ',' || r == '.') && nextIsDigit(text[i+size:]) {
					i += size
					continue
				}
				break
			}
			toks = append(toks, token{tokenNumber, text[start:i], start, i})

		default:
			toks = append(toks, token{tokenPunct, text[i : i+size], i, i + size})
			i += size
		}
	}

	return toks
}

func nextIsDigit(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsDigit(r)
}
