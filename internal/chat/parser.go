package chat

import (
	"regexp"
	"strconv"
	"strings"
)

// Slots is the structured view of a free-text procurement request. Zero
// values mean the field has not been extracted yet.
type Slots struct {
	Item           string  `json:"item,omitempty"`
	Quantity       int     `json:"quantity,omitempty"`
	Budget         float64 `json:"budget,omitempty"`
	MaxBudget      float64 `json:"max_budget,omitempty"`
	DeliveryDays   int     `json:"delivery_days,omitempty"`
	WarrantyMonths int     `json:"warranty_months,omitempty"`
}

// Validation reports whether the slots are complete enough to build an RFQ
type Validation struct {
	IsValid       bool     `json:"is_valid"`
	MissingFields []string `json:"missing_fields"`
}

var (
	quantityRe = regexp.MustCompile(`(?i)(\d{1,6})(?:\s*(?:units|pieces|pcs|items|chairs|desks|tables))?`)

	budgetRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:budget|my budget)\s*(?:is\s*)?\$?(\d+(?:,\d{3})*(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)under\s*\$?(\d+(?:,\d{3})*(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)below\s*\$?(\d+(?:,\d{3})*(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)<=?\s*\$?(\d+(?:,\d{3})*(?:\.\d+)?)`),
		regexp.MustCompile(`\$(\d+(?:,\d{3})*(?:\.\d+)?)`),
	}

	deliveryRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s*(?:days?|d)\b`),
		regexp.MustCompile(`(?i)(\d+)\s*(?:weeks?|w)\b`),
		regexp.MustCompile(`(?i)within\s*(\d+)\s*(?:days?|weeks?)`),
		regexp.MustCompile(`(?i)in\s*(\d+)\s*(?:days?|weeks?)`),
	}

	warrantyRe = regexp.MustCompile(`(?i)(\d+)\s*(year|years|month|months)`)

	itemCleanupRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:need|want|require|looking for|procure|purchase|buy|i want|i need)\b`),
		regexp.MustCompile(`(?i)\b(?:budget|my budget|under|below|<=|delivery|warranty|days|weeks|months|years)\b`),
		regexp.MustCompile(`(?i)\b\d+\s*(?:units|pieces|pcs|items|chairs|desks|tables)\b`),
		regexp.MustCompile(`\$\d+(?:,\d{3})*(?:\.\d+)?`),
		regexp.MustCompile(`(?i)\b\d+\s*(?:days|weeks|months|years)\b`),
		regexp.MustCompile(`(?i)\b(?:within|in)\s*\d+\s*(?:days|weeks)\b`),
		regexp.MustCompile(`\s+`),
	}
)

// commonItems is checked first when extracting the item description
var commonItems = []string{
	"chairs", "desks", "tables", "computers", "laptops", "monitors", "printers",
	"phones", "headsets", "keyboards", "mice", "servers", "storage", "networking",
	"software", "licenses", "office supplies", "stationery", "furniture",
	"equipment", "machinery", "tools", "vehicles", "uniforms", "safety gear",
}

// ParseSlots extracts structured procurement fields from free text using the
// regex heuristics of the chat surface. Extraction is best-effort by design.
func ParseSlots(text string) Slots {
	var slots Slots

	if m := quantityRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			slots.Quantity = n
		}
	}

	for _, re := range budgetRes {
		if m := re.FindStringSubmatch(text); m != nil {
			raw := strings.ReplaceAll(m[1], ",", "")
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				slots.Budget = f
			}
			break
		}
	}

	lower := strings.ToLower(text)
	for _, re := range deliveryRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				if strings.Contains(lower, "week") {
					n *= 7
				}
				slots.DeliveryDays = n
			}
			break
		}
	}

	if m := warrantyRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			if strings.HasPrefix(strings.ToLower(m[2]), "year") {
				n *= 12
			}
			slots.WarrantyMonths = n
		}
	}

	slots.Item = extractItem(text)
	return slots
}

// extractItem looks for a known procurement item, then falls back to the
// sentence with request and constraint keywords stripped out
func extractItem(text string) string {
	lower := strings.ToLower(text)
	for _, item := range commonItems {
		if strings.Contains(lower, item) {
			return item
		}
	}

	cleaned := text
	for i, re := range itemCleanupRes {
		repl := ""
		if i == len(itemCleanupRes)-1 {
			repl = " " // final pass collapses whitespace
		}
		cleaned = re.ReplaceAllString(cleaned, repl)
	}
	cleaned = strings.TrimSpace(cleaned)
	if len(cleaned) > 2 {
		return cleaned
	}
	return ""
}

// ValidateSlots names the fields still missing for a complete RFQ
func ValidateSlots(slots Slots) Validation {
	var missing []string
	if slots.Item == "" {
		missing = append(missing, "item")
	}
	if slots.Quantity == 0 {
		missing = append(missing, "quantity")
	}
	if slots.Budget == 0 && slots.MaxBudget == 0 {
		missing = append(missing, "budget")
	}
	if slots.DeliveryDays == 0 {
		missing = append(missing, "delivery timeframe")
	}
	return Validation{IsValid: len(missing) == 0, MissingFields: missing}
}
