package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"procurv/internal/auctionerrors"
	"procurv/utils"
)

// Actions returned to the caller after a chat turn
const (
	ActionClarify = "clarify"
	ActionPreview = "preview"
)

// TurnResult is the outcome of one chat exchange
type TurnResult struct {
	Action     string     `json:"action"`
	Message    string     `json:"message"`
	Slots      Slots      `json:"slots"`
	Validation Validation `json:"validation"`
}

// SummarizeRequest carries auction facts for the post-auction explanation
type SummarizeRequest struct {
	Question        string  `json:"question"`
	Round           int     `json:"round"`
	WinnerName      string  `json:"winner_name"`
	WinnerPrice     float64 `json:"winner_price"`
	WinnerCompliant bool    `json:"winner_compliant"`
	RunnerUpName    string  `json:"runner_up_name,omitempty"`
	RunnerUpPrice   float64 `json:"runner_up_price,omitempty"`
	PriceGap        float64 `json:"price_gap,omitempty"`
	ComplianceNotes string  `json:"compliance_notes,omitempty"`
}

// ChatService implements the conversational surface: slot extraction and
// merge, an optional hosted completion, and a deterministic fallback when
// that dependency is missing or failing.
type ChatService struct {
	completer Completer
}

// NewChatService creates a new ChatService instance
func NewChatService(completer Completer) *ChatService {
	return &ChatService{completer: completer}
}

// Turn processes one user message against the previously known slots
func (s *ChatService) Turn(ctx context.Context, text string, prior Slots) (TurnResult, error) {
	if strings.TrimSpace(text) == "" {
		return TurnResult{}, fmt.Errorf("chat: %w", auctionerrors.ErrMissingText)
	}

	slots := mergeSlots(prior, ParseSlots(text), text)
	validation := ValidateSlots(slots)

	message := s.tryCompletion(ctx, text, slots)
	if message == "" {
		message = fallbackMessage(slots, validation)
	}

	action := ActionClarify
	if validation.IsValid {
		action = ActionPreview
	}

	return TurnResult{
		Action:     action,
		Message:    message,
		Slots:      slots,
		Validation: validation,
	}, nil
}

// mergeSlots overlays freshly parsed fields onto the prior context, but only
// for fields the user plausibly addressed this turn. A message that reads
// like a full request sentence accepts everything parsed.
func mergeSlots(prior, parsed Slots, text string) Slots {
	merged := prior
	lower := strings.ToLower(text)
	mentions := func(kw string) bool { return strings.Contains(lower, kw) }

	saidBudget := mentions("budget") || mentions("$")
	saidQty := mentions("qty") || mentions("quantity")
	saidDelivery := mentions("delivery") || mentions("days")
	saidWarranty := mentions("warranty")
	saidItem := mentions("item") || mentions("product") || mentions("part") ||
		mentions("laptop") || mentions("chair")

	if saidBudget && parsed.Budget > 0 {
		merged.Budget = parsed.Budget
	}
	if saidQty && parsed.Quantity > 0 {
		merged.Quantity = parsed.Quantity
	}
	if saidDelivery && parsed.DeliveryDays > 0 {
		merged.DeliveryDays = parsed.DeliveryDays
	}
	if saidWarranty && parsed.WarrantyMonths > 0 {
		merged.WarrantyMonths = parsed.WarrantyMonths
	}
	if saidItem && parsed.Item != "" {
		merged.Item = parsed.Item
	}

	looksComplete := saidItem && (saidQty || parsed.Quantity > 0) && saidDelivery && saidBudget
	if looksComplete {
		if parsed.Item != "" {
			merged.Item = parsed.Item
		}
		if parsed.Quantity > 0 {
			merged.Quantity = parsed.Quantity
		}
		if parsed.Budget > 0 {
			merged.Budget = parsed.Budget
		}
		if parsed.DeliveryDays > 0 {
			merged.DeliveryDays = parsed.DeliveryDays
		}
		if parsed.WarrantyMonths > 0 {
			merged.WarrantyMonths = parsed.WarrantyMonths
		}
	}
	return merged
}

// tryCompletion asks the hosted model for a reply; any failure returns ""
// and the caller falls back to a templated response
func (s *ChatService) tryCompletion(ctx context.Context, text string, slots Slots) string {
	if s.completer == nil {
		return ""
	}
	slotsJSON, _ := json.Marshal(slots)
	system := fmt.Sprintf(`You are Procurv's AI procurement assistant.

If the user is asking about procurement (items, quantities, budgets, delivery, auctions), help them with procurement tasks and extract relevant details.

If they're just chatting (greetings, general questions), respond naturally and friendly.

Current context: %s`, slotsJSON)

	message, err := s.completer.Complete(ctx, system, text)
	if err != nil {
		utils.Warn("chat: completion failed, using templated fallback", map[string]any{
			"error": err.Error(),
		})
		return ""
	}
	return message
}

// fallbackMessage is the deterministic reply used when the hosted completion
// is unavailable
func fallbackMessage(slots Slots, validation Validation) string {
	if !validation.IsValid {
		return fmt.Sprintf("Great, we're close. I still need: %s. You can continue typing the missing values. "+
			"If you already have a vendor list, you can also upload it (CSV/JSON with columns supplier_name,email,base_price).",
			strings.Join(validation.MissingFields, ", "))
	}

	budget := slots.Budget
	if budget == 0 {
		budget = slots.MaxBudget
	}
	return fmt.Sprintf("Perfect. I can create the RFQ preview for %d %s (budget $%.0f, delivery in %d days).\n\n"+
		"Option A — Upload your vendor list now.\n"+
		"Option B — Start the reverse auction without a list (I'll use sample vendors for the demo).\n\n"+
		`Reply with "Upload" or "Start auction".`,
		slots.Quantity, slots.Item, budget, slots.DeliveryDays)
}

// Summarize explains an auction outcome, preferring the hosted model and
// falling back to a deterministic explanation built from the same facts
func (s *ChatService) Summarize(ctx context.Context, req SummarizeRequest) string {
	if s.completer != nil {
		prompt := summarizePrompt(req)
		message, err := s.completer.Complete(ctx,
			"You are a helpful procurement analyst. Provide clear, detailed explanations of auction decisions based on the data provided.",
			prompt)
		if err == nil {
			return message
		}
		utils.Warn("chat: summarize completion failed, using fallback", map[string]any{
			"error": err.Error(),
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The winner (%s) was selected based on the lowest bid of $%.2f. ", req.WinnerName, req.WinnerPrice)
	if req.RunnerUpName != "" {
		fmt.Fprintf(&b, "The runner-up (%s) bid $%.2f, creating a $%.2f price gap. ", req.RunnerUpName, req.RunnerUpPrice, req.PriceGap)
	}
	if req.WinnerCompliant {
		b.WriteString("The winner is also compliant with all requirements. ")
	}
	b.WriteString("This represents the best value proposition for the procurement.")
	return b.String()
}

func summarizePrompt(req SummarizeRequest) string {
	question := req.Question
	if question == "" {
		question = "Why was the winner chosen?"
	}
	return fmt.Sprintf(`You are a procurement analyst explaining auction results. Answer the user's question about why the winner was chosen.

User's question: %q

Auction data:
- Round: %d
- Winner: %s at $%.2f (compliant: %t)
- Runner-up: %s at $%.2f
- Price gap: $%.2f
- Compliance notes: %s

Provide a clear, detailed explanation of the reasoning behind the selection.`,
		question, req.Round, req.WinnerName, req.WinnerPrice, req.WinnerCompliant,
		req.RunnerUpName, req.RunnerUpPrice, req.PriceGap, req.ComplianceNotes)
}
