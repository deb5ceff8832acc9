package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	phonePrefix    = "92"
	minPhoneLength = 11
)

type ValidationCode string

const (
	ValidationMissingContactInfo ValidationCode = "missing_contact_info"
	ValidationInvalidPhoneNumber ValidationCode = "invalid_phone_number"
	ValidationEmptyCart          ValidationCode = "empty_cart"
)

type ValidationError struct {
	Code ValidationCode
}

func (e *ValidationError) Error() string {
	switch e.Code {
	case ValidationMissingContactInfo:
		return "please enter both your name and WhatsApp number"
	case ValidationInvalidPhoneNumber:
		return "please enter a valid WhatsApp number starting with 92 (e.g., 923001234567)"
	case ValidationEmptyCart:
		return "your cart is empty, please add items before placing an order"
	default:
		return string(e.Code)
	}
}

func IsValidationError(err error, code ValidationCode) bool {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Code == code
	}
	return false
}

type OrderRequest struct {
	CustomerName string
	PhoneNumber  string
	Note         string
}

func (r OrderRequest) Trimmed() OrderRequest {
	return OrderRequest{
		CustomerName: strings.TrimSpace(r.CustomerName),
		PhoneNumber:  strings.TrimSpace(r.PhoneNumber),
		Note:         strings.TrimSpace(r.Note),
	}
}

func ValidatePhoneNumber(phone string) bool {
	if len(phone) < minPhoneLength || !strings.HasPrefix(phone, phonePrefix) {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateOrder applies the checks in a fixed order and reports only the
// first one that fails.
func ValidateOrder(req OrderRequest, lines []AggregatedLine) error {
	if req.CustomerName == "" || req.PhoneNumber == "" {
		return &ValidationError{Code: ValidationMissingContactInfo}
	}
	if !ValidatePhoneNumber(req.PhoneNumber) {
		return &ValidationError{Code: ValidationInvalidPhoneNumber}
	}
	if len(lines) == 0 {
		return &ValidationError{Code: ValidationEmptyCart}
	}
	return nil
}

type LinkEncoding string

const (
	// LinkEncodingMinimal only rewrites spaces and newlines; everything else
	// is passed through as is.
	LinkEncodingMinimal LinkEncoding = "minimal"
	// LinkEncodingQuery percent-encodes every reserved character.
	LinkEncodingQuery LinkEncoding = "query"
)

func (e LinkEncoding) IsValid() bool {
	return e == LinkEncodingMinimal || e == LinkEncodingQuery
}

var minimalReplacer = strings.NewReplacer(" ", "%20", "\n", "%0A")

func EncodeMessage(text string, encoding LinkEncoding) string {
	if encoding == LinkEncodingQuery {
		return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	}
	return minimalReplacer.Replace(text)
}

type OrderMessage struct {
	Lines       []string
	Text        string
	EncodedText string
	Link        string
	GrandTotal  Amount
}

// OrderComposer turns a validated cart snapshot into the chat message and the
// link that opens it. It has no side effects.
type OrderComposer struct {
	endpoint  string
	recipient string
	encoding  LinkEncoding
}

func NewOrderComposer(endpoint, recipient string, encoding LinkEncoding) *OrderComposer {
	if !encoding.IsValid() {
		encoding = LinkEncodingMinimal
	}
	return &OrderComposer{
		endpoint:  strings.TrimRight(endpoint, "/"),
		recipient: recipient,
		encoding:  encoding,
	}
}

func (c *OrderComposer) ValidateAndCompose(req OrderRequest, lines []AggregatedLine, grandTotal Amount) (*OrderMessage, error) {
	req = req.Trimmed()
	if err := ValidateOrder(req, lines); err != nil {
		return nil, err
	}

	messageLines := make([]string, 0, len(lines)+6)
	messageLines = append(messageLines, "Order Summary:")
	for _, line := range lines {
		messageLines = append(messageLines, fmt.Sprintf("- %s × %d = %s", line.Name, line.Quantity, line.LineTotal))
	}
	messageLines = append(messageLines,
		"",
		fmt.Sprintf("Total: %s", grandTotal),
		fmt.Sprintf("Customer: %s", req.CustomerName),
		fmt.Sprintf("Contact: %s", req.PhoneNumber),
	)
	if req.Note != "" {
		messageLines = append(messageLines, fmt.Sprintf("Instructions: %s", req.Note))
	}

	text := strings.Join(messageLines, "\n")
	encoded := EncodeMessage(text, c.encoding)

	return &OrderMessage{
		Lines:       messageLines,
		Text:        text,
		EncodedText: encoded,
		Link:        c.Link(encoded),
		GrandTotal:  grandTotal,
	}, nil
}

func (c *OrderComposer) Link(encodedText string) string {
	return fmt.Sprintf("%s/%s?text=%s", c.endpoint, c.recipient, encodedText)
}

type OrderLinkComposedEvent struct {
	SessionID    SessionID `json:"session_id"`
	CustomerName string    `json:"customer_name"`
	PhoneNumber  string    `json:"phone_number"`
	Text         string    `json:"text"`
	Link         string    `json:"link"`
	GrandTotal   Amount    `json:"grand_total"`
	ComposedAt   time.Time `json:"composed_at"`
}

func (e *OrderLinkComposedEvent) GetName() string {
	return "order.link_composed"
}

func (e *OrderLinkComposedEvent) GetEntityName() string {
	return "order"
}

func NewOrderLinkComposedEvent(sessionID SessionID, req OrderRequest, message *OrderMessage, composedAt time.Time) *OrderLinkComposedEvent {
	req = req.Trimmed()
	return &OrderLinkComposedEvent{
		SessionID:    sessionID,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Text:         message.Text,
		Link:         message.Link,
		GrandTotal:   message.GrandTotal,
		ComposedAt:   composedAt,
	}
}
