package http

import (
	"time"

	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the server-generated id of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

type RegisterCustomerRequest struct {
	Name string `json:"name"`
}

type RegisterSupplierRequest struct {
	Name              string `json:"name"`
	MinimumOrderValue string `json:"minimum_order_value"`
	AdminFeePercent   string `json:"admin_fee_percent"`
	DeliveryTimeDays  int    `json:"delivery_time_days"`
}

type ItemDetailsRequest struct {
	PreferredColor    string   `json:"preferred_color,omitempty"`
	AlternativeColors []string `json:"alternative_colors,omitempty"`
	Size              string   `json:"size,omitempty"`
	Category          string   `json:"category,omitempty"`
	Observations      string   `json:"observations,omitempty"`
}

type SubmitCustomOrderRequest struct {
	CustomerID     string             `json:"customer_id"`
	Description    string             `json:"description"`
	Details        ItemDetailsRequest `json:"details"`
	Quantity       int                `json:"quantity"`
	Urgency        string             `json:"urgency"`
	EstimatedPrice *string            `json:"estimated_price,omitempty"`
}

type AnalyzeCustomOrderRequest struct {
	AdminID    string `json:"admin_id"`
	SupplierID string `json:"supplier_id"`
	FinalPrice string `json:"final_price"`
}

type CancelCustomOrderRequest struct {
	Reason       string  `json:"reason"`
	RefundAmount *string `json:"refund_amount,omitempty"`
}

type OpenCollectiveOrderRequest struct {
	SupplierID string `json:"supplier_id"`
}

type AttachOrderRequest struct {
	OrderID string `json:"order_id"`
}

type CloseCollectiveOrderRequest struct {
	AdminID string `json:"admin_id"`
}

type OpenPaymentWindowRequest struct {
	Deadline time.Time `json:"deadline"`
}

type AmountRequest struct {
	Amount string `json:"amount"`
}

type MarkShippedRequest struct {
	TrackingCode string `json:"tracking_code"`
}

type CancelCollectiveOrderRequest struct {
	Reason string `json:"reason"`
}

type RecordCreditRequest struct {
	CustomerID      string  `json:"customer_id"`
	TransactionType string  `json:"transaction_type"`
	Amount          string  `json:"amount"`
	Description     string  `json:"description"`
	BonusPercentage *string `json:"bonus_percentage,omitempty"`
}

type RecordDebitRequest struct {
	CustomerID    string  `json:"customer_id"`
	Amount        string  `json:"amount"`
	Description   string  `json:"description"`
	CustomOrderID *string `json:"custom_order_id,omitempty"`
}

type TransferCreditsRequest struct {
	FromCustomerID string `json:"from_customer_id"`
	ToCustomerID   string `json:"to_customer_id"`
	Amount         string `json:"amount"`
	Description    string `json:"description"`
}

type PendingOrderResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Urgency     string    `json:"urgency"`
	CreatedAt   time.Time `json:"created_at"`
}

type CustomerOrderResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	FinalPrice  *string   `json:"final_price,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ConfirmedOrderResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	TotalValue  string    `json:"total_value"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

type EligiblePoolResponse struct {
	ID           string    `json:"id"`
	SupplierID   string    `json:"supplier_id"`
	Status       string    `json:"status"`
	MinimumValue string    `json:"minimum_value"`
	CurrentValue string    `json:"current_value"`
	CreatedAt    time.Time `json:"created_at"`
}

type PoolProgressResponse struct {
	ID                string  `json:"id"`
	Status            string  `json:"status"`
	MinimumValue      string  `json:"minimum_value"`
	CurrentValue      string  `json:"current_value"`
	MemberCount       int     `json:"member_count"`
	CompletionPercent float64 `json:"completion_percent"`
	RemainingAmount   string  `json:"remaining_amount"`
}

type CustomerBalanceResponse struct {
	CustomerID     string `json:"customer_id"`
	CachedBalance  string `json:"cached_balance"`
	DerivedBalance string `json:"derived_balance"`
}

type LedgerEntryResponse struct {
	ID              string     `json:"id"`
	TransactionType string     `json:"transaction_type"`
	Amount          string     `json:"amount"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	BalanceAfter    string     `json:"balance_after"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func parseUUIDParam(name, value string) (kernel.UUID, error) {
	if value == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	return kernel.UUIDFromString(value)
}

func parseMoney(name, value string) (kernel.Money, error) {
	if value == "" {
		return kernel.Money{}, errs.NewValueIsRequiredError(name)
	}
	money, err := kernel.NewMoneyFromString(value)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return money, nil
}

func parseOptionalMoney(name string, value *string) (*kernel.Money, error) {
	if value == nil {
		return nil, nil
	}
	money, err := parseMoney(name, *value)
	if err != nil {
		return nil, err
	}
	return &money, nil
}

func parseUrgency(value string) (customorder.Urgency, error) {
	switch value {
	case "Low":
		return customorder.UrgencyLow, nil
	case "Normal", "":
		return customorder.UrgencyNormal, nil
	case "High":
		return customorder.UrgencyHigh, nil
	case "Urgent":
		return customorder.UrgencyUrgent, nil
	default:
		return customorder.UrgencyUnknown, errs.NewValueIsInvalidError("urgency is invalid")
	}
}
