package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	APIVersionPrefix = "/api/v1"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TablePurchaseTypes      = "purchase_types"
	TablePurchaseSubTypes   = "purchase_sub_types"
	TableBillingTypes       = "billing_types"
	TableAdditionalSections = "purchase_request_additional_sections"

	// Redis key prefixes
	CacheKeyPurchaseType    = "procurement:purchase_type:"
	CacheKeyPurchaseSubType = "procurement:purchase_sub_type:"
	CacheKeyBillingType     = "procurement:billing_type:"
	CacheKeyBillingTypeList = "procurement:billing_types"

	MaxPurchaseRequestIDLength = 64

	ErrMsgInternalServerError = "Internal server error occurred"
)
