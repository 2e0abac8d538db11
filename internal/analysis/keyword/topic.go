package keyword

// Topic categories reported by Classify.
const (
	TechnicalSupport   = "Technical Support"
	SalesPricing       = "Sales & Pricing"
	AccountBilling     = "Account & Billing"
	GeneralInformation = "General Information"
	GeneralInquiry     = "General Inquiry"
)

// Result is a topic classification.
type Result struct {
	Category string `json:"category"`
	Reply    string `json:"response"`
}

// Topics is the widget's topic table. The final rule has no predicate and
// always matches.
var Topics = Table{
	{
		Category: TechnicalSupport,
		Reply:    "I can help you troubleshoot technical issues. Could you provide more specific details about what's not working as expected?",
		Match:    Any("bug", "error", "not working", "problem", "broken"),
	},
	{
		Category: SalesPricing,
		Reply:    "I'd be happy to help you with pricing information and finding the right plan for your needs. What specific features are you interested in?",
		Match:    Any("price", "cost", "buy", "purchase", "subscription", "plan"),
	},
	{
		Category: AccountBilling,
		Reply:    "I can assist you with account and billing related questions. For security purposes, I may need to verify some information with you.",
		Match:    Any("account", "billing", "invoice", "payment", "refund", "charge"),
	},
	{
		Category: GeneralInformation,
		Reply:    "I'm here to provide information and guidance. What specific topic would you like to learn more about?",
		Match:    Any("how", "what", "information", "learn", "tutorial", "guide"),
	},
	{
		Category: GeneralInquiry,
		Reply:    "Thank you for reaching out! I'm here to help with any questions or concerns you may have. Could you tell me more about what you're looking for?",
	},
}

// Classify maps free text to a topic. It never fails.
func Classify(text string) Result {
	rule, _ := Dispatch(Topics, text)
	return Result{Category: rule.Category, Reply: rule.Reply}
}
