package content

// businessKeyword is one curated business-domain term. Matching is
// structural (declarations, property access, path segments) rather than
// bare substring search; Suppressors lists tokens that explain the same
// substring away (state-hook names that happen to contain the term).
type businessKeyword struct {
	Term        string
	Display     string
	Suppressors []string
}

// businessKeywords spans the common business domains: identity, payments,
// orders, insurance, lending, reporting, messaging, documents, settings.
// Order is the tie-break: the first matched term is the most salient one.
var businessKeywords = []businessKeyword{
	// identity
	{Term: "auth", Display: "authentication", Suppressors: []string{"author"}},
	{Term: "login", Display: "login"},
	{Term: "signup", Display: "sign-up"},
	// "user" collides with lowercased hook names (useRef, useReducer,
	// useRouter all contain "user"), so those occurrences are suppressed.
	{Term: "user", Display: "user management", Suppressors: []string{"useref", "usereducer", "userouter", "usereduce"}},
	{Term: "account", Display: "account management"},
	{Term: "profile", Display: "user profile"},
	{Term: "kyc", Display: "KYC verification"},
	{Term: "customer", Display: "customer data"},

	// payments
	{Term: "payment", Display: "payments"},
	{Term: "billing", Display: "billing"},
	{Term: "invoice", Display: "invoicing"},
	{Term: "wallet", Display: "wallet"},
	{Term: "subscription", Display: "subscriptions"},

	// orders / commerce
	{Term: "order", Display: "order management", Suppressors: []string{"borderradius", "border", "orderby", "zorder"}},
	{Term: "cart", Display: "shopping cart"},
	{Term: "checkout", Display: "checkout"},
	{Term: "product", Display: "product catalog"},
	{Term: "inventory", Display: "inventory"},
	{Term: "shipping", Display: "shipping"},

	// insurance
	{Term: "insurance", Display: "insurance"},
	{Term: "policy", Display: "policy management"},
	{Term: "claim", Display: "claims"},

	// lending
	{Term: "loan", Display: "lending"},
	{Term: "credit", Display: "credit"},

	// reporting
	{Term: "report", Display: "reporting"},
	{Term: "analytics", Display: "analytics"},
	{Term: "dashboard", Display: "dashboards"},

	// messaging
	{Term: "notification", Display: "notifications"},
	{Term: "message", Display: "messaging"},
	{Term: "chat", Display: "chat"},
	{Term: "email", Display: "email"},

	// documents / settings
	{Term: "document", Display: "document handling"},
	{Term: "upload", Display: "file upload"},
	{Term: "settings", Display: "settings"},
}
