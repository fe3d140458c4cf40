package onboarding

import (
	"strings"
	"time"
)

// Catalog defaults, overridable with [Option].
const (
	DefaultAPIKeyDelay  = time.Second
	DefaultDashboardURL = "https://dashboard.payflow.com/test/payments"
)

// subscriptionKeyword is the only goal keyword the generator recognizes.
const subscriptionKeyword = "subscription"

// checkoutSnippet is the integration example shown by the checkout step.
const checkoutSnippet = `<script src="https://js.payflow.com/v3/"></script>
<button id="checkout-button">Buy Now</button>
<script>
  document.getElementById('checkout-button').addEventListener('click', function() {
    PayFlow.redirectToCheckout({
      items: [{
        price: 'price_1234567890',
        quantity: 1,
      }],
      mode: 'payment',
      successUrl: 'https://your-website.com/success',
      cancelUrl: 'https://your-website.com/cancel',
    });
  });
</script>`

type catalogOptions struct {
	apiKeyDelay  time.Duration
	dashboardURL string
}

// Option customizes generated steps.
type Option func(*catalogOptions)

// WithAPIKeyDelay sets the simulated key generation delay. Non-positive
// values are ignored.
func WithAPIKeyDelay(d time.Duration) Option {
	return func(o *catalogOptions) {
		if d > 0 {
			o.apiKeyDelay = d
		}
	}
}

// WithDashboardURL sets the URL opened by the transaction search step.
// An empty URL is ignored.
func WithDashboardURL(url string) Option {
	return func(o *catalogOptions) {
		if url != "" {
			o.dashboardURL = url
		}
	}
}

func newCatalogOptions(opts []Option) catalogOptions {
	o := catalogOptions{
		apiKeyDelay:  DefaultAPIKeyDelay,
		dashboardURL: DefaultDashboardURL,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// BaseCatalog returns the six base steps with no goal specialization applied.
func BaseCatalog(opts ...Option) Sequence {
	o := newCatalogOptions(opts)

	return Sequence{
		{
			ID:             StepTestMode,
			Title:          "Confirm Test Mode",
			Description:    "Ensure you're in test mode for safe development",
			Action:         "Confirm Test Mode",
			Content:        "Test mode allows you to simulate payments without real transactions. Always develop in test mode first.",
			ValidationText: "Test mode confirmed",
			Kind:           ConfirmTestMode{},
			Status:         StatusPending,
		},
		{
			ID:             StepAPIKeys,
			Title:          "Generate API Keys",
			Description:    "Create your publishable and secret keys",
			Action:         "Generate Keys",
			Content:        "API keys authenticate your application with our payment system. Keep your secret key secure.",
			ValidationText: "API keys generated successfully",
			Kind:           GenerateAPIKeys{Delay: o.apiKeyDelay},
			Status:         StatusPending,
		},
		{
			ID:             StepCheckoutButton,
			Title:          "Create Checkout Button",
			Description:    "Add a payment button to your website",
			Action:         "Show Code",
			Content:        "This button will redirect customers to a secure checkout page.",
			CodeSnippet:    checkoutSnippet,
			ValidationText: "Checkout button code ready",
			Kind:           CreateCheckoutButton{Snippet: checkoutSnippet, Mode: ModePayment},
			Status:         StatusPending,
		},
		{
			ID:             StepCopyCode,
			Title:          "Copy Integration Code",
			Description:    "Copy the code snippet to your website",
			Action:         "Copy Code",
			Content:        "Paste this code into your HTML file where you want the checkout button to appear.",
			ValidationText: "Code copied to clipboard",
			Kind:           CopyIntegrationCode{Snippet: checkoutSnippet},
			Status:         StatusPending,
		},
		{
			ID:             StepEmailNotifications,
			Title:          "Confirm Email Notifications",
			Description:    "Set up payment confirmation emails",
			Action:         "Enable Notifications",
			Content:        "Email notifications keep you and your customers informed about payment status.",
			ValidationText: "Email notifications enabled",
			Kind:           EnableEmailNotifications{},
			Status:         StatusPending,
		},
		{
			ID:             StepSearchTransaction,
			Title:          "Search Transactions",
			Description:    "Learn to view and manage payments",
			Action:         "View Dashboard",
			Content:        "The transaction dashboard shows all your payments, refunds, and customer details.",
			ValidationText: "Dashboard accessed successfully",
			Kind:           SearchTransactions{DashboardURL: o.dashboardURL},
			Status:         StatusPending,
		},
	}
}

// Generate maps a goal to its ordered step sequence. Every step starts
// pending. A goal mentioning "subscription" (any case) switches the checkout
// step to recurring wording and rewrites the snippet's mode literal; no other
// keyword is recognized. Generate is pure and total over all strings.
func Generate(goal string, opts ...Option) Sequence {
	steps := BaseCatalog(opts...)

	if IsSubscriptionGoal(goal) {
		for i := range steps {
			switch steps[i].ID {
			case StepCheckoutButton:
				steps[i].Title = "Create Subscription Button"
				steps[i].Description = "Add a recurring payment button"
				steps[i].CodeSnippet = withSubscriptionMode(steps[i].CodeSnippet)
				steps[i].Kind = CreateCheckoutButton{Snippet: steps[i].CodeSnippet, Mode: ModeSubscription}
			case StepCopyCode:
				steps[i].Kind = CopyIntegrationCode{Snippet: withSubscriptionMode(checkoutSnippet)}
			}
		}
	}

	return steps
}

// IsSubscriptionGoal reports whether goal selects the subscription wording.
func IsSubscriptionGoal(goal string) bool {
	return strings.Contains(strings.ToLower(goal), subscriptionKeyword)
}

// withSubscriptionMode rewrites the first payment mode literal in snippet.
func withSubscriptionMode(snippet string) string {
	return strings.Replace(snippet,
		"mode: '"+string(ModePayment)+"'",
		"mode: '"+string(ModeSubscription)+"'",
		1)
}
