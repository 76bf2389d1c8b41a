package constants

// Store option names read and written by the dashboard.
const (
	OptionDefaultCountry         = "woocommerce_default_country"
	OptionWCPaySettings          = "woocommerce_woocommerce_payments_settings"
	OptionStripeSettings         = "woocommerce_stripe_settings"
	OptionPayPalSettings         = "woocommerce_ppec_paypal_settings"
	OptionPayFastSettings        = "woocommerce_payfast_settings"
	OptionSquareSettings         = "woocommerce_square_credit_card_settings"
	OptionKlarnaPaymentsSettings = "woocommerce_klarna_payments_settings"
	OptionKlarnaCheckoutSettings = "woocommerce_kco_settings"
	OptionSquareRefreshTokens    = "wc_square_refresh_tokens"
	OptionCODSettings            = "woocommerce_cod_settings"
	OptionBACSSettings           = "woocommerce_bacs_settings"
	OptionBACSAccounts           = "woocommerce_bacs_accounts"
	OptionTaskListPayments       = "woocommerce_task_list_payments"
	OptionMarketingWelcomeHidden = "woocommerce_marketing_overview_welcome_hidden"
	OptionActivePlugins          = "active_plugins"
	OptionOnboardingProfile      = "woocommerce_onboarding_profile"
)

// PaymentOptionNames lists every option the payments task reads to build
// its method catalog.
var PaymentOptionNames = []string{
	OptionDefaultCountry,
	OptionWCPaySettings,
	OptionStripeSettings,
	OptionPayPalSettings,
	OptionPayFastSettings,
	OptionSquareSettings,
	OptionKlarnaPaymentsSettings,
	OptionKlarnaCheckoutSettings,
	OptionSquareRefreshTokens,
	OptionCODSettings,
	OptionBACSSettings,
	OptionBACSAccounts,
}
