package services

import (
	"strings"

	"github.com/cyphera/store-admin/libs/go/constants"
	"github.com/cyphera/store-admin/libs/go/types/business"
)

// Payment method keys
const (
	MethodWCPay          = "wcpay"
	MethodStripe         = "stripe"
	MethodPayPal         = "paypal"
	MethodKlarnaCheckout = "klarna_checkout"
	MethodKlarnaPayments = "klarna_payments"
	MethodSquare         = "square"
	MethodPayFast        = "payfast"
	MethodCOD            = "cod"
	MethodBACS           = "bacs"
)

const cbdIndustry = "cbd-other-hemp-derived-products"

var (
	stripeCountries = []string{
		"AU", "AT", "BE", "CA", "CZ", "DK", "EE", "FI", "FR", "DE", "GR", "HK", "IE", "IT", "JP",
		"LV", "LT", "LU", "MY", "MT", "MX", "NL", "NZ", "NO", "PL", "PT", "RO", "SG", "SK", "SI",
		"ES", "SE", "CH", "GB", "US", "PR",
	}
	squareCountries         = []string{"US", "CA", "JP", "GB", "AU"}
	squareSellingVenues     = []string{"brick-mortar", "brick-mortar-other"}
	klarnaCheckoutCountries = []string{"SE", "FI", "NO", "NL"}
	klarnaPaymentsCountries = []string{"DK", "DE", "AT"}
	wcPayCountries          = []string{"US"}
	payFastCountries        = []string{"ZA"}
)

// GetCountryCode extracts the country from a "COUNTRY:STATE" store setting
func GetCountryCode(defaultCountry string) string {
	if defaultCountry == "" {
		return ""
	}
	country, _, _ := strings.Cut(defaultCountry, ":")
	return strings.ToUpper(strings.TrimSpace(country))
}

// ResolveCatalog builds the ordered payment method list for a store. It has
// no side effects.
func ResolveCatalog(catalogCtx business.CatalogContext) []business.PaymentMethod {
	country := catalogCtx.CountryCode
	hasCbd := contains(catalogCtx.Profile.Industry, cbdIndustry)
	opts := catalogCtx.Options
	active := catalogCtx.ActivePlugins

	methods := []business.PaymentMethod{
		{
			Key:            MethodWCPay,
			Title:          "WooCommerce Payments",
			Content:        "Manage transactions without leaving your WordPress Dashboard. Only with WooCommerce Payments.",
			OptionName:     constants.OptionWCPaySettings,
			Plugins:        []string{constants.PluginWCPay},
			Visible:        contains(wcPayCountries, country) && !hasCbd,
			IsConfigured:   contains(active, constants.PluginWCPay) && hasAll(settings(opts, constants.OptionWCPaySettings), "account_id"),
			HasInlineSetup: true,
			HasContainer:   true,
		},
		{
			Key:          MethodStripe,
			Title:        "Credit cards - powered by Stripe",
			Content:      "Accept debit and credit cards in 135+ currencies, methods such as Alipay, and one-touch checkout with Apple Pay.",
			OptionName:   constants.OptionStripeSettings,
			Plugins:      []string{constants.PluginStripe},
			Visible:      contains(stripeCountries, country) && !hasCbd,
			IsConfigured: stripeConfigured(settings(opts, constants.OptionStripeSettings)),
			HasContainer: true,
		},
		{
			Key:          MethodPayPal,
			Title:        "PayPal Checkout",
			Content:      "Safe and secure payments using credit cards or your customer's PayPal account.",
			OptionName:   constants.OptionPayPalSettings,
			Plugins:      []string{constants.PluginPayPal},
			Visible:      !hasCbd,
			IsConfigured: payPalConfigured(settings(opts, constants.OptionPayPalSettings)),
			HasContainer: true,
		},
		{
			Key:          MethodKlarnaCheckout,
			Title:        "Klarna Checkout",
			Content:      "Choose the payment that you want, pay now, pay later or slice it. No credit card numbers, no passwords, no worries.",
			OptionName:   constants.OptionKlarnaCheckoutSettings,
			Plugins:      []string{constants.PluginKlarnaCheckout},
			Visible:      contains(klarnaCheckoutCountries, country) && !hasCbd,
			IsConfigured: contains(active, constants.PluginKlarnaCheckout),
			HasContainer: true,
		},
		{
			Key:          MethodKlarnaPayments,
			Title:        "Klarna Payments",
			Content:      "Choose the payment that you want, pay now, pay later or slice it. No credit card numbers, no passwords, no worries.",
			OptionName:   constants.OptionKlarnaPaymentsSettings,
			Plugins:      []string{constants.PluginKlarnaPayments},
			Visible:      contains(klarnaPaymentsCountries, country) && !hasCbd,
			IsConfigured: contains(active, constants.PluginKlarnaPayments),
			HasContainer: true,
		},
		{
			Key:        MethodSquare,
			Title:      "Square",
			Content:    "Securely accept credit and debit cards with one low rate, no surprise fees (custom rates available).",
			OptionName: constants.OptionSquareSettings,
			Plugins:    []string{constants.PluginSquare},
			Visible: contains(squareCountries, country) &&
				(hasCbd || contains(squareSellingVenues, catalogCtx.Profile.SellingVenues)),
			IsConfigured:   contains(active, constants.PluginSquare) && nonEmpty(opts[constants.OptionSquareRefreshTokens]),
			HasContainer:   true,
			HasCbdIndustry: hasCbd,
		},
		{
			Key:          MethodPayFast,
			Title:        "PayFast",
			Content:      "The PayFast extension for WooCommerce enables you to accept payments by Credit Card and EFT via one of South Africa's most popular payment gateways.",
			OptionName:   constants.OptionPayFastSettings,
			Plugins:      []string{constants.PluginPayFast},
			Visible:      contains(payFastCountries, country) && !hasCbd,
			IsConfigured: hasAll(settings(opts, constants.OptionPayFastSettings), "merchant_id", "merchant_key", "pass_phrase"),
			HasContainer: true,
		},
		{
			Key:          MethodCOD,
			Title:        "Cash on delivery",
			Content:      "Take payments in cash upon delivery.",
			OptionName:   constants.OptionCODSettings,
			Visible:      true,
			IsConfigured: true,
		},
		{
			Key:            MethodBACS,
			Title:          "Direct bank transfer",
			Content:        "Take payments via bank transfer.",
			OptionName:     constants.OptionBACSSettings,
			Visible:        true,
			IsConfigured:   nonEmpty(opts[constants.OptionBACSAccounts]),
			HasInlineSetup: true,
			HasContainer:   true,
		},
	}

	for i := range methods {
		methods[i].IsEnabled = settings(opts, methods[i].OptionName)["enabled"] == constants.OptionYes
	}

	return methods
}

func stripeConfigured(s map[string]interface{}) bool {
	if s["testmode"] == constants.OptionYes {
		return hasAll(s, "test_publishable_key", "test_secret_key")
	}
	return hasAll(s, "publishable_key", "secret_key")
}

func payPalConfigured(s map[string]interface{}) bool {
	if s["environment"] == "sandbox" {
		return hasAll(s, "sandbox_api_username", "sandbox_api_password")
	}
	return hasAll(s, "api_username", "api_password")
}

// settings returns the option value as an object, or an empty one
func settings(opts map[string]interface{}, name string) map[string]interface{} {
	if m, ok := opts[name].(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func hasAll(s map[string]interface{}, fields ...string) bool {
	for _, field := range fields {
		if !nonEmpty(s[field]) {
			return false
		}
	}
	return true
}

func nonEmpty(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case []interface{}:
		return len(val) > 0
	case []string:
		return len(val) > 0
	case map[string]interface{}:
		return len(val) > 0
	default:
		return true
	}
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
