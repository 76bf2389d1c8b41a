package constants

// Plugin slugs required by payment methods.
const (
	PluginWCPay          = "woocommerce-payments"
	PluginStripe         = "woocommerce-gateway-stripe"
	PluginPayPal         = "woocommerce-gateway-paypal-express-checkout"
	PluginKlarnaCheckout = "klarna-checkout-for-woocommerce"
	PluginKlarnaPayments = "klarna-payments-for-woocommerce"
	PluginSquare         = "woocommerce-square"
	PluginPayFast        = "woocommerce-payfast-gateway"
)

// PluginNames maps plugin slugs to their display names.
var PluginNames = map[string]string{
	PluginWCPay:          "WooCommerce Payments",
	PluginStripe:         "WooCommerce Stripe",
	PluginPayPal:         "WooCommerce PayPal",
	PluginKlarnaCheckout: "Klarna Checkout for WooCommerce",
	PluginKlarnaPayments: "Klarna Payments for WooCommerce",
	PluginSquare:         "WooCommerce Square",
	PluginPayFast:        "WooCommerce PayFast",
}
