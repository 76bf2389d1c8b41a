package business

// PaymentMethod is a catalog entry merged with the store's live settings
type PaymentMethod struct {
	Key            string   `json:"key"`
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	OptionName     string   `json:"option_name"`
	IsEnabled      bool     `json:"is_enabled"`
	IsConfigured   bool     `json:"is_configured"`
	Visible        bool     `json:"visible"`
	Plugins        []string `json:"plugins"`
	HasInlineSetup bool     `json:"has_inline_setup"`
	// HasContainer is false for methods that need no setup flow and can
	// only be toggled.
	HasContainer   bool     `json:"has_container"`
	HasCbdIndustry bool     `json:"has_cbd_industry"`
}

// ProfileItems holds the merchant onboarding answers that shape the catalog
type ProfileItems struct {
	Industry      []string `json:"industry"`
	SellingVenues string   `json:"selling_venues"`
	ProductTypes  []string `json:"product_types"`
}

// CatalogContext is everything ResolveCatalog needs to build the method list
type CatalogContext struct {
	CountryCode   string
	ActivePlugins []string
	Options       map[string]interface{}
	Profile       ProfileItems
}

// PaymentsUIState is the transient per-screen state of the payments task
type PaymentsUIState struct {
	EnabledMethods     map[string]bool `json:"enabled_methods"`
	ConfiguringMethods map[string]bool `json:"configuring_methods"`
	RecommendedMethod  string          `json:"recommended_method"`
}

// Clone returns a deep copy of the state
func (s PaymentsUIState) Clone() PaymentsUIState {
	out := PaymentsUIState{
		EnabledMethods:     make(map[string]bool, len(s.EnabledMethods)),
		ConfiguringMethods: make(map[string]bool, len(s.ConfiguringMethods)),
		RecommendedMethod:  s.RecommendedMethod,
	}
	for k, v := range s.EnabledMethods {
		out.EnabledMethods[k] = v
	}
	for k, v := range s.ConfiguringMethods {
		out.ConfiguringMethods[k] = v
	}
	return out
}

// ConfigureMode says how a method's setup flow was opened
type ConfigureMode string

const (
	ConfigureModeInline   ConfigureMode = "inline"
	ConfigureModeFullPage ConfigureMode = "full_page"
)

// InstallStep is the plugin installation step shown in a method's setup flow
type InstallStep struct {
	Key              string   `json:"key"`
	Label            string   `json:"label"`
	PluginSlugs      []string `json:"plugin_slugs"`
	PluginsToInstall []string `json:"plugins_to_install"`
	IsComplete       bool     `json:"is_complete"`
}

// SetupView is a method whose setup flow is currently open
type SetupView struct {
	Method         PaymentMethod     `json:"method"`
	Mode           ConfigureMode     `json:"mode"`
	InstallStep    *InstallStep      `json:"install_step,omitempty"`
	Query          map[string]string `json:"query"`
	HasCbdIndustry bool              `json:"has_cbd_industry"`
}

// PaymentMethodCard is the list entry shown for one visible method
type PaymentMethodCard struct {
	PaymentMethod
	Enabled         bool `json:"enabled"`
	Configuring     bool `json:"configuring"`
	IsRecommended   bool `json:"is_recommended"`
	ShowRibbon      bool `json:"show_recommended_ribbon"`
	ShowPill        bool `json:"show_recommended_pill"`
	ShowSetupButton bool `json:"show_setup_button"`
}

// Payments task actions offered at the bottom of the method list
const (
	PaymentsActionSkip = "skip"
	PaymentsActionDone = "done"
)

// PaymentsTaskView is the full read model of the payments task
type PaymentsTaskView struct {
	Methods           []PaymentMethodCard `json:"methods"`
	SetupViews        []SetupView         `json:"setup_views"`
	State             PaymentsUIState     `json:"state"`
	ConfiguredMethods []string            `json:"configured_methods"`
	Action            string              `json:"action"`
}

// OptionRequestState is the store's projection of the last write touching an option
type OptionRequestState struct {
	Requesting bool  `json:"requesting"`
	Err        error `json:"-"`
}

// Notice is a user-facing message raised by a transition
type Notice struct {
	ID       string `json:"id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// NavigationState is the router's current location
type NavigationState struct {
	Path  string            `json:"path"`
	Query map[string]string `json:"query"`
}
