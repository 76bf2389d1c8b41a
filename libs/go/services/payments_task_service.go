package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cyphera/store-admin/libs/go/constants"
	"github.com/cyphera/store-admin/libs/go/interfaces"
	"github.com/cyphera/store-admin/libs/go/logger"
	"github.com/cyphera/store-admin/libs/go/types/business"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrUnknownPaymentMethod is returned for a key missing from the catalog
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	// ErrPaymentMethodHidden is returned when acting on a method the store cannot offer
	ErrPaymentMethodHidden = errors.New("payment method is not available for this store")
	// ErrNoSetupFlow is returned when configuring a method that can only be toggled
	ErrNoSetupFlow = errors.New("payment method has no setup flow")
)

const (
	msgUpdateSettingsFailed = "There was a problem updating settings for %s"
	msgPaymentsTaskDone     = "💰 Ka-ching! Your store can now accept payments 💳"
	defaultConjunction      = "and"
	installStepKey          = "install"
)

// PaymentsTaskConfig holds the collaborators of the payments task
type PaymentsTaskConfig struct {
	Options   interfaces.OptionsStore
	Notifier  interfaces.Notifier
	Router    interfaces.Router
	Recorder  interfaces.EventRecorder
	Installer interfaces.PluginInstaller
	// Now defaults to time.Now
	Now func() time.Time
	// Conjunction joins plugin names in install labels, "and" by default
	Conjunction string
}

// PaymentsTaskService holds the payments screen state for one store and
// applies its transitions. Durable state lives in the options store; the
// service only keeps what the screen would keep while it is open.
type PaymentsTaskService struct {
	options     interfaces.OptionsStore
	notifier    interfaces.Notifier
	router      interfaces.Router
	recorder    interfaces.EventRecorder
	installer   interfaces.PluginInstaller
	now         func() time.Time
	conjunction string
	log         *logger.StructuredLogger

	mu            sync.Mutex
	initialized   bool
	methods       []business.PaymentMethod
	settings      map[string]interface{}
	activePlugins []string
	state         business.PaymentsUIState
	requesting    map[string]bool
	failed        map[string]bool
}

// taskSnapshot is everything pulled from the collaborators in one refresh
type taskSnapshot struct {
	methods       []business.PaymentMethod
	settings      map[string]interface{}
	activePlugins []string
	requesting    map[string]bool
	failed        map[string]bool
}

// NewPaymentsTaskService creates a payments task over the given collaborators
func NewPaymentsTaskService(cfg PaymentsTaskConfig) *PaymentsTaskService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	conjunction := cfg.Conjunction
	if conjunction == "" {
		conjunction = defaultConjunction
	}

	return &PaymentsTaskService{
		options:     cfg.Options,
		notifier:    cfg.Notifier,
		router:      cfg.Router,
		recorder:    cfg.Recorder,
		installer:   cfg.Installer,
		now:         now,
		conjunction: conjunction,
		log:         logger.NewStructuredLogger(logger.ComponentPayments),
		state:       newUIState(),
		requesting:  map[string]bool{},
		failed:      map[string]bool{},
	}
}

func newUIState() business.PaymentsUIState {
	return business.PaymentsUIState{
		EnabledMethods:     map[string]bool{},
		ConfiguringMethods: map[string]bool{},
		RecommendedMethod:  MethodStripe,
	}
}

// Initialize pulls a fresh snapshot and seeds the screen state from it,
// discarding any previous state.
func (s *PaymentsTaskService) Initialize(ctx context.Context) error {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.applySnapshot(snap)
	s.state = newUIState()
	for _, method := range snap.methods {
		s.state.EnabledMethods[method.Key] = method.IsEnabled
		if method.Key == MethodWCPay && method.Visible {
			s.state.RecommendedMethod = MethodWCPay
		}
	}
	s.initialized = true

	return nil
}

// Refresh pulls a fresh snapshot and raises an error notice for every method
// whose settings write finished with an error since the previous refresh.
func (s *PaymentsTaskService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	initialized := s.initialized
	s.mu.Unlock()
	if !initialized {
		return s.Initialize(ctx)
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	var failedTitles []string
	for _, method := range snap.methods {
		key := method.Key
		if s.requesting[key] && !snap.requesting[key] && snap.failed[key] {
			failedTitles = append(failedTitles, method.Title)
		}
		if _, ok := s.state.EnabledMethods[key]; !ok {
			s.state.EnabledMethods[key] = method.IsEnabled
		}
	}
	s.applySnapshot(snap)
	s.mu.Unlock()

	for _, title := range failedTitles {
		s.notifier.Notify(constants.NoticeError, fmt.Sprintf(msgUpdateSettingsFailed, title))
	}

	return nil
}

func (s *PaymentsTaskService) loadSnapshot(ctx context.Context) (*taskSnapshot, error) {
	names := append(append([]string{}, constants.PaymentOptionNames...), constants.OptionOnboardingProfile)
	var (
		opts   map[string]interface{}
		active []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		opts, err = s.options.GetOptions(gctx, names)
		return errors.Wrap(err, "failed to load payment options")
	})
	g.Go(func() error {
		var err error
		active, err = s.installer.ActivePlugins(gctx)
		return errors.Wrap(err, "failed to load active plugins")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	country, _ := opts[constants.OptionDefaultCountry].(string)
	methods := ResolveCatalog(business.CatalogContext{
		CountryCode:   GetCountryCode(country),
		ActivePlugins: active,
		Options:       opts,
		Profile:       parseProfile(opts[constants.OptionOnboardingProfile]),
	})

	snap := &taskSnapshot{
		methods:       methods,
		settings:      opts,
		activePlugins: active,
		requesting:    make(map[string]bool, len(methods)),
		failed:        make(map[string]bool, len(methods)),
	}
	for _, method := range methods {
		reqState := s.options.RequestState([]string{method.OptionName})
		snap.requesting[method.Key] = reqState.Requesting
		snap.failed[method.Key] = reqState.Err != nil
	}

	return snap, nil
}

func (s *PaymentsTaskService) applySnapshot(snap *taskSnapshot) {
	s.methods = snap.methods
	s.settings = snap.settings
	s.activePlugins = snap.activePlugins
	s.requesting = snap.requesting
	s.failed = snap.failed
}

// ToggleMethod flips a method's enabled flag and persists it into the
// method's settings option.
func (s *PaymentsTaskService) ToggleMethod(ctx context.Context, key string) error {
	s.mu.Lock()
	method, err := s.visibleMethod(key)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	enabled := !s.state.EnabledMethods[key]
	s.state.EnabledMethods[key] = enabled

	updated := make(map[string]interface{})
	if current, ok := s.settings[method.OptionName].(map[string]interface{}); ok {
		for k, v := range current {
			updated[k] = v
		}
	}
	updated["enabled"] = yesNo(enabled)
	s.settings[method.OptionName] = updated
	s.mu.Unlock()

	s.recorder.Record(constants.EventPaymentToggle, map[string]interface{}{
		"enabled":        enabled,
		"payment_method": key,
	})

	writeErr := s.options.UpdateOptions(ctx, map[string]interface{}{method.OptionName: updated})

	// The write is in flight as far as this screen knows; the next refresh
	// observes how it finished.
	s.mu.Lock()
	s.requesting[key] = writeErr == nil
	s.mu.Unlock()

	if writeErr != nil {
		s.notifier.Notify(constants.NoticeError, fmt.Sprintf(msgUpdateSettingsFailed, method.Title))
		return errors.Wrapf(writeErr, "failed to update settings for %s", key)
	}

	s.log.LogPaymentMethodTransition(key, "toggle", map[string]interface{}{"enabled": enabled})
	return nil
}

// BeginConfigure opens a method's setup flow. Methods with inline setup are
// marked configuring in place; others move the dashboard to the method's
// full page setup through the query string.
func (s *PaymentsTaskService) BeginConfigure(ctx context.Context, key string) (business.ConfigureMode, error) {
	s.mu.Lock()
	method, err := s.visibleMethod(key)
	if err != nil {
		s.mu.Unlock()
		return "", err
	}
	if !method.HasContainer {
		s.mu.Unlock()
		return "", errors.Wrapf(ErrNoSetupFlow, "cannot configure %s", key)
	}
	allKeys := s.methodKeys()
	if method.HasInlineSetup {
		s.state.ConfiguringMethods[key] = true
	}
	s.mu.Unlock()

	s.recorder.Record(constants.EventPaymentSetup, map[string]interface{}{
		"options":  allKeys,
		"selected": key,
	})

	if method.HasInlineSetup {
		s.log.LogPaymentMethodTransition(key, "configure", map[string]interface{}{"mode": business.ConfigureModeInline})
		return business.ConfigureModeInline, nil
	}

	query := s.router.CurrentQuery()
	query[constants.MethodQueryParam] = key
	s.router.Navigate(s.router.CurrentPath(), query)

	s.log.LogPaymentMethodTransition(key, "configure", map[string]interface{}{"mode": business.ConfigureModeFullPage})
	return business.ConfigureModeFullPage, nil
}

// GetCurrentMethod returns the method selected by the "method" query parameter
func (s *PaymentsTaskService) GetCurrentMethod() (business.PaymentMethod, bool) {
	selected := s.router.CurrentQuery()[constants.MethodQueryParam]
	if selected == "" {
		return business.PaymentMethod{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findMethod(selected)
}

// MarkConfigured enables a method once its setup flow succeeded and returns
// the dashboard to the payments task.
func (s *PaymentsTaskService) MarkConfigured(key string) error {
	s.mu.Lock()
	if _, ok := s.findMethod(key); !ok {
		s.mu.Unlock()
		return errors.Wrapf(ErrUnknownPaymentMethod, "cannot mark %s configured", key)
	}
	s.state.EnabledMethods[key] = true
	s.state.ConfiguringMethods[key] = false
	s.mu.Unlock()

	s.router.Navigate(constants.DashboardRootPath, map[string]string{
		constants.TaskQueryParam: constants.PaymentsTaskName,
	})

	s.recorder.Record(constants.EventPaymentConnectMethod, map[string]interface{}{
		"payment_method": key,
	})

	s.log.LogPaymentMethodTransition(key, "configured", nil)
	return nil
}

// MarkConfigurationFinished closes a method's inline setup without enabling it
func (s *PaymentsTaskService) MarkConfigurationFinished(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findMethod(key); !ok {
		return errors.Wrapf(ErrUnknownPaymentMethod, "cannot finish configuring %s", key)
	}
	s.state.ConfiguringMethods[key] = false
	return nil
}

// GetInstallStep returns the plugin install step for a method, or nil when
// the method needs no plugins.
func (s *PaymentsTaskService) GetInstallStep(method business.PaymentMethod) *business.InstallStep {
	s.mu.Lock()
	active := append([]string{}, s.activePlugins...)
	s.mu.Unlock()

	return BuildInstallStep(method, active, s.conjunction)
}

// BuildInstallStep derives the install step of a method from the active plugin list
func BuildInstallStep(method business.PaymentMethod, activePlugins []string, conjunction string) *business.InstallStep {
	if len(method.Plugins) == 0 {
		return nil
	}

	toInstall := make([]string, 0, len(method.Plugins))
	for _, slug := range method.Plugins {
		if !contains(activePlugins, slug) {
			toInstall = append(toInstall, slug)
		}
	}

	names := make([]string, len(method.Plugins))
	for i, slug := range method.Plugins {
		if name, ok := constants.PluginNames[slug]; ok {
			names[i] = name
		} else {
			names[i] = slug
		}
	}

	return &business.InstallStep{
		Key:              installStepKey,
		Label:            "Install " + strings.Join(names, " "+conjunction+" "),
		PluginSlugs:      append([]string{}, method.Plugins...),
		PluginsToInstall: toInstall,
		IsComplete:       len(toInstall) == 0,
	}
}

// InstallPlugins hands a method's plugins to the installer. A failed
// install closes the method's setup without enabling it.
func (s *PaymentsTaskService) InstallPlugins(ctx context.Context, key string) error {
	s.mu.Lock()
	method, ok := s.findMethod(key)
	s.mu.Unlock()
	if !ok {
		return errors.Wrapf(ErrUnknownPaymentMethod, "cannot install plugins for %s", key)
	}
	if len(method.Plugins) == 0 {
		return nil
	}

	plugins := append([]string{}, method.Plugins...)
	s.installer.Install(ctx, plugins,
		func() {
			s.recorder.Record(constants.EventPaymentInstallMethod, map[string]interface{}{
				"plugins": plugins,
			})
			if err := s.Refresh(context.Background()); err != nil {
				s.log.WithField("payment_method", key).Error("Failed to refresh after plugin install", err)
			}
		},
		func(err error) {
			s.log.WithField("payment_method", key).Error("Plugin install failed", err)
			if finishErr := s.MarkConfigurationFinished(key); finishErr != nil {
				s.log.WithField("payment_method", key).Error("Failed to reset configuring state", finishErr)
			}
		},
	)

	return nil
}

// SetupViews lists the methods whose setup flow is open: the method selected
// through the query string and every method configuring inline.
func (s *PaymentsTaskService) SetupViews() []business.SetupView {
	query := s.router.CurrentQuery()
	selected := query[constants.MethodQueryParam]

	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]business.SetupView, 0)
	for _, method := range s.methods {
		var mode business.ConfigureMode
		switch {
		case selected != "" && method.Key == selected:
			mode = business.ConfigureModeFullPage
		case s.state.ConfiguringMethods[method.Key]:
			mode = business.ConfigureModeInline
		default:
			continue
		}
		views = append(views, business.SetupView{
			Method:         method,
			Mode:           mode,
			InstallStep:    BuildInstallStep(method, s.activePlugins, s.conjunction),
			Query:          query,
			HasCbdIndustry: method.HasCbdIndustry,
		})
	}
	return views
}

// CompleteTask records the task as done and returns to the dashboard
func (s *PaymentsTaskService) CompleteTask(ctx context.Context) error {
	s.mu.Lock()
	configured := s.configuredKeys()
	s.mu.Unlock()

	err := s.options.UpdateOptions(ctx, map[string]interface{}{
		constants.OptionTaskListPayments: map[string]interface{}{
			"completed": 1,
			"timestamp": s.now().Unix(),
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to record payments task completion")
	}

	s.recorder.Record(constants.EventPaymentDone, map[string]interface{}{
		"configured": configured,
	})
	s.notifier.Notify(constants.NoticeSuccess, msgPaymentsTaskDone)
	s.router.Navigate(constants.DashboardRootPath, map[string]string{})

	s.log.WithField("configured", configured).Info("Payments task completed")
	return nil
}

// SkipTask records that the store takes no payments and returns to the
// dashboard. The screen only offers it while no method is configured; that
// is not enforced here.
func (s *PaymentsTaskService) SkipTask(ctx context.Context) error {
	s.mu.Lock()
	allKeys := s.methodKeys()
	configured := s.configuredKeys()
	s.mu.Unlock()

	if len(configured) > 0 {
		s.log.WithField("configured", configured).Warn("Payments task skipped with configured methods")
	}

	err := s.options.UpdateOptions(ctx, map[string]interface{}{
		constants.OptionTaskListPayments: map[string]interface{}{
			"skipped":   1,
			"timestamp": s.now().Unix(),
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to record payments task skip")
	}

	s.recorder.Record(constants.EventPaymentSkipTask, map[string]interface{}{
		"options": allKeys,
	})
	s.router.Navigate(constants.DashboardRootPath, map[string]string{})

	s.log.Info("Payments task skipped")
	return nil
}

// State returns a copy of the screen state
func (s *PaymentsTaskService) State() business.PaymentsUIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Methods returns the current catalog
func (s *PaymentsTaskService) Methods() []business.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]business.PaymentMethod{}, s.methods...)
}

// View builds the read model of the payments screen
func (s *PaymentsTaskService) View() business.PaymentsTaskView {
	setupViews := s.SetupViews()

	s.mu.Lock()
	defer s.mu.Unlock()

	cards := make([]business.PaymentMethodCard, 0, len(s.methods))
	for _, method := range s.methods {
		if !method.Visible {
			continue
		}
		recommended := method.Key == s.state.RecommendedMethod && !method.IsConfigured
		cards = append(cards, business.PaymentMethodCard{
			PaymentMethod:   method,
			Enabled:         s.state.EnabledMethods[method.Key],
			Configuring:     s.state.ConfiguringMethods[method.Key],
			IsRecommended:   recommended,
			ShowRibbon:      recommended && method.Key != MethodWCPay,
			ShowPill:        recommended && method.Key == MethodWCPay,
			ShowSetupButton: method.HasContainer && !method.IsConfigured,
		})
	}

	configured := s.configuredKeys()
	action := business.PaymentsActionDone
	if len(configured) == 0 {
		action = business.PaymentsActionSkip
	}

	return business.PaymentsTaskView{
		Methods:           cards,
		SetupViews:        setupViews,
		State:             s.state.Clone(),
		ConfiguredMethods: configured,
		Action:            action,
	}
}

// findMethod must be called with mu held
func (s *PaymentsTaskService) findMethod(key string) (business.PaymentMethod, bool) {
	for _, method := range s.methods {
		if method.Key == key {
			return method, true
		}
	}
	return business.PaymentMethod{}, false
}

// visibleMethod must be called with mu held
func (s *PaymentsTaskService) visibleMethod(key string) (business.PaymentMethod, error) {
	method, ok := s.findMethod(key)
	if !ok {
		return business.PaymentMethod{}, errors.Wrapf(ErrUnknownPaymentMethod, "method %s", key)
	}
	if !method.Visible {
		return business.PaymentMethod{}, errors.Wrapf(ErrPaymentMethodHidden, "method %s", key)
	}
	return method, nil
}

func (s *PaymentsTaskService) methodKeys() []string {
	keys := make([]string, len(s.methods))
	for i, method := range s.methods {
		keys[i] = method.Key
	}
	return keys
}

func (s *PaymentsTaskService) configuredKeys() []string {
	keys := make([]string, 0)
	for _, method := range s.methods {
		if method.IsConfigured {
			keys = append(keys, method.Key)
		}
	}
	return keys
}

func yesNo(v bool) string {
	if v {
		return constants.OptionYes
	}
	return constants.OptionNo
}

// parseProfile reads the onboarding profile option. Industry entries may be
// plain slugs or objects with a "slug" field.
func parseProfile(raw interface{}) business.ProfileItems {
	var profile business.ProfileItems
	m, ok := raw.(map[string]interface{})
	if !ok {
		return profile
	}

	if list, ok := m["industry"].([]interface{}); ok {
		for _, item := range list {
			switch v := item.(type) {
			case string:
				profile.Industry = append(profile.Industry, v)
			case map[string]interface{}:
				if slug, ok := v["slug"].(string); ok {
					profile.Industry = append(profile.Industry, slug)
				}
			}
		}
	}
	if venues, ok := m["selling_venues"].(string); ok {
		profile.SellingVenues = venues
	}
	if list, ok := m["product_types"].([]interface{}); ok {
		for _, item := range list {
			if v, ok := item.(string); ok {
				profile.ProductTypes = append(profile.ProductTypes, v)
			}
		}
	}
	sort.Strings(profile.ProductTypes)

	return profile
}
