package plugins

import (
	"context"
	"sort"

	"github.com/cyphera/store-admin/libs/go/constants"
	"github.com/cyphera/store-admin/libs/go/logger"
	"github.com/pkg/errors"
)

// ErrUnknownPlugin is reported when asked to install a slug with no known package
var ErrUnknownPlugin = errors.New("unknown plugin")

// OptionsReadWriter is the part of the options store the installer needs
type OptionsReadWriter interface {
	GetOptions(ctx context.Context, names []string) (map[string]interface{}, error)
	SaveOptions(ctx context.Context, values map[string]interface{}) error
}

// Installer activates plugins by adding them to the active_plugins option
type Installer struct {
	store OptionsReadWriter
	log   *logger.StructuredLogger
}

// NewInstaller creates an installer over the options store
func NewInstaller(store OptionsReadWriter) *Installer {
	return &Installer{
		store: store,
		log:   logger.NewStructuredLogger(logger.ComponentPlugins),
	}
}

// ActivePlugins returns the slugs of every active plugin
func (i *Installer) ActivePlugins(ctx context.Context) ([]string, error) {
	opts, err := i.store.GetOptions(ctx, []string{constants.OptionActivePlugins})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read active plugins")
	}
	return toStringSlice(opts[constants.OptionActivePlugins]), nil
}

// Install activates slugs in the background and reports through exactly one
// of the callbacks.
func (i *Installer) Install(ctx context.Context, slugs []string, onComplete func(), onError func(error)) {
	installCtx := context.WithoutCancel(ctx)
	go func() {
		if err := i.install(installCtx, slugs); err != nil {
			i.log.WithField("plugins", slugs).Error("Plugin install failed", err)
			if onError != nil {
				onError(err)
			}
			return
		}
		i.log.WithField("plugins", slugs).Info("Plugins installed")
		if onComplete != nil {
			onComplete()
		}
	}()
}

func (i *Installer) install(ctx context.Context, slugs []string) error {
	active, err := i.ActivePlugins(ctx)
	if err != nil {
		return err
	}

	set := make(map[string]struct{}, len(active)+len(slugs))
	for _, slug := range active {
		set[slug] = struct{}{}
	}

	// Already active slugs need no package, only new ones must be known.
	for _, slug := range slugs {
		if _, ok := set[slug]; ok {
			continue
		}
		if _, ok := constants.PluginNames[slug]; !ok {
			return errors.Wrapf(ErrUnknownPlugin, "cannot install %s", slug)
		}
	}
	for _, slug := range slugs {
		set[slug] = struct{}{}
	}
	merged := make([]string, 0, len(set))
	for slug := range set {
		merged = append(merged, slug)
	}
	sort.Strings(merged)

	return i.store.SaveOptions(ctx, map[string]interface{}{
		constants.OptionActivePlugins: merged,
	})
}

// toStringSlice accepts both []string and the []interface{} produced by JSON decoding
func toStringSlice(v interface{}) []string {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
