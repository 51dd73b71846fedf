package application

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/iota-uz/staffcal/pkg/eventbus"
	"github.com/iota-uz/staffcal/pkg/types"
)

// Controller is an HTTP surface registered on the router by a module.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module wires its services, controllers and locale files into the app.
type Module interface {
	Name() string
	Register(app Application) error
}

// Application is the registry shared by all modules.
type Application interface {
	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc
	EventPublisher() eventbus.EventBus
	Logger() *logrus.Logger
	Bundle() *i18n.Bundle
	GetSupportedLanguages() []string
	NavItems() []types.NavigationItem

	RegisterControllers(controllers ...Controller)
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	RegisterServices(services ...interface{})
	RegisterNavItems(items ...types.NavigationItem)
	RegisterLocaleFiles(fss ...*embed.FS)

	// Service returns the registered service instance of the same type as the
	// given zero value. Panics when the service was never registered.
	Service(service interface{}) interface{}
}

func LoadBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

func defaultSupportedLanguageCodes() []string {
	return []string{"en", "ru"}
}

type ApplicationOptions struct {
	EventBus           eventbus.EventBus
	Logger             *logrus.Logger
	Bundle             *i18n.Bundle
	SupportedLanguages []string
}

func New(opts *ApplicationOptions) Application {
	supportedLanguages := opts.SupportedLanguages
	if len(supportedLanguages) == 0 {
		supportedLanguages = defaultSupportedLanguageCodes()
	}

	return &application{
		eventPublisher:     opts.EventBus,
		logger:             opts.Logger,
		bundle:             opts.Bundle,
		controllers:        make(map[string]Controller),
		services:           make(map[reflect.Type]interface{}),
		supportedLanguages: supportedLanguages,
	}
}

type application struct {
	eventPublisher     eventbus.EventBus
	logger             *logrus.Logger
	bundle             *i18n.Bundle
	controllers        map[string]Controller
	controllerOrder    []string
	middleware         []mux.MiddlewareFunc
	services           map[reflect.Type]interface{}
	navItems           []types.NavigationItem
	supportedLanguages []string
}

func (a *application) Controllers() []Controller {
	out := make([]Controller, 0, len(a.controllerOrder))
	for _, key := range a.controllerOrder {
		out = append(out, a.controllers[key])
	}
	return out
}

func (a *application) Middleware() []mux.MiddlewareFunc {
	return a.middleware
}

func (a *application) EventPublisher() eventbus.EventBus {
	return a.eventPublisher
}

func (a *application) Logger() *logrus.Logger {
	return a.logger
}

func (a *application) Bundle() *i18n.Bundle {
	return a.bundle
}

func (a *application) GetSupportedLanguages() []string {
	return a.supportedLanguages
}

func (a *application) NavItems() []types.NavigationItem {
	return a.navItems
}

func (a *application) RegisterControllers(controllers ...Controller) {
	for _, c := range controllers {
		if _, exists := a.controllers[c.Key()]; !exists {
			a.controllerOrder = append(a.controllerOrder, c.Key())
		}
		a.controllers[c.Key()] = c
	}
}

func (a *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	a.middleware = append(a.middleware, middleware...)
}

func (a *application) RegisterServices(services ...interface{}) {
	for _, s := range services {
		a.services[reflect.TypeOf(s).Elem()] = s
	}
}

func (a *application) RegisterNavItems(items ...types.NavigationItem) {
	a.navItems = append(a.navItems, items...)
}

func (a *application) RegisterLocaleFiles(fss ...*embed.FS) {
	for _, fsys := range fss {
		if err := a.loadLocaleFiles(fsys); err != nil {
			panic(err)
		}
	}
}

func (a *application) loadLocaleFiles(fsys *embed.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".toml", ".json":
		default:
			return nil
		}
		data, err := fsys.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading locale file %q: %w", path, err)
		}
		if _, err := a.bundle.ParseMessageFileBytes(data, path); err != nil {
			return fmt.Errorf("error parsing locale file %q: %w", path, err)
		}
		return nil
	})
}

func (a *application) Service(service interface{}) interface{} {
	svc, ok := a.services[reflect.TypeOf(service)]
	if !ok {
		panic(fmt.Sprintf("service %s not found", reflect.TypeOf(service).Name()))
	}
	return svc
}
