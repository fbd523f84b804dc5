package decl

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dball/characteristic/internal/attrs"
	. "github.com/dball/characteristic/internal/types"
	"github.com/dball/characteristic/pkg/record"
)

// Dynamic is the go type of declared records.
type Dynamic = map[string]any

// Kind is a declared record kind.
type Kind = record.Kind[Dynamic]

// Record is a record of a declared kind.
type Record = record.Record[Dynamic]

// Config configures the composition of declared kinds.
type Config struct {
	// Degree is the btree degree of the kinds' sorted sets.
	Degree int
	// Logger logs composition. It defaults to a no-op logger.
	Logger *zap.Logger
}

// Catalog holds the kinds composed from a declarations file.
type Catalog struct {
	kinds map[string]*Kind
	order []*Kind
}

// Compose composes the kinds declared in the file, in order.
func Compose(file *File, config Config) (catalog *Catalog, err error) {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	catalog = &Catalog{kinds: make(map[string]*Kind, len(file.Kinds))}
	for _, kd := range file.Kinds {
		if _, ok := catalog.kinds[kd.Name]; ok {
			catalog = nil
			err = NewError("decl.duplicateKind", "type", kd.Name)
			return
		}
		var decls []any
		decls, err = kd.decls()
		if err != nil {
			catalog = nil
			return
		}
		var kind *Kind
		kind, err = record.Define[Dynamic](decls, record.Config[Dynamic]{
			Name:     kd.Name,
			Defaults: kd.Defaults,
			Mutable:  kd.Mutable,
			Degree:   config.Degree,
			Logger:   logger,
		})
		if err != nil {
			catalog = nil
			err = fmt.Errorf("kind %s: %w", kd.Name, err)
			return
		}
		catalog.kinds[kd.Name] = kind
		catalog.order = append(catalog.order, kind)
	}
	return
}

func (kd KindDecl) decls() (decls []any, err error) {
	decls = make([]any, len(kd.Attributes))
	for i, ad := range kd.Attributes {
		var opts []attrs.Option
		if ad.HasDefault {
			opts = append(opts, attrs.DefaultValue(ad.Default))
		}
		if ad.Factory != "" {
			factory, ok := factories[ad.Factory]
			if !ok {
				err = NewError("decl.unknownFactory", "type", kd.Name, "attr", ad.Name, "factory", ad.Factory)
				return
			}
			opts = append(opts, attrs.DefaultFactory(factory))
		}
		var spec attrs.Spec
		spec, err = attrs.New(ad.Name, opts...)
		if err != nil {
			if e, ok := err.(Error); ok {
				e.Context["type"] = kd.Name
			}
			return
		}
		decls[i] = spec
	}
	return
}

// Kind returns the kind of the given name.
func (catalog *Catalog) Kind(name string) (kind *Kind, ok bool) {
	kind, ok = catalog.kinds[name]
	return
}

// Kinds returns the kinds in declared order.
func (catalog *Catalog) Kinds() []*Kind {
	return append([]*Kind(nil), catalog.order...)
}

// Build constructs the declared records, in order.
func (catalog *Catalog) Build(decls []RecordDecl) (records []*Record, err error) {
	records = make([]*Record, 0, len(decls))
	for i, rd := range decls {
		kind, ok := catalog.kinds[rd.Kind]
		if !ok {
			records = nil
			err = NewError("decl.unknownKind", "type", rd.Kind, "index", i)
			return
		}
		var r *Record
		r, err = kind.New(record.Args(rd.Values))
		if err != nil {
			records = nil
			err = fmt.Errorf("record %d: %w", i, err)
			return
		}
		records = append(records, r)
	}
	return
}
