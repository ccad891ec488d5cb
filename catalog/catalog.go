package catalog

// Option is one selectable value of a category field, with its Arabic
// label.
type Option struct {
	Value string
	Label string
}

// Field is one filterable attribute of a category. Options is nil for
// free-form fields.
type Field struct {
	ID      string
	Options []Option
}

// Category is the configuration of one marketplace category.
type Category struct {
	ID     string
	Icon   string
	Name   string
	Fields []Field
}

// Field returns the field with the given id.
func (c Category) Field(id string) (Field, bool) {
	for _, f := range c.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// OptionLabel resolves an option value of a field to its label. Falls back
// to the raw value when the field or option is unknown.
func (c Category) OptionLabel(fieldID, value string) string {
	field, ok := c.Field(fieldID)
	if !ok {
		return value
	}
	for _, opt := range field.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// CategoryProvider resolves category configuration. The category data is
// consumed, not produced, by this module.
type CategoryProvider interface {
	// CategoryByID returns the category configuration, or false when the
	// id is unknown.
	CategoryByID(id string) (Category, bool)
}

// GovernorateProvider lists governorates in display order, most common
// first.
type GovernorateProvider interface {
	Governorates() []string
}

// Provider is the combined collaborator interface the feedback generators
// consume.
type Provider interface {
	CategoryProvider
	GovernorateProvider
}
