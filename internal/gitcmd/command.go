package gitcmd

import (
	"sort"

	gitkiterrors "gitkit.dev/gitkit/internal/errors"
)

// Definition describes one configurable option of a git subcommand: its
// alias spellings, the value kinds it accepts, whether it is required or
// positional, an optional choice set, and the flag/value separator.
type Definition struct {
	Aliases    Aliases
	Kinds      []Kind
	Required   bool
	Positional bool
	Position   int
	Choices    []string
	// Separator joins the flag and its value into a single argument when it
	// is not the default single space (e.g. "--format=<value>").
	Separator string
}

// accepts reports whether the definition accepts a value of the given kind
func (d *Definition) accepts(kind Kind) bool {
	for _, k := range d.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Matches reports whether the supplied option binds to this definition:
// the alias set must contain the option's name and the value's kind must be
// among the accepted kinds.
func (d *Definition) Matches(opt Option) bool {
	return d.Aliases.Has(opt.Name) && d.accepts(opt.Value.Kind())
}

// Command is a named git subcommand holding its ordered option definitions.
// Command values are constructed once, never mutated afterwards, and shared
// freely across goroutines.
type Command struct {
	Name        string
	Definitions []Definition
}

// Definition scans the command's definitions in declaration order and
// returns the first one matching the supplied option, or nil. First match
// wins: two definitions sharing an alias but accepting different kinds are
// disambiguated by the supplied value's kind.
func (c *Command) Definition(opt Option) *Definition {
	for i := range c.Definitions {
		if c.Definitions[i].Matches(opt) {
			return &c.Definitions[i]
		}
	}
	return nil
}

// Validate checks the supplied options against the schema. Per-option
// unknown and choice checks run in a single pass over the supplied options;
// the positional-shape check and the required check run once afterwards over
// the whole set.
func (c *Command) Validate(options ...Option) error {
	for _, opt := range options {
		definition := c.Definition(opt)
		if definition == nil {
			return gitkiterrors.NewUnknownOptionError(opt.Name, opt.Value.Kind().String())
		}
		if !c.validateChoices(opt, definition) {
			return gitkiterrors.NewInvalidChoiceError(opt.Name, opt.Value.text(), definition.Choices)
		}
	}
	if ok, aliases := c.validatePositionalList(); !ok {
		return gitkiterrors.NewInvalidPositionalDefinitionError(aliases)
	}
	if ok, missing := c.validateRequired(options); !ok {
		return gitkiterrors.NewMissingRequiredOptionsError(missing)
	}
	return nil
}

// validateChoices checks that the option value is a member of the
// definition's choice set. A nil choice set accepts any value.
func (c *Command) validateChoices(opt Option, definition *Definition) bool {
	if definition.Choices == nil {
		return true
	}
	for _, choice := range definition.Choices {
		if opt.Value.text() == choice {
			return true
		}
	}
	return false
}

// validatePositionalList checks the schema shape: a positional definition of
// list kind must occupy the maximum position among all positional
// definitions. Returns the offending alias group on failure.
func (c *Command) validatePositionalList() (bool, string) {
	last := -1
	for i := range c.Definitions {
		if c.Definitions[i].Positional && c.Definitions[i].Position > last {
			last = c.Definitions[i].Position
		}
	}
	for i := range c.Definitions {
		definition := &c.Definitions[i]
		if !definition.Positional {
			continue
		}
		if definition.accepts(KindStringList) && definition.Position != last {
			return false, definition.Aliases.Group()
		}
	}
	return true, ""
}

// validateRequired checks that every required definition is satisfied by at
// least one supplied option. Returns the unsatisfied alias groups.
func (c *Command) validateRequired(options []Option) (bool, []string) {
	var unsatisfied []*Definition
	for i := range c.Definitions {
		if c.Definitions[i].Required {
			unsatisfied = append(unsatisfied, &c.Definitions[i])
		}
	}
	for _, opt := range options {
		for i, definition := range unsatisfied {
			if definition.Aliases.Has(opt.Name) {
				unsatisfied = append(unsatisfied[:i], unsatisfied[i+1:]...)
				break
			}
		}
	}
	missing := make([]string, 0, len(unsatisfied))
	for _, definition := range unsatisfied {
		missing = append(missing, "("+definition.Aliases.Group()+")")
	}
	return len(unsatisfied) == 0, missing
}

// Args serializes the supplied options into the full subcommand argument
// vector, command name first. Non-positional options keep their supplied
// order; positional options are emitted last, sorted by position, each
// supplied option consumed at most once. Callers are expected to Validate
// first; options without a definition are skipped here.
func (c *Command) Args(options ...Option) []string {
	args := []string{c.Name}
	var positionals []Option
	for _, opt := range options {
		definition := c.Definition(opt)
		if definition == nil {
			continue
		}
		if definition.Positional {
			positionals = append(positionals, opt)
			continue
		}
		// A false bool is a pure toggle-absence and emits nothing.
		if opt.Value.IsFalse() {
			continue
		}
		args = append(args, flagToken(definition))
		if opt.Value.Kind() == KindBool {
			continue
		}
		rendered := opt.Value.render()
		if definition.Separator == "" || definition.Separator == " " {
			args = append(args, rendered...)
		} else if len(rendered) > 0 {
			args[len(args)-1] += definition.Separator + rendered[0]
		}
	}
	args = append(args, c.positionalArgs(positionals)...)
	return args
}

// positionalArgs orders positional options by their definitions' positions
// and flattens list values. Positionals not supplied are skipped.
func (c *Command) positionalArgs(options []Option) []string {
	order := make([]*Definition, 0, len(c.Definitions))
	for i := range c.Definitions {
		if c.Definitions[i].Positional {
			order = append(order, &c.Definitions[i])
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Position < order[j].Position
	})

	var args []string
	remaining := append([]Option(nil), options...)
	for _, definition := range order {
		for i, opt := range remaining {
			if !definition.Aliases.Has(opt.Name) {
				continue
			}
			args = append(args, opt.Value.render()...)
			remaining = append(remaining[:i], remaining[i+1:]...)
			break
		}
	}
	return args
}

// flagToken returns the flag spelling for a definition, preferring the short
// form when one exists.
func flagToken(definition *Definition) string {
	if name, ok := definition.Aliases.Short(); ok {
		return "-" + name
	}
	name, _ := definition.Aliases.Long()
	return "--" + name
}
