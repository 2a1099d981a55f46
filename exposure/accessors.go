package exposure

func (c *Config) As() any {
	return c.options[KeyAs]
}

func (c *Config) HasAs() bool {
	return c.HasKey(KeyAs)
}

func (c *Config) If() any {
	return c.options[KeyIf]
}

func (c *Config) HasIf() bool {
	return c.HasKey(KeyIf)
}

func (c *Config) Unless() any {
	return c.options[KeyUnless]
}

func (c *Config) HasUnless() bool {
	return c.HasKey(KeyUnless)
}

func (c *Config) Using() any {
	return c.options[KeyUsing]
}

func (c *Config) HasUsing() bool {
	return c.HasKey(KeyUsing)
}

// With is always unset on validated options; with is rewritten to using.
func (c *Config) With() any {
	return c.options[KeyWith]
}

func (c *Config) HasWith() bool {
	return c.HasKey(KeyWith)
}

func (c *Config) Proc() any {
	return c.options[KeyProc]
}

func (c *Config) HasProc() bool {
	return c.HasKey(KeyProc)
}

func (c *Config) Documentation() any {
	return c.options[KeyDocumentation]
}

func (c *Config) HasDocumentation() bool {
	return c.HasKey(KeyDocumentation)
}

func (c *Config) FormatWith() any {
	return c.options[KeyFormatWith]
}

func (c *Config) HasFormatWith() bool {
	return c.HasKey(KeyFormatWith)
}

func (c *Config) Safe() any {
	return c.options[KeySafe]
}

func (c *Config) HasSafe() bool {
	return c.HasKey(KeySafe)
}

// IfExtras returns the if predicates displaced by a merge, oldest first.
func (c *Config) IfExtras() []any {
	v, _ := c.options[KeyIfExtras].([]any)
	return v
}

func (c *Config) HasIfExtras() bool {
	return c.HasKey(KeyIfExtras)
}

// UnlessExtras returns the unless predicates displaced by a merge, oldest first.
func (c *Config) UnlessExtras() []any {
	v, _ := c.options[KeyUnlessExtras].([]any)
	return v
}

func (c *Config) HasUnlessExtras() bool {
	return c.HasKey(KeyUnlessExtras)
}
