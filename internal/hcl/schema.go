package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level layout of a configuration file.
type fileRoot struct {
	Calendar *calendarBlock `hcl:"calendar,block"`
	Console  *consoleBlock  `hcl:"console,block"`
	HTTP     *httpBlock     `hcl:"http,block"`
}

type calendarBlock struct {
	MinYear hcl.Expression `hcl:"min_year,optional"`
	MaxYear hcl.Expression `hcl:"max_year,optional"`
}

type consoleBlock struct {
	Prompt     hcl.Expression `hcl:"prompt,optional"`
	Separators hcl.Expression `hcl:"separators,optional"`
}

type httpBlock struct {
	Port      hcl.Expression `hcl:"port,optional"`
	RateLimit hcl.Expression `hcl:"rate_limit,optional"`
	Burst     hcl.Expression `hcl:"burst,optional"`
}
