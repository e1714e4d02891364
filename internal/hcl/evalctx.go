package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/daysbetween/internal/calendar"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext returns the variables and functions available to
// expressions in a configuration file.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_min_year": cty.NumberIntVal(calendar.MinYear),
			"default_max_year": cty.NumberIntVal(calendar.MaxYear),
		},
		Functions: map[string]function.Function{
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
			"lower": stdlib.LowerFunc,
			"upper": stdlib.UpperFunc,
		},
	}
}
