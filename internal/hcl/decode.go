package hcl

import (
	"context"
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/daysbetween/internal/ctxlog"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeAttr evaluates expr and stores the result in target, which must be
// a pointer. Attributes omitted from the file evaluate to null and leave
// target untouched.
func decodeAttr(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext, name string, target any) error {
	logger := ctxlog.FromContext(ctx)
	if expr == nil {
		return nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return fmt.Errorf("invalid value for %q: %w", name, diags)
	}
	if val.IsNull() {
		logger.Debug("Attribute not set, keeping default.", "attribute", name)
		return nil
	}

	targetVal := reflect.ValueOf(target)
	if targetVal.Kind() != reflect.Ptr || targetVal.IsNil() {
		return fmt.Errorf("target for %q must be a non-nil pointer, got %T", name, target)
	}

	impliedType, err := gocty.ImpliedType(targetVal.Elem().Interface())
	if err != nil {
		return fmt.Errorf("unsupported target type for %q: %w", name, err)
	}

	converted, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %q from %s to %s: %w", name, val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	if err := gocty.FromCtyValue(converted, target); err != nil {
		return fmt.Errorf("cannot decode %q: %w", name, err)
	}
	logger.Debug("Attribute decoded.", "attribute", name, "type", impliedType.FriendlyName())
	return nil
}
