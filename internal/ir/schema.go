package ir

import (
	_ "embed"
	"fmt"
	"math"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed result.cue
var resultSchema string

// SchemaError reports a result record rejected by the schema.
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string {
	return "result schema: " + e.Message
}

// ValidateResult checks r against the embedded #Result definition.
// It also checks that Bits and Fingerprint agree with the other fields.
func ValidateResult(r Result) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(resultSchema, cue.Filename("result.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile result schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Result"))

	unified := def.Unify(ctx.Encode(r))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &SchemaError{Message: errors.Details(err, nil)}
	}

	decoded, err := ParseFloatBits(r.Bits)
	if err != nil {
		return &SchemaError{Message: err.Error()}
	}
	if math.Float64bits(decoded) != math.Float64bits(r.Value) {
		return &SchemaError{Message: fmt.Sprintf("bits %s do not encode value %v", r.Bits, r.Value)}
	}
	fp, err := ResultFingerprint(r.N, r.Method, r.Bits)
	if err != nil {
		return err
	}
	if fp != r.Fingerprint {
		return &SchemaError{Message: "fingerprint does not match record"}
	}
	return nil
}
