package tests

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/lazy"

	"github.com/stretchr/testify/assert"
)

// TestLazyChainScenario builds the documented chain: a computation producing 5
// with every fault translated to "Error", mapped through *2, +3 and squaring.
func TestLazyChainScenario(t *testing.T) {
	chained := lazy.Map(lazy.Map(lazy.Map(
		lazy.New(func() (int, error) { return 5, nil },
			func(err error) string { return "Error" }),
		func(i int) int { return i * 2 }),
		func(i int) int { return i + 3 }),
		func(i int) int { return i * i })

	out := chained.Evaluate()

	assert.True(t, out.IsSuccess())
	assert.Equal(t, 169, out.Data())
	assert.Equal(t, "Success(169)", out.String())
}

// TestParsePipeline runs a parse-validate-describe flow over mixed inputs,
// exercising deferred composition, recovery and the final fold.
func TestParsePipeline(t *testing.T) {
	inputs := []string{"21", "bad", "-3"}

	describe := func(raw string) string {
		parsed := lazy.Try(
			lazy.New(func() (string, error) { return raw, nil },
				func(err error) string { return "unparsable input" }),
			strconv.Atoi)

		checked := lazy.FlatMap(parsed, func(n int) lazy.Result[int, string] {
			return lazy.New(func() (int, error) {
				if n < 0 {
					return 0, errors.New("negative")
				}
				return n * 2, nil
			}, func(err error) string { return "rejected: " + err.Error() })
		})

		return outcome.Fold(checked.Evaluate(),
			func(n int) string { return fmt.Sprintf("doubled: %d", n) },
			func(fault string) string { return fault })
	}

	results := make([]string, 0, len(inputs))
	for _, in := range inputs {
		results = append(results, describe(in))
	}

	assert.Equal(t, []string{
		"doubled: 42",
		"unparsable input",
		"unparsable input", // inner faults run through the outer translator
	}, results)
}

// TestRecoveredPipeline verifies a recovered chain always folds to a value.
func TestRecoveredPipeline(t *testing.T) {
	attempts := 0
	flaky := lazy.New(func() (int, error) {
		attempts++
		return 0, errors.New("unavailable")
	}, func(err error) string { return err.Error() })

	recovered := flaky.Recover(func(fault string) int { return -1 })

	first := recovered.Evaluate()
	second := recovered.Evaluate()

	assert.True(t, first.IsSuccess())
	assert.Equal(t, -1, first.Data())
	assert.True(t, outcome.Equal(first, second))
	assert.Equal(t, 2, attempts, "every evaluation re-runs the computation")
}
