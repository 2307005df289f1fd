// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlarray/matrix"
)

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.PanicsWithValue(t, "matrix: WithBlockSize: block must be > 0", func() { matrix.WithBlockSize(0) })
	assert.PanicsWithValue(t, "matrix: WithWorkers: workers must be >= 0", func() { matrix.WithWorkers(-1) })
	assert.NotPanics(t, func() { matrix.WithWorkers(0) })
}
