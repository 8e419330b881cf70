package reduce

import (
    "testing";

    "github.com/marekgalovic/tracebench/math";

    "github.com/stretchr/testify/assert";
)

func TestSumTracesSingleMatrix(t *testing.T) {
    matrices := []math.Matrix{{{1, 2}, {3, 4}}}

    assert.Equal(t, int64(5), SumTraces(matrices, 1))
}

func TestSumTracesOneWorkerPerMatrix(t *testing.T) {
    matrices := []math.Matrix{
        {{1, 2}, {3, 4}},
        {{1, 2}, {3, 4}},
        {{1, 2}, {3, 4}},
    }

    assert.Equal(t, int64(15), SumTraces(matrices, 1))
    assert.Equal(t, int64(15), SumTraces(matrices, 3))
}

func TestSumTracesEmptyCollection(t *testing.T) {
    assert.Equal(t, int64(0), SumTraces(nil, 4))
}

func TestSumTracesMatchesSequential(t *testing.T) {
    matrices := make([]math.Matrix, 37)
    var expected int64
    for i := 0; i < len(matrices); i++ {
        matrices[i] = math.RandomUniformMatrix(8, -100, 100)
        expected += math.Trace(matrices[i])
    }

    for numWorkers := 1; numWorkers <= len(matrices); numWorkers++ {
        assert.Equal(t, expected, SumTraces(matrices, numWorkers))
    }
}

func TestSumTracesWorkerCountAboveCollectionSize(t *testing.T) {
    matrices := make([]math.Matrix, 5)
    for i := 0; i < len(matrices); i++ {
        matrices[i] = math.ScaledIdentityMatrix(3, int64(i + 1))
    }

    assert.Equal(t, int64(45), SumTraces(matrices, 16))
}
