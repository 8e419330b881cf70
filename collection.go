package tracebench

import (
    "github.com/marekgalovic/tracebench/math";

    progressBar "gopkg.in/cheggaaa/pb.v1";
)

// GenerateCollection builds the matrix collection. Generation happens once,
// before any timed trial, and is not part of the measured core.
func GenerateCollection(config GeneratorConfig) []math.Matrix {
    bar := progressBar.StartNew(config.NumMatrices)

    matrices := make([]math.Matrix, config.NumMatrices)
    for i := 0; i < config.NumMatrices; i++ {
        matrices[i] = math.RandomUniformMatrix(config.MatrixSize, config.MinValue, config.MaxValue)
        bar.Increment()
    }

    bar.Finish()
    return matrices
}
